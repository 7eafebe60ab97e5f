package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultFlappyConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime(seed))
	return g
}

func tap() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionTap)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must give identical runs
	run := func() (*Game, core.GameState) {
		g := newTestGame(t, 12345)
		var state core.GameState
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%15 == 0 {
				in.Set(core.ActionTap)
			}
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return g, state
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if g1.Ticks() != g2.Ticks() || g1.Spawned() != g2.Spawned() {
		t.Errorf("runs differ: ticks %d/%d spawned %d/%d", g1.Ticks(), g2.Ticks(), g1.Spawned(), g2.Spawned())
	}
	p1, v1, r1 := g1.Hero()
	p2, v2, r2 := g2.Hero()
	if p1 != p2 || v1 != v2 || r1 != r2 {
		t.Errorf("hero differs: %v %v %v vs %v %v %v", p1, v1, r1, p2, v2, r2)
	}
}

func TestGameWaitsForFirstTap(t *testing.T) {
	g := newTestGame(t, 1)
	start, _, _ := g.Hero()
	groundX := g.arena.Position(g.ground).X

	for i := 0; i < 120; i++ {
		if res := g.Step(core.NewInputFrame()); !res.State.Waiting {
			t.Fatal("game should wait until the first tap")
		}
	}

	if pos, _, _ := g.Hero(); pos != start {
		t.Errorf("hero moved to %v while waiting", pos)
	}
	if g.Spawned() != 0 {
		t.Error("no obstacles should spawn while waiting")
	}
	if g.arena.Position(g.ground).X >= groundX {
		t.Error("ground should scroll while waiting")
	}

	res := g.Step(tap())
	if res.State.Waiting {
		t.Error("first tap should start the run")
	}
	if pos, vel, _ := g.Hero(); pos.Y <= start.Y || vel.Y <= 0 {
		t.Errorf("hero should rise after the first tap: pos=%v vel=%v", pos, vel)
	}
}

func TestGameGravityEndsRunOnGround(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(tap())

	for i := 0; i < 120 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	if !g.State().GameOver {
		t.Fatal("hero should fall to the ground without taps")
	}
	cfg := g.Config()
	pos, vel, _ := g.Hero()
	if want := cfg.World.GroundHeight + cfg.World.HeroHeight/2; pos.Y != want {
		t.Errorf("hero rests at y=%v, expected %v", pos.Y, want)
	}
	if vel != (core.Vec2{}) {
		t.Errorf("hero velocity after landing = %v, expected zero", vel)
	}

	// Game over is sticky
	ticks := g.Ticks()
	g.Step(tap())
	if g.Ticks() != ticks || !g.State().GameOver {
		t.Error("steps after game over should not advance the game")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(tap())
	before, _, _ := g.Hero()
	ticks := g.Ticks()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if !g.Step(pause).State.Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 30; i++ {
		g.Step(tap())
	}

	if pos, _, _ := g.Hero(); pos != before || g.Ticks() != ticks {
		t.Error("paused game should not advance")
	}

	if g.Step(pause).State.Paused {
		t.Error("second pause should resume")
	}
	if g.Ticks() != ticks+1 {
		t.Errorf("Ticks() = %d, expected %d after resuming", g.Ticks(), ticks+1)
	}
}

func TestGameScoresPassedObstacleOnce(t *testing.T) {
	g := newTestGame(t, 1)
	tmpl, _ := g.arena.Find(NameObstacle)
	heroPos, _, _ := g.Hero()

	inst := g.arena.Duplicate(tmpl, g.obstacles)
	g.arena.SetPosition(inst, core.V(10, heroPos.Y))

	res := g.Step(tap())
	if res.State.Score != 1 {
		t.Fatalf("Score = %d, expected 1", res.State.Score)
	}
	if res.State.GameOver {
		t.Fatal("hero should not collide with an obstacle behind it")
	}

	res = g.Step(core.NewInputFrame())
	if res.State.Score != 1 {
		t.Errorf("an obstacle should score only once, Score = %d", res.State.Score)
	}
}

func TestGamePipeCollision(t *testing.T) {
	g := newTestGame(t, 1)
	tmpl, _ := g.arena.Find(NameObstacle)
	heroPos, _, _ := g.Hero()

	// Gap far above the hero: the lower pipe covers it.
	inst := g.arena.Duplicate(tmpl, g.obstacles)
	g.arena.SetPosition(inst, core.V(heroPos.X, heroPos.Y+300))

	if !g.Step(tap()).State.GameOver {
		t.Error("hero inside a pipe should end the run")
	}
}

func TestGameCeiling(t *testing.T) {
	g := newTestGame(t, 1)
	cfg := g.Config()
	g.Step(tap())
	g.arena.SetPosition(g.hero, core.V(cfg.World.HeroX, cfg.Viewport.Height-1))

	g.Step(tap())

	pos, vel, _ := g.Hero()
	if top := cfg.Viewport.Height - cfg.World.HeroHeight/2; pos.Y > top {
		t.Errorf("hero at y=%v above the ceiling %v", pos.Y, top)
	}
	if vel.Y > 0 {
		t.Errorf("upward velocity %v should be cancelled at the ceiling", vel.Y)
	}
	if g.State().GameOver {
		t.Error("touching the ceiling should not end the run")
	}
}

func TestGameStepReportsSpawns(t *testing.T) {
	g := newTestGame(t, 7)
	pilot := NewAutopilot(g)

	spawned := 0
	for i := 0; i < 170; i++ {
		in := core.NewInputFrame()
		if pilot.Tap() {
			in.Set(core.ActionTap)
		}
		res := g.Step(in)
		spawned += res.Spawned
		if res.State.GameOver {
			t.Fatalf("autopilot crashed on tick %d before reaching an obstacle", i)
		}
	}

	if spawned == 0 || spawned != g.Spawned() {
		t.Errorf("step results reported %d spawns, game counted %d", spawned, g.Spawned())
	}
	if g.Live() != g.Spawned() {
		t.Errorf("no obstacle should have left the screen yet: live %d, spawned %d", g.Live(), g.Spawned())
	}
}

func TestAutopilotOutlivesSingleTap(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(tap())
	for !g.State().GameOver && g.Ticks() < 600 {
		g.Step(core.NewInputFrame())
	}
	dropped := g.Ticks()

	g.Reset(testRuntime(3))
	pilot := NewAutopilot(g)
	for !g.State().GameOver && g.Ticks() < 600 {
		in := core.NewInputFrame()
		if pilot.Tap() {
			in.Set(core.ActionTap)
		}
		g.Step(in)
	}

	if g.Ticks() <= dropped {
		t.Errorf("autopilot lasted %d ticks, a single tap lasted %d", g.Ticks(), dropped)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)
	tmpl, _ := g.arena.Find(NameObstacle)
	heroPos, _, _ := g.Hero()
	inst := g.arena.Duplicate(tmpl, g.obstacles)
	g.arena.SetPosition(inst, core.V(10, heroPos.Y))
	g.Step(tap())

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused || !state.Waiting {
		t.Errorf("state after reset = %+v", state)
	}
	if g.Ticks() != 0 || g.Live() != 0 {
		t.Errorf("reset should clear ticks and obstacles: ticks=%d live=%d", g.Ticks(), g.Live())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GET READY") {
		t.Error("waiting screen should prompt for the first tap")
	}
	if !strings.ContainsRune(out, HeroChar) || !strings.ContainsRune(out, GroundChar) {
		t.Error("hero and ground should be drawn")
	}

	g.Step(tap())
	for !g.State().GameOver && g.Ticks() < 600 {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message should be drawn")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", screen.Row(0))
	}
}

func TestNoseChar(t *testing.T) {
	tests := []struct {
		deg  float64
		want rune
	}{
		{30, '↗'},
		{0, '→'},
		{-15, '→'},
		{-45, '↘'},
		{-90, '↓'},
	}
	for _, tt := range tests {
		if got := noseChar(tt.deg); got != tt.want {
			t.Errorf("noseChar(%v) = %q, expected %q", tt.deg, got, tt.want)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.SpawnInterval = 0

	if _, err := New(cfg, nil); err == nil {
		t.Error("New should reject an invalid config")
	}
}
