// Package flappy implements the host game: it builds the scene, drives the
// scroll, spawn and flight controllers every tick, integrates the hero's
// body, and handles collisions and scoring.
package flappy

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/controller"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/scene"
)

// Game implements the flapper game logic.
type Game struct {
	cfg    config.FlappyConfig
	logger *log.Logger
	rc     core.RuntimeConfig

	arena      *scene.Arena
	background scene.NodeID
	ground     scene.NodeID
	template   scene.NodeID
	obstacles  scene.NodeID
	hero       scene.NodeID
	body       *scene.BodyHandle

	scroll  *controller.ScrollController
	spawner *controller.ObstacleSpawner
	flight  *controller.FlightController
	events  *spawnEvents

	score     int
	tickCount int
	started   bool
	gameOver  bool
	paused    bool
}

// New validates cfg and creates a game. A nil logger discards debug events.
func New(cfg config.FlappyConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{cfg: cfg, logger: logger, rc: core.DefaultConfig()}
	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flapper"
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset rebuilds the scene and restarts the run. The screen size in cfg only
// affects rendering; the world is always the configured viewport.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rc = cfg
	if err := g.build(); err != nil {
		// The configuration was validated by New.
		panic(fmt.Sprintf("flappy: rebuilding scene: %v", err))
	}
}

// build creates a fresh arena, scene and controllers.
func (g *Game) build() error {
	g.score = 0
	g.tickCount = 0
	g.started = false
	g.gameOver = false
	g.paused = false

	g.arena = scene.NewArena()
	g.buildScene()

	var err error
	g.scroll, err = controller.NewScrollController(g.arena, g.cfg.Scroll.Speed,
		controller.ScrollLayer{Node: g.background, Tiling: true, Parallax: g.cfg.Scroll.BackgroundParallax},
		controller.ScrollLayer{Node: g.ground, Tiling: true},
	)
	if err != nil {
		return fmt.Errorf("flappy: %w", err)
	}

	o := g.cfg.Obstacles
	g.spawner, err = controller.NewObstacleSpawner(g.arena, controller.SpawnerConfig{
		Template:      g.template,
		Layer:         g.obstacles,
		ScrollSpeed:   g.cfg.Scroll.Speed,
		SpawnInterval: o.SpawnInterval,
		SpawnX:        o.SpawnXOrDefault(g.cfg.Viewport.Width),
		RemovalX:      o.RemovalXOrDefault(),
		YMin:          o.YMin,
		YMax:          o.YMax,
		MaxStep:       o.MaxStep,
		Rand:          rand.New(rand.NewSource(g.rc.Seed)),
	})
	if err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	g.events = &spawnEvents{logger: g.logger}
	g.spawner.SetObserver(g.events)

	f := g.cfg.Flight
	g.flight, err = controller.NewFlightController(g.body, controller.FlightConfig{
		MaxUpwardSpeed:     f.MaxUpwardSpeed,
		RotationMinDeg:     f.RotationMin,
		RotationMaxDeg:     f.RotationMax,
		AngularVelocityMin: f.AngularVelocityMin,
		AngularVelocityMax: f.AngularVelocityMax,
		IdleThreshold:      f.IdleThreshold,
		FallRotationRate:   f.FallRotationRate,
		TapImpulse:         controller.TapImpulse{Vertical: f.TapImpulse.Vertical, Angular: f.TapImpulse.Angular},
	})
	if err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.rc.FrameDelta()
	taps := in.Count(core.ActionTap)

	// The ground keeps moving while the hero waits for the first tap.
	if !g.started {
		if taps == 0 {
			g.scroll.OnFrame(dt)
			return core.StepResult{State: g.State()}
		}
		g.started = true
		g.logger.Debug("run started", "seed", g.rc.Seed)
	}

	for range taps {
		g.flight.OnTap()
	}

	g.events.reset()
	g.scroll.OnFrame(dt)
	g.spawner.OnFrame(dt)
	g.flight.OnFrame(dt)
	g.arena.Step(dt, core.V(0, g.cfg.World.Gravity))

	g.keepBelowCeiling()
	g.updateScore()
	if g.collided() {
		g.gameOver = true
		g.logger.Debug("game over", "score", g.score, "tick", g.tickCount)
	}

	return core.StepResult{
		State:   g.State(),
		Spawned: g.events.spawned,
		Removed: g.events.removed,
	}
}

// keepBelowCeiling stops the hero at the top of the viewport.
func (g *Game) keepBelowCeiling() {
	top := g.cfg.Viewport.Height - g.cfg.World.HeroHeight/2
	p := g.arena.Position(g.hero)
	if p.Y <= top {
		return
	}
	p.Y = top
	g.arena.SetPosition(g.hero, p)
	if v := g.body.Velocity(); v.Y > 0 {
		g.body.SetVelocity(core.V(v.X, 0))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Waiting:  !g.started,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Hero returns the hero's viewport position, velocity and rotation in degrees.
func (g *Game) Hero() (pos, vel core.Vec2, rotDeg float64) {
	return g.arena.ViewportPosition(g.hero), g.body.Velocity(), core.RadToDeg(g.body.Rotation())
}

// Spawned returns how many obstacles have been created since the last reset.
func (g *Game) Spawned() int {
	return g.spawner.Spawned()
}

// Live returns how many obstacles are currently in the scene.
func (g *Game) Live() int {
	return g.spawner.Live()
}

// spawnEvents observes the spawner and logs its events.
type spawnEvents struct {
	logger  *log.Logger
	spawned int
	removed int
}

func (e *spawnEvents) reset() {
	e.spawned, e.removed = 0, 0
}

func (e *spawnEvents) ObstacleSpawned(id scene.NodeID, y float64) {
	e.spawned++
	e.logger.Debug("obstacle spawned", "node", id, "y", y)
}

func (e *spawnEvents) ObstacleRemoved(id scene.NodeID) {
	e.removed++
	e.logger.Debug("obstacle removed", "node", id)
}
