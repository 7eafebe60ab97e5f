package flappy

// Autopilot taps to keep the hero level with the next gap. The headless
// simulator uses it to produce long, reproducible runs.
type Autopilot struct {
	game   *Game
	margin float64
}

// NewAutopilot creates an autopilot for g.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g, margin: g.cfg.Obstacles.Gap / 6}
}

// Tap reports whether the hero should flap this tick.
func (a *Autopilot) Tap() bool {
	if a.game.State().Waiting {
		return true
	}
	pos, vel, _ := a.game.Hero()
	target := (a.game.cfg.World.GroundHeight + a.game.cfg.Viewport.Height) / 2
	if gap, ok := a.game.NextGap(); ok {
		target = gap.Y
	}
	return pos.Y < target-a.margin && vel.Y <= 0
}
