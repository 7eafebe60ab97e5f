package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/scene"
)

// Visual characters for rendering
const (
	HeroChar      = '●'
	PipeChar      = '█'
	PipeCapUpper  = '▀'
	PipeCapLower  = '▄'
	GroundChar    = '▒'
	GrassChar     = '▀'
	GroundSeam    = '╱'
	HillChar      = '░'
	rotationLevel = 15 // degrees either side of level that draw as flat
)

// cellMapper converts viewport points to screen cells. The viewport is
// stretched to fill the screen; y is flipped so it grows downwards.
type cellMapper struct {
	sx, sy float64
	h      float64
}

func newCellMapper(cols, rows int, vw, vh float64) cellMapper {
	return cellMapper{sx: float64(cols) / vw, sy: float64(rows) / vh, h: vh}
}

func (m cellMapper) rect(b core.Box) core.Rect {
	x0 := int(math.Round(b.Min.X * m.sx))
	x1 := int(math.Round(b.Max.X * m.sx))
	y0 := int(math.Round((m.h - b.Max.Y) * m.sy))
	y1 := int(math.Round((m.h - b.Min.Y) * m.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (g *Game) box(id scene.NodeID) core.Box {
	return core.BoxAround(g.arena.ViewportPosition(id), g.arena.Size(id))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	m := newCellMapper(dst.Width(), dst.Height(), g.cfg.Viewport.Width, g.cfg.Viewport.Height)

	for _, hill := range g.arena.Children(g.background) {
		dst.DrawRect(m.rect(g.box(hill)), HillChar, core.ColorGray)
	}

	for _, inst := range g.arena.Children(g.obstacles) {
		g.drawObstacle(dst, m, inst)
	}

	for _, seg := range g.arena.Children(g.ground) {
		r := m.rect(g.box(seg))
		dst.DrawRect(r, GroundChar, core.ColorOrange)
		dst.DrawHLine(r.X, r.Y, r.W, GrassChar, core.ColorGreen)
		dst.SetColored(r.X, r.Y+1, GroundSeam, core.ColorOrange)
	}

	g.drawHero(dst, m)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	switch {
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case !g.started:
		g.drawCenteredMessage(dst, "GET READY", "Press SPACE or click to flap")
	}
}

// drawObstacle renders both pipes of an obstacle with caps facing the gap.
func (g *Game) drawObstacle(dst *core.Screen, m cellMapper, inst scene.NodeID) {
	for _, pipe := range g.arena.Children(inst) {
		r := m.rect(g.box(pipe))
		dst.DrawRect(r, PipeChar, core.ColorBrightGreen)
		if g.arena.Name(pipe) == NameUpper {
			dst.DrawHLine(r.X-1, r.Bottom()-1, r.W+2, PipeCapUpper, core.ColorGreen)
		} else {
			dst.DrawHLine(r.X-1, r.Y, r.W+2, PipeCapLower, core.ColorGreen)
		}
	}
}

// drawHero fills the hero's box and marks the nose with its attitude.
func (g *Game) drawHero(dst *core.Screen, m cellMapper) {
	r := m.rect(g.box(g.hero))
	dst.DrawRect(r, HeroChar, core.ColorBrightYellow)
	_, _, rot := g.Hero()
	dst.SetColored(r.Right()-1, r.Y+r.H/2, noseChar(rot), core.ColorBrightYellow)
}

// noseChar picks a glyph for the hero's rotation in degrees.
func noseChar(deg float64) rune {
	switch {
	case deg > rotationLevel:
		return '↗'
	case deg >= -rotationLevel:
		return '→'
	case deg >= -60:
		return '↘'
	default:
		return '↓'
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
