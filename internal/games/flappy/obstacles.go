package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/scene"
)

// Node names in the game scene.
const (
	NameBackground = "background"
	NameGround     = "ground"
	NameTemplates  = "templates"
	NameObstacle   = "obstacle"
	NameUpper      = "upper"
	NameLower      = "lower"
	NameObstacles  = "obstacles"
	NameHero       = "hero"
)

// hillHeights gives the background segments some variety.
var hillHeights = []float64{36, 58, 44, 70, 30, 52}

// buildScene creates every node of a new run:
//
//	root
//	├── background  tiling hills, parallax
//	├── ground      tiling segments
//	├── templates   far off-screen
//	│   └── obstacle
//	│       ├── upper
//	│       └── lower
//	├── obstacles   spawned instances
//	└── hero        physics body
func (g *Game) buildScene() {
	a := g.arena
	root := a.Root()
	w, h := g.cfg.Viewport.Width, g.cfg.Viewport.Height
	gh := g.cfg.World.GroundHeight

	g.background = a.NewNode(root, NameBackground, core.V(0, gh), core.Vec2{})
	hillW := w / 3
	for i := range segmentsToCover(w, hillW) {
		hh := hillHeights[i%len(hillHeights)]
		a.NewNode(g.background, fmt.Sprintf("hill-%d", i),
			core.V(hillW*(float64(i)+0.5), hh/2), core.V(hillW, hh))
	}

	g.ground = a.NewNode(root, NameGround, core.V(0, gh/2), core.Vec2{})
	segW := g.cfg.Scroll.GroundSegmentWidth
	for i := range segmentsToCover(w, segW) {
		a.NewNode(g.ground, fmt.Sprintf("ground-%d", i),
			core.V(segW*(float64(i)+0.5), 0), core.V(segW, gh))
	}

	templates := a.NewNode(root, NameTemplates, core.V(-10*w, -10*h), core.Vec2{})
	g.template = g.newObstacleTemplate(templates)

	g.obstacles = a.NewNode(root, NameObstacles, core.Vec2{}, core.Vec2{})

	hc := g.cfg.World
	g.hero = a.NewNode(root, NameHero, core.V(hc.HeroX, (gh+h)/2), core.V(hc.HeroWidth, hc.HeroHeight))
	g.body = a.AddBody(g.hero, hc.HeroMass, hc.HeroInertia)
}

// segmentsToCover returns how many tiles of width seg keep a viewport of
// width w covered while one of them is being recycled.
func segmentsToCover(w, seg float64) int {
	return int(math.Ceil(w/seg)) + 1
}

// newObstacleTemplate builds the obstacle the spawner copies. The node's
// position is the centre of the gap; the two pipes extend a full viewport
// height away from it.
func (g *Game) newObstacleTemplate(parent scene.NodeID) scene.NodeID {
	a := g.arena
	o := g.cfg.Obstacles
	h := g.cfg.Viewport.Height

	tmpl := a.NewNode(parent, NameObstacle, core.Vec2{}, core.V(o.Width, o.Gap))
	a.SetObstacle(tmpl, scene.Obstacle{Gap: o.Gap})
	a.NewNode(tmpl, NameUpper, core.V(0, o.Gap/2+h/2), core.V(o.Width, h))
	a.NewNode(tmpl, NameLower, core.V(0, -o.Gap/2-h/2), core.V(o.Width, h))
	return tmpl
}

func (g *Game) heroBox() core.Box {
	return core.BoxAround(g.arena.ViewportPosition(g.hero), g.arena.Size(g.hero))
}

// updateScore marks every obstacle whose right edge is behind the hero.
func (g *Game) updateScore() {
	heroLeft := g.heroBox().Min.X
	for _, inst := range g.arena.Children(g.obstacles) {
		ob := g.arena.Obstacle(inst)
		if ob == nil || ob.Passed {
			continue
		}
		right := g.arena.ViewportPosition(inst).X + g.arena.Size(inst).X/2
		if right < heroLeft {
			ob.Passed = true
			g.score++
			g.logger.Debug("obstacle passed", "node", inst, "score", g.score)
		}
	}
}

// collided reports whether the hero hit the ground or a pipe. On ground
// contact the hero is left resting on it.
func (g *Game) collided() bool {
	hero := g.heroBox()

	if hero.Min.Y <= g.cfg.World.GroundHeight {
		p := g.arena.Position(g.hero)
		p.Y = g.cfg.World.GroundHeight + g.cfg.World.HeroHeight/2
		g.arena.SetPosition(g.hero, p)
		g.body.SetVelocity(core.Vec2{})
		g.body.SetAngularVelocity(0)
		return true
	}

	for _, inst := range g.arena.Children(g.obstacles) {
		for _, pipe := range g.arena.Children(inst) {
			box := core.BoxAround(g.arena.ViewportPosition(pipe), g.arena.Size(pipe))
			if hero.Overlaps(box) {
				return true
			}
		}
	}
	return false
}

// NextGap returns the viewport position of the centre of the first gap the
// hero has not yet cleared.
func (g *Game) NextGap() (core.Vec2, bool) {
	heroLeft := g.heroBox().Min.X
	best, found := core.Vec2{}, false
	for _, inst := range g.arena.Children(g.obstacles) {
		p := g.arena.ViewportPosition(inst)
		if p.X+g.arena.Size(inst).X/2 < heroLeft {
			continue
		}
		if !found || p.X < best.X {
			best, found = p, true
		}
	}
	return best, found
}
