package controller

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flapper/internal/scene"
)

// ScrollLayer registers a container node with a ScrollController.
type ScrollLayer struct {
	Node scene.NodeID
	// Tiling layers recycle child segments that leave the viewport on the
	// left by moving them to the right end of the layer.
	Tiling bool
	// Parallax scales the scroll speed for this layer. Zero means 1.
	Parallax float64
}

// ScrollController moves background and ground layers left at a constant speed.
type ScrollController struct {
	host   ScrollHost
	speed  float64
	layers []ScrollLayer
}

// NewScrollController creates a controller scrolling the given layers at
// speed points per second.
func NewScrollController(host ScrollHost, speed float64, layers ...ScrollLayer) (*ScrollController, error) {
	if speed < 0 || math.IsNaN(speed) {
		return nil, fmt.Errorf("controller: scroll speed %v: %w", speed, ErrInvalidParameter)
	}
	out := make([]ScrollLayer, 0, len(layers))
	for i, l := range layers {
		if !host.Alive(l.Node) {
			return nil, fmt.Errorf("controller: scroll layer %d: %w", i, ErrMissingNode)
		}
		if l.Parallax < 0 {
			return nil, fmt.Errorf("controller: scroll layer %d parallax %v: %w", i, l.Parallax, ErrInvalidParameter)
		}
		if l.Parallax == 0 {
			l.Parallax = 1
		}
		out = append(out, l)
	}
	return &ScrollController{host: host, speed: speed, layers: out}, nil
}

// Speed returns the base scroll speed in points per second.
func (s *ScrollController) Speed() float64 {
	return s.speed
}

// OnFrame advances every layer by speed*parallax*dt and recycles tiles.
func (s *ScrollController) OnFrame(dt float64) {
	if !usableDelta(dt) {
		return
	}
	for _, l := range s.layers {
		p := s.host.Position(l.Node)
		p.X -= s.speed * l.Parallax * dt
		s.host.SetPosition(l.Node, p)

		if l.Tiling {
			s.recycle(l.Node)
		}
	}
}

// recycle moves every segment whose right edge is at or past the left
// viewport boundary to the right end of the layer's tiled extent.
func (s *ScrollController) recycle(layer scene.NodeID) {
	segments := s.host.Children(layer)
	for _, seg := range segments {
		w := s.host.Size(seg).X
		if s.host.ViewportPosition(seg).X+w/2 > 0 {
			continue
		}
		end := s.tiledEnd(segments)
		p := s.host.Position(seg)
		p.X = end + w/2
		s.host.SetPosition(seg, p)
	}
}

// tiledEnd returns the largest local right edge among the segments.
func (s *ScrollController) tiledEnd(segments []scene.NodeID) float64 {
	end := math.Inf(-1)
	for _, seg := range segments {
		right := s.host.Position(seg).X + s.host.Size(seg).X/2
		if right > end {
			end = right
		}
	}
	return end
}
