package controller

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/scene"
)

// RandSource is the randomness the spawner draws from. *rand.Rand satisfies it.
type RandSource interface {
	Int63n(n int64) int64
}

// processRand uses the process-wide math/rand source.
type processRand struct{}

func (processRand) Int63n(n int64) int64 { return rand.Int63n(n) }

// SpawnObserver is notified synchronously about obstacle lifecycle events.
type SpawnObserver interface {
	ObstacleSpawned(id scene.NodeID, y float64)
	ObstacleRemoved(id scene.NodeID)
}

// SpawnerConfig configures an ObstacleSpawner. X and Y values are in viewport space.
type SpawnerConfig struct {
	Template scene.NodeID // off-screen copy source, never mutated
	Layer    scene.NodeID // container the instances live in

	ScrollSpeed   float64 // points per second the layer moves left
	SpawnInterval float64 // seconds between spawns
	SpawnX        float64 // x at which new obstacles appear
	RemovalX      float64 // instances at or left of this x are removed
	YMin, YMax    float64 // inclusive range for the random vertical position

	// MaxStep splits oversized frame deltas into sub-steps of at most this
	// many seconds. Zero disables splitting.
	MaxStep float64

	// Rand is the random source. Nil uses the process-wide source.
	Rand RandSource
}

// ObstacleSpawner copies the obstacle template into the obstacle layer on a
// fixed interval, scrolls the layer and removes instances that left the
// viewport.
type ObstacleSpawner struct {
	host     SpawnHost
	cfg      SpawnerConfig
	rng      RandSource
	observer SpawnObserver

	timer   float64
	spawned int
	removed int

	doomed []scene.NodeID
}

// NewObstacleSpawner validates cfg and creates a spawner.
func NewObstacleSpawner(host SpawnHost, cfg SpawnerConfig) (*ObstacleSpawner, error) {
	if !host.Alive(cfg.Template) {
		return nil, fmt.Errorf("controller: obstacle template: %w", ErrMissingNode)
	}
	if !host.Alive(cfg.Layer) {
		return nil, fmt.Errorf("controller: obstacle layer: %w", ErrMissingNode)
	}
	if cfg.Template == cfg.Layer {
		return nil, fmt.Errorf("controller: obstacle template cannot be the layer: %w", ErrInvalidParameter)
	}
	if !(cfg.SpawnInterval > 0) {
		return nil, fmt.Errorf("controller: spawn interval %v: %w", cfg.SpawnInterval, ErrInvalidInterval)
	}
	if math.IsNaN(cfg.YMin) || math.IsNaN(cfg.YMax) || cfg.YMin > cfg.YMax {
		return nil, fmt.Errorf("controller: y range [%v, %v]: %w", cfg.YMin, cfg.YMax, ErrInvalidRange)
	}
	if cfg.ScrollSpeed < 0 {
		return nil, fmt.Errorf("controller: scroll speed %v: %w", cfg.ScrollSpeed, ErrInvalidParameter)
	}
	if cfg.MaxStep < 0 {
		return nil, fmt.Errorf("controller: max step %v: %w", cfg.MaxStep, ErrInvalidParameter)
	}
	// Each sub-step must fit within one spawn interval.
	if cfg.MaxStep > cfg.SpawnInterval {
		return nil, fmt.Errorf("controller: max step %v exceeds spawn interval %v: %w",
			cfg.MaxStep, cfg.SpawnInterval, ErrInvalidParameter)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = processRand{}
	}
	return &ObstacleSpawner{host: host, cfg: cfg, rng: rng}, nil
}

// SetObserver installs an observer; nil removes it.
func (s *ObstacleSpawner) SetObserver(o SpawnObserver) {
	s.observer = o
}

// Timer returns the seconds accumulated since the last spawn.
func (s *ObstacleSpawner) Timer() float64 {
	return s.timer
}

// Spawned returns how many obstacles have been created.
func (s *ObstacleSpawner) Spawned() int {
	return s.spawned
}

// Removed returns how many obstacles have been destroyed.
func (s *ObstacleSpawner) Removed() int {
	return s.removed
}

// Live returns how many obstacles are currently in the layer.
func (s *ObstacleSpawner) Live() int {
	return len(s.host.Children(s.cfg.Layer))
}

// OnFrame scrolls the layer, removes instances past RemovalX, advances the
// spawn timer and spawns when the interval is reached. Negative and
// non-finite deltas are ignored. Deltas larger than MaxStep run as at most
// maxSubSteps consecutive sub-steps; the remainder is dropped.
func (s *ObstacleSpawner) OnFrame(dt float64) {
	if !usableDelta(dt) {
		return
	}
	if s.cfg.MaxStep > 0 {
		for n := 1; dt > s.cfg.MaxStep; n++ {
			if n == maxSubSteps {
				dt = s.cfg.MaxStep
				break
			}
			s.step(s.cfg.MaxStep)
			dt -= s.cfg.MaxStep
		}
	}
	s.step(dt)
}

func (s *ObstacleSpawner) step(dt float64) {
	p := s.host.Position(s.cfg.Layer)
	p.X -= s.cfg.ScrollSpeed * dt
	s.host.SetPosition(s.cfg.Layer, p)

	s.removePassed()

	s.timer += dt
	if s.timer+timeEpsilon >= s.cfg.SpawnInterval {
		s.spawn()
		s.timer = 0
	}
}

// removePassed collects first and destroys afterwards so each instance is
// visited exactly once.
func (s *ObstacleSpawner) removePassed() {
	s.doomed = s.doomed[:0]
	for _, id := range s.host.Children(s.cfg.Layer) {
		if s.host.ViewportPosition(id).X <= s.cfg.RemovalX {
			s.doomed = append(s.doomed, id)
		}
	}
	for _, id := range s.doomed {
		s.host.Destroy(id)
		s.removed++
		if s.observer != nil {
			s.observer.ObstacleRemoved(id)
		}
	}
}

func (s *ObstacleSpawner) spawn() {
	y := s.randomY()
	id := s.host.Duplicate(s.cfg.Template, s.cfg.Layer)
	s.host.SetPosition(id, s.host.ToLocal(s.cfg.Layer, core.V(s.cfg.SpawnX, y)))
	s.spawned++
	if s.observer != nil {
		s.observer.ObstacleSpawned(id, y)
	}
}

// unitSteps is the resolution of randomY: 2^53 steps over [0, 1], both ends included.
const unitSteps = 1 << 53

// randomY draws uniformly from [YMin, YMax] inclusive.
func (s *ObstacleSpawner) randomY() float64 {
	u := float64(s.rng.Int63n(unitSteps+1)) / unitSteps
	y := s.cfg.YMin + u*(s.cfg.YMax-s.cfg.YMin)
	return core.ClampF(y, s.cfg.YMin, s.cfg.YMax)
}
