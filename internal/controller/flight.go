package controller

import (
	"fmt"

	"github.com/vovakirdan/flapper/internal/core"
)

// TapImpulse is applied to the body on every tap.
type TapImpulse struct {
	Vertical float64 // upward linear impulse
	Angular  float64 // nose-up angular impulse
}

// FlightConfig configures a FlightController. Angles are in degrees and are
// converted to radians once, in NewFlightController.
type FlightConfig struct {
	MaxUpwardSpeed     float64
	RotationMinDeg     float64
	RotationMaxDeg     float64
	AngularVelocityMin float64
	AngularVelocityMax float64
	IdleThreshold      float64 // seconds without a tap before the nose tips down
	FallRotationRate   float64 // nose-down angular impulse per second while idle
	TapImpulse         TapImpulse
}

// FlightController turns taps into flaps and keeps the hero's speed and
// attitude within bounds.
//
// After a tap the body is "flapping"; once the idle time exceeds
// IdleThreshold it is "idle-falling" and receives a nose-down angular impulse
// every frame until the next tap.
type FlightController struct {
	body Body
	cfg  FlightConfig

	rotMin, rotMax float64 // radians

	sinceTouch float64
}

// NewFlightController validates cfg and creates a controller for body.
func NewFlightController(body Body, cfg FlightConfig) (*FlightController, error) {
	if body == nil {
		return nil, fmt.Errorf("controller: flight body: %w", ErrMissingNode)
	}
	if cfg.RotationMinDeg > cfg.RotationMaxDeg {
		return nil, fmt.Errorf("controller: rotation range [%v, %v] deg: %w",
			cfg.RotationMinDeg, cfg.RotationMaxDeg, ErrInvalidRange)
	}
	if cfg.AngularVelocityMin > cfg.AngularVelocityMax {
		return nil, fmt.Errorf("controller: angular velocity range [%v, %v]: %w",
			cfg.AngularVelocityMin, cfg.AngularVelocityMax, ErrInvalidRange)
	}
	if cfg.IdleThreshold < 0 {
		return nil, fmt.Errorf("controller: idle threshold %v: %w", cfg.IdleThreshold, ErrInvalidInterval)
	}
	if cfg.MaxUpwardSpeed < 0 {
		return nil, fmt.Errorf("controller: max upward speed %v: %w", cfg.MaxUpwardSpeed, ErrInvalidParameter)
	}
	if cfg.FallRotationRate < 0 {
		return nil, fmt.Errorf("controller: fall rotation rate %v: %w", cfg.FallRotationRate, ErrInvalidParameter)
	}

	return &FlightController{
		body:   body,
		cfg:    cfg,
		rotMin: core.DegToRad(cfg.RotationMinDeg),
		rotMax: core.DegToRad(cfg.RotationMaxDeg),
	}, nil
}

// RotationBounds returns the rotation clamp in radians.
func (f *FlightController) RotationBounds() (lo, hi float64) {
	return f.rotMin, f.rotMax
}

// SinceTouch returns the seconds since the last tap.
func (f *FlightController) SinceTouch() float64 {
	return f.sinceTouch
}

// Falling reports whether the controller is in the idle-falling state.
func (f *FlightController) Falling() bool {
	return f.sinceTouch > f.cfg.IdleThreshold+timeEpsilon
}

// OnTap applies the tap impulses and restarts the idle timer. Taps are never
// rate-limited; the per-frame clamps bound the result.
func (f *FlightController) OnTap() {
	f.body.ApplyImpulse(core.V(0, f.cfg.TapImpulse.Vertical))
	f.body.ApplyAngularImpulse(f.cfg.TapImpulse.Angular)
	f.sinceTouch = 0
}

// OnFrame clamps upward speed, tips the nose down while idle, clamps
// rotation and angular velocity, and advances the idle timer.
func (f *FlightController) OnFrame(dt float64) {
	if !usableDelta(dt) {
		dt = 0
	}

	// Only the upward direction is bounded.
	if v := f.body.Velocity(); v.Y > f.cfg.MaxUpwardSpeed {
		v.Y = f.cfg.MaxUpwardSpeed
		f.body.SetVelocity(v)
	}

	// Idle time counts through the end of this frame.
	if f.sinceTouch+dt > f.cfg.IdleThreshold+timeEpsilon {
		f.body.ApplyAngularImpulse(-f.cfg.FallRotationRate * dt)
	}

	f.body.SetRotation(core.ClampF(f.body.Rotation(), f.rotMin, f.rotMax))
	f.body.SetAngularVelocity(core.ClampF(f.body.AngularVelocity(),
		f.cfg.AngularVelocityMin, f.cfg.AngularVelocityMax))

	f.sinceTouch += dt
}
