package config

import (
	"errors"
	"fmt"
)

// Validate reports every invalid field. The game refuses to start on error.
func (c FlappyConfig) Validate() error {
	var errs []error
	bad := func(field string, v any, why string) {
		errs = append(errs, fmt.Errorf("%s = %v: %s", field, v, why))
	}

	if c.Viewport.Width <= 0 {
		bad("viewport.width", c.Viewport.Width, "must be positive")
	}
	if c.Viewport.Height <= 0 {
		bad("viewport.height", c.Viewport.Height, "must be positive")
	}

	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.Viewport.Height {
		bad("world.ground_height", c.World.GroundHeight, "must be in [0, viewport.height)")
	}
	if c.World.HeroWidth <= 0 || c.World.HeroHeight <= 0 {
		bad("world.hero_width/hero_height", fmt.Sprintf("%vx%v", c.World.HeroWidth, c.World.HeroHeight), "must be positive")
	}

	if c.Scroll.Speed < 0 {
		bad("scroll.speed", c.Scroll.Speed, "must not be negative")
	}
	if c.Scroll.GroundSegmentWidth <= 0 {
		bad("scroll.ground_segment_width", c.Scroll.GroundSegmentWidth, "must be positive")
	}
	if c.Scroll.BackgroundParallax < 0 {
		bad("scroll.background_parallax", c.Scroll.BackgroundParallax, "must not be negative")
	}

	o := c.Obstacles
	if o.Width <= 0 {
		bad("obstacles.width", o.Width, "must be positive")
	}
	if o.Gap <= 0 {
		bad("obstacles.gap", o.Gap, "must be positive")
	}
	if o.SpawnInterval <= 0 {
		bad("obstacles.spawn_interval", o.SpawnInterval, "must be positive")
	}
	if o.YMin > o.YMax {
		bad("obstacles.y_min", o.YMin, fmt.Sprintf("must not exceed y_max (%v)", o.YMax))
	}
	if o.MaxStep < 0 {
		bad("obstacles.max_step", o.MaxStep, "must not be negative")
	} else if o.SpawnInterval > 0 && o.MaxStep > o.SpawnInterval {
		bad("obstacles.max_step", o.MaxStep, fmt.Sprintf("must not exceed spawn_interval (%v)", o.SpawnInterval))
	}

	f := c.Flight
	if f.MaxUpwardSpeed < 0 {
		bad("flight.max_upward_speed", f.MaxUpwardSpeed, "must not be negative")
	}
	if f.RotationMin > f.RotationMax {
		bad("flight.rotation_min", f.RotationMin, fmt.Sprintf("must not exceed rotation_max (%v)", f.RotationMax))
	}
	if f.AngularVelocityMin > f.AngularVelocityMax {
		bad("flight.angular_velocity_min", f.AngularVelocityMin,
			fmt.Sprintf("must not exceed angular_velocity_max (%v)", f.AngularVelocityMax))
	}
	if f.IdleThreshold < 0 {
		bad("flight.idle_threshold", f.IdleThreshold, "must not be negative")
	}
	if f.FallRotationRate < 0 {
		bad("flight.fall_rotation_rate", f.FallRotationRate, "must not be negative")
	}

	return errors.Join(errs...)
}
