package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default flapper configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Viewport: ViewportConfig{
			Width:  288,
			Height: 512,
		},
		World: WorldConfig{
			Gravity:      -1400,
			GroundHeight: 112,
			HeroX:        80,
			HeroWidth:    34,
			HeroHeight:   24,
			HeroMass:     1,
			HeroInertia:  1,
		},
		Scroll: ScrollConfig{
			Speed:              120,
			GroundSegmentWidth: 48,
			BackgroundParallax: 0.25,
		},
		Obstacles: ObstaclesConfig{
			Width:         52,
			Gap:           120,
			SpawnInterval: 1.5,
			YMin:          200,
			YMax:          400,
			MaxStep:       0.0333333333,
		},
		Flight: FlightConfig{
			MaxUpwardSpeed:     400,
			RotationMin:        -90,
			RotationMax:        30,
			AngularVelocityMin: -1,
			AngularVelocityMax: 3,
			IdleThreshold:      0.2,
			FallRotationRate:   6,
			TapImpulse: TapImpulseConfig{
				Vertical: 400,
				Angular:  3,
			},
		},
	}
}
