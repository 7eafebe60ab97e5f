// Package config provides YAML-based game configuration loading,
// difficulty presets and validation for flapper.
package config

// FlappyConfig contains all configuration for the flapper game.
// Distances are in points, times in seconds, angles in degrees.
// The viewport spans x in [0, Width] and y in [0, Height], y pointing up.
type FlappyConfig struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	World     WorldConfig     `yaml:"world"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Flight    FlightConfig    `yaml:"flight"`
}

// ViewportConfig defines the visible area in world points.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WorldConfig defines the host physics and the hero body.
type WorldConfig struct {
	Gravity      float64 `yaml:"gravity"` // vertical acceleration, negative pulls down
	GroundHeight float64 `yaml:"ground_height"`
	HeroX        float64 `yaml:"hero_x"`
	HeroWidth    float64 `yaml:"hero_width"`
	HeroHeight   float64 `yaml:"hero_height"`
	HeroMass     float64 `yaml:"hero_mass"`
	HeroInertia  float64 `yaml:"hero_inertia"`
}

// ScrollConfig defines the background and ground scrolling.
type ScrollConfig struct {
	Speed              float64 `yaml:"speed"`
	GroundSegmentWidth float64 `yaml:"ground_segment_width"`
	BackgroundParallax float64 `yaml:"background_parallax"`
}

// ObstaclesConfig defines obstacle geometry and spawning.
type ObstaclesConfig struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	YMin          float64 `yaml:"y_min"` // gap centre range, inclusive
	YMax          float64 `yaml:"y_max"`
	MaxStep       float64 `yaml:"max_step"`

	// Optional overrides. SpawnX defaults to just past the right viewport
	// edge, RemovalX to minus half the obstacle width.
	SpawnX   *float64 `yaml:"spawn_x,omitempty"`
	RemovalX *float64 `yaml:"removal_x,omitempty"`
}

// FlightConfig defines the hero's flight envelope and tap response.
type FlightConfig struct {
	MaxUpwardSpeed     float64          `yaml:"max_upward_speed"`
	RotationMin        float64          `yaml:"rotation_min"`
	RotationMax        float64          `yaml:"rotation_max"`
	AngularVelocityMin float64          `yaml:"angular_velocity_min"`
	AngularVelocityMax float64          `yaml:"angular_velocity_max"`
	IdleThreshold      float64          `yaml:"idle_threshold"`
	FallRotationRate   float64          `yaml:"fall_rotation_rate"`
	TapImpulse         TapImpulseConfig `yaml:"tap_impulse"`
}

// TapImpulseConfig is the impulse applied on every tap.
type TapImpulseConfig struct {
	Vertical float64 `yaml:"vertical"`
	Angular  float64 `yaml:"angular"`
}

// SpawnXOrDefault returns the configured spawn x or the default for viewportW.
func (o ObstaclesConfig) SpawnXOrDefault(viewportW float64) float64 {
	if o.SpawnX != nil {
		return *o.SpawnX
	}
	return viewportW + o.Width/2
}

// RemovalXOrDefault returns the configured removal x or minus half the width.
func (o ObstaclesConfig) RemovalXOrDefault() float64 {
	if o.RemovalX != nil {
		return *o.RemovalX
	}
	return -o.Width / 2
}
