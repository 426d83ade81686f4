// Package config provides YAML-based configuration loading for the
// simulation tunables.
package config

// Config contains all tunable parameters for a session.
type Config struct {
	Player       PlayerConfig      `yaml:"player"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Hazards      HazardConfig      `yaml:"hazards"`
	Spawner      SpawnerConfig     `yaml:"spawner"`
	Physics      PhysicsConfig     `yaml:"physics"`
}

// PlayerConfig defines the paddle's size and movement.
// All distances are in simulation units, speeds in units per second.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	BottomOffset    float64 `yaml:"bottom_offset"`
	PointerDeadZone float64 `yaml:"pointer_dead_zone"`
}

// CollectibleConfig defines spawn parameter ranges for reward entities.
type CollectibleConfig struct {
	MinRadius       float64 `yaml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius"`
	MinFallSpeed    float64 `yaml:"min_fall_speed"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleRate      float64 `yaml:"wobble_rate"`
	Points          int     `yaml:"points"`
}

// HazardConfig defines spawn parameter ranges for danger entities.
// Fall speed gets a linear bonus proportional to the current score,
// capped at MaxSpeedBonus.
type HazardConfig struct {
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MinFallSpeed  float64 `yaml:"min_fall_speed"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	SpeedPerPoint float64 `yaml:"speed_per_point"`
	MaxSpeedBonus float64 `yaml:"max_speed_bonus"`
	MinSpin       float64 `yaml:"min_spin"`
	MaxSpin       float64 `yaml:"max_spin"`
}

// SpawnerConfig defines the spawn cadence and its difficulty ramp.
// Intervals are in milliseconds.
type SpawnerConfig struct {
	InitialIntervalMs float64 `yaml:"initial_interval_ms"`
	MinIntervalMs     float64 `yaml:"min_interval_ms"`
	RampPeriodMs      float64 `yaml:"ramp_period_ms"`
	RampStepMs        float64 `yaml:"ramp_step_ms"`
	CollectibleChance float64 `yaml:"collectible_chance"`
	EdgeMargin        float64 `yaml:"edge_margin"`
}

// PhysicsConfig defines integration limits.
type PhysicsConfig struct {
	MaxDeltaMs   float64 `yaml:"max_delta_ms"`
	BottomMargin float64 `yaml:"bottom_margin"`
}
