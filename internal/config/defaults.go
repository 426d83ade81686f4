package config

import (
	_ "embed"
)

//go:embed defaults/starcatch.yaml
var defaultYAML []byte

// Default returns the default simulation configuration.
// Mirrors defaults/starcatch.yaml; used as a last-resort fallback when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			Width:           80,
			Height:          20,
			Speed:           520,
			BottomOffset:    40,
			PointerDeadZone: 6,
		},
		Collectibles: CollectibleConfig{
			MinRadius:       12,
			MaxRadius:       22,
			MinFallSpeed:    140,
			MaxFallSpeed:    320,
			WobbleAmplitude: 26,
			WobbleRate:      6,
			Points:          10,
		},
		Hazards: HazardConfig{
			MinRadius:     18,
			MaxRadius:     36,
			MinFallSpeed:  200,
			MaxFallSpeed:  460,
			SpeedPerPoint: 0.6,
			MaxSpeedBonus: 240,
			MinSpin:       -1.5,
			MaxSpin:       1.5,
		},
		Spawner: SpawnerConfig{
			InitialIntervalMs: 900,
			MinIntervalMs:     380,
			RampPeriodMs:      8000,
			RampStepMs:        80,
			CollectibleChance: 0.68,
			EdgeMargin:        24,
		},
		Physics: PhysicsConfig{
			MaxDeltaMs:   40,
			BottomMargin: 30,
		},
	}
}
