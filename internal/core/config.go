package core

// RuntimeConfig contains configuration passed to the session at creation.
// The simulation uses it to size the playfield and seed its RNG.
type RuntimeConfig struct {
	Cols     int   // Terminal width in characters
	Rows     int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols:     80,
		Rows:     24,
		TickRate: 60,
		Seed:     0,
	}
}
