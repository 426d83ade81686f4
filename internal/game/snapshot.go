package game

// Snapshot is a primitive-typed dump of the observable session state,
// for tests and debugging.
type Snapshot struct {
	Phase           string
	Score           int
	HighScore       int
	SpawnIntervalMs float64
	ElapsedSec      float64
	PlayerX         float64
	Collectibles    int
	Hazards         int
}

// Snapshot returns the current observable session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:           s.phase.String(),
		Score:           s.score,
		HighScore:       s.highScore,
		SpawnIntervalMs: s.spawner.IntervalMs(),
		ElapsedSec:      s.elapsed,
		PlayerX:         s.player.X,
		Collectibles:    len(s.collectibles),
		Hazards:         len(s.hazards),
	}
}
