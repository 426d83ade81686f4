package game

import (
	"math"
	"math/rand"

	"github.com/dkotenko/starcatch/internal/config"
)

// Spawner decides when and what to spawn as difficulty increases.
// At most one entity is produced per tick: the spawn fires when the
// accumulated timer exceeds the current interval. A separate accumulator
// tightens the interval on a fixed period, down to a floor.
type Spawner struct {
	cfg config.Config
	rng *rand.Rand

	interval   float64 // Current spawn interval, seconds
	spawnTimer float64
	rampTimer  float64
}

// NewSpawner creates a spawner with the given configuration and random
// source. The random source is injectable so spawn sequences are
// reproducible in tests.
func NewSpawner(cfg config.Config, rng *rand.Rand) *Spawner {
	sp := &Spawner{cfg: cfg, rng: rng}
	sp.Reset()
	return sp
}

// Reset restores the initial spawn interval and clears both accumulators.
// Called at the start of every session.
func (sp *Spawner) Reset() {
	sp.interval = sp.cfg.Spawner.InitialIntervalMs / 1000
	sp.spawnTimer = 0
	sp.rampTimer = 0
}

// IntervalMs returns the current spawn interval in milliseconds.
func (sp *Spawner) IntervalMs() float64 {
	return sp.interval * 1000
}

// Update advances both timers by dt seconds and returns at most one newly
// spawned entity. Exactly one of the return values is non-nil when a spawn
// fires.
func (sp *Spawner) Update(dt float64, score int, fieldW float64) (*Collectible, *Hazard) {
	// Difficulty ramp runs on its own accumulator, independent of spawns
	sp.rampTimer += dt
	if sp.rampTimer >= sp.cfg.Spawner.RampPeriodMs/1000 {
		sp.rampTimer = 0
		floor := sp.cfg.Spawner.MinIntervalMs / 1000
		sp.interval = math.Max(floor, sp.interval-sp.cfg.Spawner.RampStepMs/1000)
	}

	sp.spawnTimer += dt
	if sp.spawnTimer < sp.interval {
		return nil, nil
	}
	sp.spawnTimer = 0

	if sp.rng.Float64() < sp.cfg.Spawner.CollectibleChance {
		return sp.spawnCollectible(fieldW), nil
	}
	return nil, sp.spawnHazard(fieldW, score)
}

// spawnCollectible draws collectible parameters and places it just above
// the top edge.
func (sp *Spawner) spawnCollectible(fieldW float64) *Collectible {
	c := sp.cfg.Collectibles
	radius := sp.uniform(c.MinRadius, c.MaxRadius)
	return &Collectible{
		X:         sp.spawnX(fieldW),
		Y:         -radius,
		Radius:    radius,
		FallSpeed: sp.uniform(c.MinFallSpeed, c.MaxFallSpeed),
		Phase:     sp.uniform(0, 2*math.Pi),
	}
}

// spawnHazard draws hazard parameters. Fall speed gets a linear bonus
// proportional to the current score, capped so high scores stay playable.
// Hazards start further above the edge than collectibles to account for
// their larger radius.
func (sp *Spawner) spawnHazard(fieldW float64, score int) *Hazard {
	h := sp.cfg.Hazards
	radius := sp.uniform(h.MinRadius, h.MaxRadius)
	bonus := math.Min(h.SpeedPerPoint*float64(score), h.MaxSpeedBonus)
	return &Hazard{
		X:         sp.spawnX(fieldW),
		Y:         -(radius + 10),
		Radius:    radius,
		FallSpeed: sp.uniform(h.MinFallSpeed, h.MaxFallSpeed) + bonus,
		Rotation:  sp.uniform(0, math.Pi),
		Spin:      sp.uniform(h.MinSpin, h.MaxSpin),
	}
}

// spawnX draws a horizontal position inside the playfield, inset by the
// configured margin from each edge.
func (sp *Spawner) spawnX(fieldW float64) float64 {
	margin := sp.cfg.Spawner.EdgeMargin
	return sp.uniform(margin, fieldW-margin)
}

// uniform draws from [lo, hi).
func (sp *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + sp.rng.Float64()*(hi-lo)
}
