package game

import (
	"math"

	"github.com/dkotenko/starcatch/internal/core"
)

// Player is the paddle at the bottom of the playfield.
// Mutated only by the physics step from input intent; X is clamped so the
// paddle stays inside the playfield.
type Player struct {
	X, Y  float64 // Top-left corner in simulation units
	W, H  float64
	VX    float64 // Horizontal velocity, units per second
	Speed float64 // Full movement speed, units per second
}

// Bounds returns the paddle's collision rectangle.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Collectible is a reward entity. Caught by the paddle it scores points,
// otherwise it falls out the bottom.
type Collectible struct {
	X, Y      float64
	Radius    float64
	FallSpeed float64 // Units per second
	Phase     float64 // Drives the lateral wobble
}

// Advance integrates the collectible by dt seconds: vertical fall plus a
// sinusoidal lateral wobble from the advancing phase.
func (c *Collectible) Advance(dt, wobbleAmp, wobbleRate float64) {
	c.Phase += wobbleRate * dt
	c.X += math.Sin(c.Phase) * wobbleAmp * dt
	c.Y += c.FallSpeed * dt
}

// Hazard is a danger entity. Contact with the paddle ends the session.
type Hazard struct {
	X, Y      float64
	Radius    float64
	FallSpeed float64 // Units per second, includes the score-based bonus
	Rotation  float64 // Radians
	Spin      float64 // Radians per second
}

// Advance integrates the hazard by dt seconds.
func (h *Hazard) Advance(dt float64) {
	h.Y += h.FallSpeed * dt
	h.Rotation += h.Spin * dt
}
