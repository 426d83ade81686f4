// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Size is the dimensions of the playfield in simulation units.
type Size struct {
	W, H float64
}

// Rect represents an axis-aligned bounding box in simulation units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// ClosestPoint returns the point on or inside the rectangle nearest to (x, y).
func (r Rect) ClosestPoint(x, y float64) (float64, float64) {
	return Clamp(x, r.X, r.Right()), Clamp(y, r.Y, r.Bottom())
}

// OverlapsCircle reports whether a circle centered at (cx, cy) with the
// given radius overlaps this rectangle. Uses the standard closest-point
// distance test.
func (r Rect) OverlapsCircle(cx, cy, radius float64) bool {
	px, py := r.ClosestPoint(cx, cy)
	dx := cx - px
	dy := cy - py
	return dx*dx+dy*dy <= radius*radius
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// ClampInt restricts an integer to be within [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// MinInt returns the smaller of two integers.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt returns the larger of two integers.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
