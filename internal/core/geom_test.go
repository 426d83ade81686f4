package core

import "testing"

func TestRectOverlapsCircle(t *testing.T) {
	paddle := NewRect(100, 200, 80, 20)

	tests := []struct {
		name       string
		cx, cy, r  float64
		expected   bool
	}{
		{"center inside rect", 140, 210, 5, true},
		{"circle above, touching", 140, 190, 10, true},
		{"circle above, clear", 140, 150, 10, false},
		{"circle left of rect, overlapping", 95, 210, 10, true},
		{"circle left of rect, clear", 80, 210, 10, false},
		{"corner contact within radius", 95, 195, 8, true},
		{"corner just out of reach", 90, 190, 8, false},
		{"below rect, overlapping", 140, 228, 10, true},
		{"below rect, clear", 140, 250, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := paddle.OverlapsCircle(tc.cx, tc.cy, tc.r)
			if got != tc.expected {
				t.Errorf("OverlapsCircle(%v, %v, %v) = %v, expected %v",
					tc.cx, tc.cy, tc.r, got, tc.expected)
			}
		})
	}
}

func TestRectClosestPoint(t *testing.T) {
	r := NewRect(10, 10, 20, 10)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"point inside maps to itself", 15, 12, 15, 12},
		{"point left", 0, 15, 10, 15},
		{"point right", 50, 15, 30, 15},
		{"point above", 20, 0, 20, 10},
		{"point below-right corner", 100, 100, 30, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gx, gy := r.ClosestPoint(tc.x, tc.y)
			if gx != tc.wantX || gy != tc.wantY {
				t.Errorf("ClosestPoint(%v, %v) = (%v, %v), expected (%v, %v)",
					tc.x, tc.y, gx, gy, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(5, 0, 10) != 5 {
		t.Error("ClampInt(5, 0, 10) should be 5")
	}
	if ClampInt(-1, 0, 10) != 0 {
		t.Error("ClampInt(-1, 0, 10) should be 0")
	}
	if ClampInt(11, 0, 10) != 10 {
		t.Error("ClampInt(11, 0, 10) should be 10")
	}
}

func TestMinMaxInt(t *testing.T) {
	if MinInt(5, 10) != 5 {
		t.Error("MinInt(5, 10) should be 5")
	}
	if MaxInt(5, 10) != 10 {
		t.Error("MaxInt(5, 10) should be 10")
	}
}
