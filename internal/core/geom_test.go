package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNewBoxClampsNegativeSize(t *testing.T) {
	b := NewBox(1, 2, -5, -3)
	if b.W != 0 || b.H != 0 {
		t.Errorf("NewBox should clamp negative size, got %vx%v", b.W, b.H)
	}
}

func TestOverlapsShrink(t *testing.T) {
	player := NewBox(0, 0, 100, 140)

	tests := []struct {
		name     string
		other    Box
		shrink   float64
		expected bool
	}{
		{"deep overlap", NewBox(30, 0, 100, 140), 0.6, true},
		{"graze counted by plain AABB", NewBox(90, 0, 100, 140), 1.0, true},
		{"graze ignored with shrink", NewBox(90, 0, 100, 140), 0.6, false},
		{"far apart", NewBox(500, 0, 100, 140), 0.6, false},
		{"vertical graze ignored", NewBox(0, 130, 100, 140), 0.6, false},
		{"landing on top counts", NewBox(0, 60, 100, 140), 0.6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(player, tc.other, tc.shrink); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(10, 20, 30, 40)
	if b.Right() != 40 || b.Bottom() != 60 {
		t.Errorf("edges = (%v, %v), expected (40, 60)", b.Right(), b.Bottom())
	}
	if b.CenterX() != 25 || b.CenterY() != 40 {
		t.Errorf("center = (%v, %v), expected (25, 40)", b.CenterX(), b.CenterY())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(-1.5, 0, 10) != 0 || ClampF(11, 0, 10) != 10 || ClampF(3.5, 0, 10) != 3.5 {
		t.Error("ClampF returned an out-of-range value")
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(0, 100, 0.1); got != 10 {
		t.Errorf("Approach(0, 100, 0.1) = %v, expected 10", got)
	}
	if got := Approach(50, 50, 0.5); got != 50 {
		t.Errorf("Approach at target should stay put, got %v", got)
	}
}
