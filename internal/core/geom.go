// Package core provides fundamental types and utilities shared by the simulation
// and its frontends. It has no external dependencies so game logic stays pure and
// testable without a terminal or a window.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two cell rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Box is an axis-aligned bounding box in world units.
// Width and height are never negative; NewBox clamps them.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box, clamping negative dimensions to zero.
func NewBox(x, y, w, h float64) Box {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Overlaps tests two boxes with each extent scaled by shrink before comparison.
// A shrink of 1 is plain AABB; arcade hits use 0.6-0.7 so grazes don't count.
func Overlaps(a, b Box, shrink float64) bool {
	return a.X < b.X+b.W*shrink &&
		a.X+a.W*shrink > b.X &&
		a.Y < b.Y+b.H*shrink &&
		a.Y+a.H*shrink > b.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Approach moves cur toward target by the given fraction of the remaining distance.
func Approach(cur, target, fraction float64) float64 {
	return cur + (target-cur)*fraction
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
