// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned bounding box in world units, used for collision
// detection. X and Y are the minimum corner; with the invaders world having
// y growing upward, that is the bottom-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle from its minimum corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenterRect creates a rectangle centered on (cx, cy).
func CenterRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the maximum edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are inclusive: rectangles that only touch still intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Top() || other.Y > r.Top() {
		return false
	}
	return true
}

// ContainsPoint returns true if (x, y) lies inside the rectangle or on its edge.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Top()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an integer rectangle in screen cells. Y grows downward.
type Box struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewBox creates a new cell rectangle with the given position and dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (b Box) Bottom() int {
	return b.Y + b.H
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
