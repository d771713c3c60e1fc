// Package physics provides collision detection and vector utilities.
package physics

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two rectangles intersect with nonzero area.
// Rectangles that only touch along an edge do not overlap, and an empty
// rectangle overlaps nothing.
func Overlaps(a, b Rect) bool {
	return overlap(a.X, a.W, b.X, b.W) > 0 && overlap(a.Y, a.H, b.Y, b.H) > 0
}

// overlap returns the length shared by two intervals on one axis, or a
// non-positive value when they are disjoint.
func overlap(aStart, aLen, bStart, bLen float64) float64 {
	return min(aStart+aLen, bStart+bLen) - max(aStart, bStart)
}

// Normalize scales (x, y) to unit length. A zero vector uses a length of 1,
// so it stays zero instead of dividing by zero.
func Normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		length = 1
	}
	return x / length, y / length
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func IsFinite(x, y float64) bool {
	return isFinite(x) && isFinite(y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
