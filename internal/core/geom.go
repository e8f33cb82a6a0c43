// Package core provides fundamental types and utilities shared by the game and
// its frontends. It contains no external dependencies (no Ebiten, no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in pixel coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle (integer division).
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Side identifies the edge of an obstacle through which a moving box entered it.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Collide tests a against b with the Minkowski-sum method.
//
// The boxes overlap when the distance between their centers is within the sum of
// their half extents on both axes. Touching edges count as contact. On overlap the
// side is picked by comparing the center offset against the diagonals of the
// summed box. Comparisons are strict, so a center offset lying exactly on a
// diagonal falls to the else branch (coincident centers yield SideBottom).
func Collide(a, b Rect) Side {
	w := (a.W + b.W) / 2
	h := (a.H + b.H) / 2

	ax, ay := a.Center()
	bx, by := b.Center()
	dx := ax - bx
	dy := ay - by

	if Abs(dx) > w || Abs(dy) > h {
		return SideNone
	}

	wy := w * dy
	hx := h * dx

	if wy > hx {
		if wy > -hx {
			return SideTop
		}
		return SideRight
	}
	if wy > -hx {
		return SideLeft
	}
	return SideBottom
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
