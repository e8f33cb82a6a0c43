package stardodge

import "github.com/vovakirdan/star-dodge/internal/core"

// Direction is the player's facing. Values double as sprite sheet rows.
type Direction int

const (
	DirectionDown Direction = iota
	DirectionLeft
	DirectionUp
	DirectionRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Man is the player.
type Man struct {
	X, Y      int
	W, H      int
	Walking   bool      // Set on key down, cleared on key up
	Direction Direction // Facing, selects the sprite sheet row
	Life      int16     // Unused by game logic
	Name      string    // Unused by game logic
}

// Rect returns the player's bounding box.
func (m Man) Rect() core.Rect {
	return core.NewRect(m.X, m.Y, m.W, m.H)
}

// Star is a static obstacle.
type Star struct {
	X, Y int
	W, H int
}

// Rect returns the obstacle's bounding box.
func (s Star) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}

// buildFrames lays out a cols x rows grid of w x h source rectangles, row-major.
func buildFrames(cols, rows, w, h int) []core.Rect {
	frames := make([]core.Rect, cols*rows)
	for i := range frames {
		frames[i] = core.NewRect((i%cols)*w, (i/cols)*h, w, h)
	}
	return frames
}
