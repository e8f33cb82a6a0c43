package tui

import (
	"github.com/vovakirdan/star-dodge/internal/core"
	"github.com/vovakirdan/star-dodge/internal/games/stardodge"
)

const (
	starGlyph    = '✶'
	unknownGlyph = '?'
)

// manGlyphs holds the player glyph per sheet row (down, left, up, right).
// The second glyph is used on odd walk-cycle steps.
var manGlyphs = [4][2]rune{
	{'v', '▼'},
	{'<', '◀'},
	{'^', '▲'},
	{'>', '▶'},
}

// gridCanvas implements core.Canvas by projecting world pixels onto a Screen.
type gridCanvas struct {
	screen *core.Screen
	worldW int
	worldH int
}

func newGridCanvas(screen *core.Screen, worldW, worldH int) *gridCanvas {
	return &gridCanvas{screen: screen, worldW: worldW, worldH: worldH}
}

// Clear blanks the grid.
func (c *gridCanvas) Clear() {
	c.screen.Clear()
}

// DrawSprite fills the projected destination with the sheet's glyph.
func (c *gridCanvas) DrawSprite(sheet string, src *core.Rect, dst core.Rect) {
	glyph, color := unknownGlyph, core.ColorGray
	switch sheet {
	case stardodge.SheetStar:
		glyph, color = starGlyph, core.ColorBrightYellow
	case stardodge.SheetMan:
		glyph, color = manGlyph(src), core.ColorBrightCyan
	}
	c.screen.DrawRect(c.project(dst), glyph, color)
}

// project maps a world rectangle to grid cells. Every visible box covers at
// least one cell.
func (c *gridCanvas) project(r core.Rect) core.Rect {
	cols, rows := c.screen.Width(), c.screen.Height()

	x0 := core.Clamp(r.X*cols/c.worldW, 0, cols-1)
	y0 := core.Clamp(r.Y*rows/c.worldH, 0, rows-1)
	x1 := core.Clamp(r.Right()*cols/c.worldW, x0+1, cols)
	y1 := core.Clamp(r.Bottom()*rows/c.worldH, y0+1, rows)

	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// manGlyph picks the glyph from the source frame: its row is the facing and
// its column the walk-cycle step.
func manGlyph(src *core.Rect) rune {
	if src == nil || src.W <= 0 || src.H <= 0 {
		return manGlyphs[stardodge.DirectionRight][0]
	}
	row := (src.Y / src.H) % len(manGlyphs)
	step := (src.X / src.W) % 2
	return manGlyphs[row][step]
}
