package tui

import (
	"testing"

	"github.com/vovakirdan/star-dodge/internal/core"
	"github.com/vovakirdan/star-dodge/internal/games/stardodge"
)

func TestGridCanvasProject(t *testing.T) {
	c := newGridCanvas(core.NewScreen(80, 24), 800, 600)

	tests := []struct {
		name     string
		in       core.Rect
		expected core.Rect
	}{
		{"player at origin", core.NewRect(0, 0, 32, 64), core.NewRect(0, 0, 3, 2)},
		{"star", core.NewRect(100, 100, 64, 64), core.NewRect(10, 4, 6, 2)},
		{"clipped at corner", core.NewRect(790, 590, 64, 64), core.NewRect(79, 23, 1, 1)},
		{"tiny box keeps a cell", core.NewRect(5, 5, 1, 1), core.NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.project(tc.in); got != tc.expected {
				t.Errorf("project(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestManGlyph(t *testing.T) {
	tests := []struct {
		name     string
		src      *core.Rect
		expected rune
	}{
		{"idle right", &core.Rect{X: 0, Y: 192, W: 32, H: 64}, '>'},
		{"left odd step", &core.Rect{X: 32, Y: 64, W: 32, H: 64}, '◀'},
		{"down even step", &core.Rect{X: 64, Y: 0, W: 32, H: 64}, 'v'},
		{"up odd step", &core.Rect{X: 160, Y: 128, W: 32, H: 64}, '▲'},
		{"no source", nil, '>'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := manGlyph(tc.src); got != tc.expected {
				t.Errorf("manGlyph = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestGridCanvasDrawSprite(t *testing.T) {
	s := core.NewScreen(80, 24)
	c := newGridCanvas(s, 800, 600)

	c.DrawSprite(stardodge.SheetStar, nil, core.NewRect(100, 100, 64, 64))
	cell := s.GetCell(12, 5)
	if cell.Rune != starGlyph || cell.Color != core.ColorBrightYellow {
		t.Errorf("star cell = %+v", cell)
	}

	c.DrawSprite(stardodge.SheetMan, &core.Rect{X: 0, Y: 64, W: 32, H: 64}, core.NewRect(0, 0, 32, 64))
	if got := s.GetCell(0, 0).Rune; got != '<' {
		t.Errorf("man glyph = %q, expected '<'", got)
	}

	c.DrawSprite("unknown", nil, core.NewRect(400, 300, 10, 10))
	if got := s.GetCell(40, 12).Rune; got != unknownGlyph {
		t.Errorf("unknown sheet glyph = %q, expected %q", got, unknownGlyph)
	}

	c.Clear()
	if got := s.GetCell(12, 5).Rune; got != ' ' {
		t.Errorf("Clear left %q", got)
	}
}
