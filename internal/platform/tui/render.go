package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-dodge/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	overStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawBanner draws a boxed game-over message in the middle of the screen.
func drawBanner(s *core.Screen, reason core.EndReason) {
	lines := []string{"GAME OVER", describe(reason)}
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}

	w := core.Min(inner+4, s.Width())
	h := core.Min(len(lines)+2, s.Height())
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		s.DrawText(x, box.Y+1+i, l, core.ColorBrightRed)
	}
}

func describe(reason core.EndReason) string {
	switch reason {
	case core.EndCollision:
		return "hit a star"
	case core.EndEscape:
		return "escape pressed"
	case core.EndQuit:
		return "quit"
	default:
		return reason.String()
	}
}
