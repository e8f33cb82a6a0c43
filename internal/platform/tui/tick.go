// Package tui runs a game inside the terminal using Bubble Tea.
// It projects the pixel world onto the character grid and emulates key
// releases, which terminals do not report.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// exitMsg is sent once the game-over hold has elapsed.
type exitMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// exitCmd fires exitMsg after the delay.
func exitCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return exitMsg{}
	})
}
