package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-dodge/internal/core"
)

// keyMap holds the terminal key bindings. It implements help.KeyMap.
type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Escape, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Escape, k.Quit},
	}
}

// mapKey translates a key message to an action.
// Returns ActionNone and true for a quit request.
func (k keyMap) mapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionNone, true
	case key.Matches(msg, k.Escape):
		return core.ActionEscape, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	}
	return core.ActionOther, false
}

// movementActions are the actions whose held state is emulated, in release order.
var movementActions = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionUp,
	core.ActionDown,
}

// holdTracker emulates held keys: a press keeps the action held for a fixed
// number of ticks, and a release event is synthesized when it runs out.
type holdTracker struct {
	ticks     int
	remaining map[core.Action]int
}

func newHoldTracker(ticks int) *holdTracker {
	return &holdTracker{
		ticks:     ticks,
		remaining: make(map[core.Action]int),
	}
}

// Press starts or refreshes the hold for an action. A new arrow replaces
// any other held arrow without a key-up, as if only one key were down.
func (h *holdTracker) Press(a core.Action) {
	for other := range h.remaining {
		if other != a {
			delete(h.remaining, other)
		}
	}
	h.remaining[a] = h.ticks
}

// Apply advances one tick, marking held actions on the frame and queueing a
// key-up for each action whose hold expired.
func (h *holdTracker) Apply(in *core.InputFrame) {
	for _, a := range movementActions {
		n, ok := h.remaining[a]
		if !ok {
			continue
		}
		if n == 0 {
			delete(h.remaining, a)
			in.KeyUp(a)
			continue
		}
		in.Set(a)
		h.remaining[a] = n - 1
	}
}
