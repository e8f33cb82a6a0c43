package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-dodge/internal/core"
)

func TestKeyMapMapKey(t *testing.T) {
	km := defaultKeyMap()

	tests := []struct {
		name           string
		msg            tea.KeyMsg
		expectedAction core.Action
		expectedQuit   bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionEscape, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionOther, false},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionOther, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.mapKey(tc.msg)
			if action != tc.expectedAction {
				t.Errorf("action = %v, expected %v", action, tc.expectedAction)
			}
			if isQuit != tc.expectedQuit {
				t.Errorf("isQuit = %v, expected %v", isQuit, tc.expectedQuit)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := defaultKeyMap()
	if got := len(km.ShortHelp()); got != 6 {
		t.Errorf("ShortHelp has %d bindings, expected 6", got)
	}
	if got := len(km.FullHelp()); got != 2 {
		t.Errorf("FullHelp has %d groups, expected 2", got)
	}
}

// applyTick runs one tick of the tracker on a fresh frame.
func applyTick(h *holdTracker) core.InputFrame {
	in := core.NewInputFrame()
	h.Apply(&in)
	return in
}

func TestHoldTrackerExpires(t *testing.T) {
	h := newHoldTracker(3)
	h.Press(core.ActionRight)

	for tick := 1; tick <= 3; tick++ {
		in := applyTick(h)
		if !in.Has(core.ActionRight) {
			t.Fatalf("tick %d: right should be held", tick)
		}
		if len(in.Events) != 0 {
			t.Fatalf("tick %d: unexpected events %v", tick, in.Events)
		}
	}

	in := applyTick(h)
	if in.Has(core.ActionRight) {
		t.Error("right should no longer be held")
	}
	expected := core.Event{Kind: core.EventKeyUp, Action: core.ActionRight}
	if len(in.Events) != 1 || in.Events[0] != expected {
		t.Fatalf("events = %v, expected [%v]", in.Events, expected)
	}

	if in := applyTick(h); len(in.Events) != 0 {
		t.Errorf("key-up should be sent once, got %v", in.Events)
	}
}

func TestHoldTrackerRefresh(t *testing.T) {
	h := newHoldTracker(2)
	h.Press(core.ActionUp)
	applyTick(h)
	h.Press(core.ActionUp) // auto-repeat

	for tick := 0; tick < 2; tick++ {
		if in := applyTick(h); !in.Has(core.ActionUp) {
			t.Fatalf("repeat tick %d: up should still be held", tick)
		}
	}

	in := applyTick(h)
	if in.Has(core.ActionUp) || len(in.Events) != 1 {
		t.Errorf("refreshed hold should expire after 2 more ticks, got held=%v events=%v",
			in.Has(core.ActionUp), in.Events)
	}
}

func TestHoldTrackerNewArrowReplacesHeld(t *testing.T) {
	h := newHoldTracker(3)
	h.Press(core.ActionLeft)
	applyTick(h)
	h.Press(core.ActionRight)

	for tick := 1; tick <= 3; tick++ {
		in := applyTick(h)
		if in.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should be dropped once right is pressed", tick)
		}
		if !in.Has(core.ActionRight) {
			t.Fatalf("tick %d: right should be held", tick)
		}
		if len(in.Events) != 0 {
			t.Fatalf("tick %d: replaced arrow should not send a key-up, got %v", tick, in.Events)
		}
	}

	in := applyTick(h)
	expected := core.Event{Kind: core.EventKeyUp, Action: core.ActionRight}
	if len(in.Events) != 1 || in.Events[0] != expected {
		t.Errorf("events = %v, expected only [%v]", in.Events, expected)
	}
}
