package stardodge

import "github.com/vovakirdan/star-dodge/internal/core"

// processEvents applies queued key events to the player's flags.
// It returns the reason to stop, or core.EndNone.
func (g *Game) processEvents(events []core.Event) core.EndReason {
	reason := core.EndNone
	stop := func(r core.EndReason) {
		if reason == core.EndNone {
			reason = r
		}
	}

	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			stop(core.EndQuit)
		case core.EventKeyDown:
			if ev.Action == core.ActionEscape {
				stop(core.EndEscape)
			}
			g.man.Walking = true
			g.man.Direction = facing(ev.Action)
		case core.EventKeyUp:
			g.man.Walking = false
		}
	}
	return reason
}

// facing maps a pressed key to a direction. Keys other than arrows face right.
func facing(a core.Action) Direction {
	switch a {
	case core.ActionLeft:
		return DirectionLeft
	case core.ActionUp:
		return DirectionUp
	case core.ActionRight:
		return DirectionRight
	case core.ActionDown:
		return DirectionDown
	default:
		return DirectionRight
	}
}

// move shifts the player one step along a single axis from held keys, with
// priority Left > Right > Up > Down. A step that would leave the world is skipped.
func (g *Game) move(in core.InputFrame) {
	m := &g.man
	step := g.cfg.Player.Step
	w, h := g.runtime.ScreenW, g.runtime.ScreenH

	switch {
	case in.Has(core.ActionLeft):
		if m.X >= step {
			m.X -= step
		}
	case in.Has(core.ActionRight):
		if m.X <= w-step-m.W {
			m.X += step
		}
	case in.Has(core.ActionUp):
		if m.Y >= step {
			m.Y -= step
		}
	case in.Has(core.ActionDown):
		if m.Y <= h-step-m.H {
			m.Y += step
		}
	}
}
