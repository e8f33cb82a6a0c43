package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/star-dodge/internal/core"
)

// heldKeys lists the keys whose held state drives movement.
var heldKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
}

// mapKey converts an Ebiten key to a semantic action.
func mapKey(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyArrowLeft:
		return core.ActionLeft
	case ebiten.KeyArrowRight:
		return core.ActionRight
	case ebiten.KeyArrowUp:
		return core.ActionUp
	case ebiten.KeyArrowDown:
		return core.ActionDown
	case ebiten.KeyEscape:
		return core.ActionEscape
	default:
		return core.ActionOther
	}
}

// buildFrame turns one frame's raw key state into an input frame.
// Event order is quit, then presses, then releases.
func buildFrame(closing bool, pressed, released []ebiten.Key, held func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	if closing {
		in.Quit()
	}
	for _, k := range pressed {
		in.KeyDown(mapKey(k))
	}
	for _, k := range released {
		in.KeyUp(mapKey(k))
	}
	for _, hk := range heldKeys {
		if held(hk.key) {
			in.Set(hk.action)
		}
	}
	return in
}

// keyReader polls Ebiten's keyboard state once per frame.
type keyReader struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func newKeyReader() *keyReader {
	return &keyReader{}
}

// Read drains the keys that changed since the previous frame.
func (k *keyReader) Read() core.InputFrame {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	return buildFrame(ebiten.IsWindowBeingClosed(), k.pressed, k.released, ebiten.IsKeyPressed)
}
