package stardodge

import "github.com/vovakirdan/star-dodge/internal/core"

// Render draws the player and the star field, then advances the animation
// counters. Every call counts, walking or not.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	frame := g.frames[g.frameIndex()]
	dst.DrawSprite(SheetMan, &frame, g.man.Rect())

	size := g.cfg.Obstacles.Size
	for _, s := range g.stars {
		dst.DrawSprite(SheetStar, nil, core.NewRect(s.X, s.Y, size, size))
	}

	g.numFrames++
	if g.numFrames%g.cfg.Animation.TicksPerStep == 0 {
		g.manFrame++
		if g.manFrame == g.cfg.Animation.Columns {
			g.manFrame = g.cfg.Animation.WrapTo
		}
	}
}

// frameIndex selects the sheet frame: the row's first frame when idle, the
// current walk step of that row when walking.
func (g *Game) frameIndex() int {
	base := g.cfg.Animation.Columns * int(g.man.Direction)
	if g.man.Walking {
		return base + g.manFrame
	}
	return base
}
