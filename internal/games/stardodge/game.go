// Package stardodge implements a dodge game: the player walks around a fixed
// field of stars and the run ends on the first contact with one.
package stardodge

import (
	"math/rand"

	"github.com/vovakirdan/star-dodge/internal/config"
	"github.com/vovakirdan/star-dodge/internal/core"
)

// Sprite sheet names handed to core.Canvas.
const (
	SheetMan  = "man"
	SheetStar = "star"
)

// Game holds the whole game state. Frontends drive it through core.Game.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	frames  []core.Rect // Source rectangles on the man sheet, built once

	man   Man
	stars []Star

	numFrames int // Render calls since Reset
	manFrame  int // Current walk-cycle step
	tickCount int // Step calls since Reset
	gameOver  bool
	reason    core.EndReason
}

// New creates a game from the given configuration. Call Reset before use.
func New(cfg config.Config) *Game {
	a := cfg.Animation
	return &Game{
		cfg:    cfg,
		frames: buildFrames(a.Columns, a.Rows, a.FrameWidth, a.FrameHeight),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stardodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Reset places the player at the start and scatters a fresh star field.
// A zero screen size in runtime falls back to the configured window size.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.ScreenW <= 0 || runtime.ScreenH <= 0 {
		runtime.ScreenW = g.cfg.Window.Width
		runtime.ScreenH = g.cfg.Window.Height
	}
	g.runtime = runtime

	p := g.cfg.Player
	g.man = Man{
		X:         p.X,
		Y:         p.Y,
		W:         p.Width,
		H:         p.Height,
		Direction: DirectionRight,
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	size := g.cfg.Obstacles.Size
	g.stars = make([]Star, g.cfg.Obstacles.Count)
	for i := range g.stars {
		g.stars[i] = Star{
			X: rng.Intn(runtime.ScreenW - size),
			Y: rng.Intn(runtime.ScreenH - size),
			W: size,
			H: size,
		}
	}

	g.numFrames = 0
	g.manFrame = 0
	g.tickCount = 0
	g.gameOver = false
	g.reason = core.EndNone
}

// Step runs one frame: input events, movement, then the collision sweep.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if reason := g.processEvents(in.Events); reason != core.EndNone {
		g.end(reason)
	}
	g.move(in)

	contacts := g.Sweep()
	if len(contacts) > 0 {
		g.end(core.EndCollision)
	}

	return core.StepResult{State: g.State(), Contacts: contacts}
}

// end marks the run over. The first reason recorded wins.
func (g *Game) end(reason core.EndReason) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.reason = reason
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.gameOver,
		Reason:   g.reason,
		Ticks:    g.tickCount,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Man {
	return g.man
}

// Obstacles returns a copy of the star field.
func (g *Game) Obstacles() []Star {
	return append([]Star(nil), g.stars...)
}

// AnimationStep returns the current walk-cycle step.
func (g *Game) AnimationStep() int {
	return g.manFrame
}

// Bounds returns the world size the game was reset with.
func (g *Game) Bounds() (int, int) {
	return g.runtime.ScreenW, g.runtime.ScreenH
}
