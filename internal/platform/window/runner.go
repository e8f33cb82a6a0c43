package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/star-dodge/internal/core"
)

// phase is the lifecycle position of a run.
type phase int

const (
	phaseUninitialized phase = iota
	phaseRunning
	phaseTerminated
)

// runner adapts a core.Game to ebiten.Game.
type runner struct {
	game   core.Game
	opts   Options
	logger *log.Logger
	canvas *canvas

	// Hooks over Ebiten globals, replaced in tests.
	read    func() core.InputFrame
	overlay func(*ebiten.Image)
	free    func(*ebiten.Image)

	phase      phase
	last       core.StepResult
	finalDrawn bool
	deadline   time.Time
	now        func() time.Time
}

func newRunner(game core.Game, opts Options, logger *log.Logger) *runner {
	return &runner{
		game:    game,
		opts:    opts,
		logger:  logger,
		canvas:  newCanvas(),
		read:    newKeyReader().Read,
		overlay: drawGameOver,
		free:    (*ebiten.Image).Deallocate,
		now:     time.Now,
	}
}

// Update runs one frame of game logic.
func (r *runner) Update() error {
	switch r.phase {
	case phaseUninitialized:
		return nil
	case phaseTerminated:
		if r.finalDrawn && !r.now().Before(r.deadline) {
			return ebiten.Termination
		}
		return nil
	}

	result := r.game.Step(r.read())
	r.last = result

	for _, c := range result.Contacts {
		r.logger.Info("game over", "star", c.Index, "side", c.Side)
	}
	if result.State.GameOver {
		r.phase = phaseTerminated
		r.logger.Info("run ended", "reason", result.State.Reason, "ticks", result.State.Ticks)
	}
	return nil
}

// Draw renders the frame. After the run ends it renders once more and then
// leaves the screen untouched until the exit delay has passed.
func (r *runner) Draw(screen *ebiten.Image) {
	if r.phase == phaseUninitialized || r.finalDrawn {
		return
	}

	r.canvas.target = screen
	r.game.Render(r.canvas)

	if r.phase == phaseTerminated {
		r.overlay(screen)
		r.finalDrawn = true
		r.deadline = r.now().Add(r.opts.ExitDelay)
	}
}

// Layout keeps a fixed logical resolution.
func (r *runner) Layout(_, _ int) (int, int) {
	return r.opts.Width, r.opts.Height
}

// acquire loads every sprite texture in order. Failures are logged and leave
// the sheet without a texture.
func (r *runner) acquire() {
	for _, s := range r.opts.Sprites {
		img, err := loadSprite(s.Path, r.opts.ColorKey)
		if err != nil {
			r.logger.Warn("cannot load texture", "sheet", s.Sheet, "error", err)
			r.canvas.add(s.Sheet, nil)
			continue
		}
		r.canvas.add(s.Sheet, ebiten.NewImageFromImage(img))
		r.logger.Debug("texture loaded", "sheet", s.Sheet, "path", s.Path)
	}
}

// release frees textures in reverse acquisition order. Ebiten tears down the
// renderer and window when RunGame returns.
func (r *runner) release() {
	for i := len(r.canvas.order) - 1; i >= 0; i-- {
		sheet := r.canvas.order[i]
		if tex := r.canvas.textures[sheet]; tex != nil {
			r.free(tex)
			r.logger.Debug("texture released", "sheet", sheet)
		}
	}
	r.canvas.reset()
}
