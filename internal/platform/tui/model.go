package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-dodge/internal/config"
	"github.com/vovakirdan/star-dodge/internal/core"
)

// footerRows is the number of terminal rows below the playfield.
const footerRows = 1

// Options configures the terminal frontend.
type Options struct {
	Title     string
	Cols      int // Initial terminal width
	Rows      int // Initial terminal height
	HoldTicks int
	ExitDelay time.Duration

	Runtime core.RuntimeConfig
}

// NewOptions builds terminal options from the game configuration.
// A non-positive fps keeps the default tick rate.
func NewOptions(cfg config.Config, fps, cols, rows int) Options {
	runtime := core.DefaultConfig()
	runtime.ScreenW = cfg.Window.Width
	runtime.ScreenH = cfg.Window.Height
	if fps > 0 {
		runtime.TickRate = fps
	}

	return Options{
		Title:     cfg.Window.Title,
		Cols:      cols,
		Rows:      rows,
		HoldTicks: cfg.Terminal.HoldTicks,
		ExitDelay: cfg.Window.ExitDelay,
		Runtime:   runtime,
	}
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game    core.Game
	opts    Options
	screen  *core.Screen
	canvas  *gridCanvas
	keys    keyMap
	help    help.Model
	holds   *holdTracker
	pending core.InputFrame // Events received since the last tick

	last     core.StepResult
	frame    string // Rendered playfield, refreshed once per tick
	over     bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(core.Max(opts.Cols, 1), core.Max(opts.Rows-footerRows, 1))
	return Model{
		game:    game,
		opts:    opts,
		screen:  screen,
		canvas:  newGridCanvas(screen, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    defaultKeyMap(),
		help:    help.New(),
		holds:   newHoldTracker(opts.HoldTicks),
		pending: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case exitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues the key as an event for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.mapKey(msg)

	if m.over {
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if isQuit {
		m.pending.Quit()
		return m, nil
	}

	m.pending.KeyDown(action)
	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		m.holds.Press(action)
	}
	return m, nil
}

// handleResize fits the playfield to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(core.Max(msg.Width, 1), core.Max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: step, then render.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.over {
		return m, nil
	}

	in := m.pending
	m.holds.Apply(&in)
	m.pending = core.NewInputFrame()

	m.last = m.game.Step(in)
	m.game.Render(m.canvas)

	if m.last.State.GameOver {
		m.over = true
		drawBanner(m.screen, m.last.State.Reason)
		m.frame = RenderScreen(m.screen)
		return m, exitCmd(m.opts.ExitDelay)
	}

	m.frame = RenderScreen(m.screen)
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame + "\n" + m.footer()
}

func (m Model) footer() string {
	status := titleStyle.Render(m.opts.Title)
	if m.over {
		status = overStyle.Render(fmt.Sprintf("%s: %s", m.opts.Title, m.last.State.Reason))
	}
	return status + "  " + m.help.View(m.keys)
}

// Result returns the last step result.
func (m Model) Result() core.StepResult {
	return m.last
}

// Run plays the game in the alternate screen until it ends and returns the
// last step result.
func Run(game core.Game, opts Options) (core.StepResult, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.StepResult{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return core.StepResult{}, fmt.Errorf("tui: unexpected model %T", final)
	}
	return m.Result(), nil
}
