// Package window runs a game in a desktop window using Ebiten.
// It owns the window, the vsync-paced loop and the sprite textures.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/star-dodge/internal/config"
	"github.com/vovakirdan/star-dodge/internal/core"
	"github.com/vovakirdan/star-dodge/internal/games/stardodge"
)

// Sprite names a texture file and the sheet name the game draws it under.
type Sprite struct {
	Sheet string
	Path  string
}

// Options configures the window frontend.
type Options struct {
	Title     string
	Width     int
	Height    int
	VSync     bool
	ExitDelay time.Duration // Hold on the final frame before teardown

	// Sprites are loaded in order and released in reverse order.
	Sprites  []Sprite
	ColorKey color.RGBA // Pixels of this color become transparent

	Runtime core.RuntimeConfig
}

// NewOptions builds window options from the game configuration.
// Relative asset paths are resolved against assetsDir.
func NewOptions(cfg config.Config, assetsDir string) Options {
	resolve := func(p string) string {
		if assetsDir == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(assetsDir, p)
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = cfg.Window.Width
	runtime.ScreenH = cfg.Window.Height

	return Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		VSync:     cfg.Window.VSync,
		ExitDelay: cfg.Window.ExitDelay,
		Sprites: []Sprite{
			{Sheet: stardodge.SheetStar, Path: resolve(cfg.Assets.Star)},
			{Sheet: stardodge.SheetMan, Path: resolve(cfg.Assets.Man)},
		},
		ColorKey: color.RGBA{R: cfg.Assets.ColorKey.R, G: cfg.Assets.ColorKey.G, B: cfg.Assets.ColorKey.B, A: 0xFF},
		Runtime:  runtime,
	}
}

// ticksPerSecond paces Update once per presented frame under vsync and at
// the runtime tick rate otherwise.
func ticksPerSecond(opts Options) int {
	if opts.VSync {
		return ebiten.SyncWithFPS
	}
	if opts.Runtime.TickRate > 0 {
		return opts.Runtime.TickRate
	}
	return core.DefaultConfig().TickRate
}

// Run opens the window and plays until the game ends, then holds the final frame
// for ExitDelay and releases every resource. It returns the last step result.
// Errors are fatal setup or driver failures; missing sprites only degrade visuals.
func Run(game core.Game, opts Options, logger *log.Logger) (core.StepResult, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(opts.VSync)
	ebiten.SetTPS(ticksPerSecond(opts))
	// The last frame must stay on screen while the exit delay runs.
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowClosingHandled(true)

	r := newRunner(game, opts, logger)
	r.acquire()
	defer r.release()

	game.Reset(opts.Runtime)
	r.phase = phaseRunning
	logger.Info("window ready", "title", opts.Title, "size", fmt.Sprintf("%dx%d", opts.Width, opts.Height), "seed", opts.Runtime.Seed)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return r.last, fmt.Errorf("window: %w", err)
	}
	return r.last, nil
}
