package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-dodge/internal/games/stardodge"
	"github.com/vovakirdan/star-dodge/internal/platform/tui"
)

var flagFPS int

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play the same game projected onto the terminal grid.

Terminals report key presses but not releases, so a press keeps
walking for a few ticks (terminal.hold_ticks in the config).

Controls:
  Arrows     - Walk
  Esc        - End the run
  Ctrl+C     - Quit

Examples:
  stardodge term
  stardodge term --fps 30 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func init() {
	termCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
}

func runTerm(_ *cobra.Command, _ []string) {
	logger, cfg := setup()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Error("stdout is not a terminal")
		os.Exit(1)
	}
	if flagFPS <= 0 {
		logger.Error("fps must be positive", "fps", flagFPS)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	opts := tui.NewOptions(cfg, flagFPS, width, height)
	opts.Runtime.Seed = flagSeed

	game := stardodge.New(cfg)
	result, err := tui.Run(game, opts)
	if err != nil {
		logger.Error("terminal failed", "error", err)
		os.Exit(1)
	}

	for _, c := range result.Contacts {
		logger.Info("game over", "star", c.Index, "side", c.Side)
	}
	logger.Info("bye", "reason", result.State.Reason, "ticks", result.State.Ticks)
}
