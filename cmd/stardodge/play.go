package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-dodge/internal/games/stardodge"
	"github.com/vovakirdan/star-dodge/internal/platform/window"
)

var flagAssets string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play.

Controls:
  Arrows     - Walk
  Esc        - End the run
  Close      - Quit

Sprite paths in the config are resolved against --assets.

Examples:
  stardodge play
  stardodge play --assets ./assets
  stardodge play --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding the imgs/ sprite files")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, cfg := setup()

	opts := window.NewOptions(cfg, flagAssets)
	opts.Runtime.Seed = flagSeed

	game := stardodge.New(cfg)
	result, err := window.Run(game, opts, logger)
	if err != nil {
		logger.Error("window failed", "error", err)
		os.Exit(1)
	}
	logger.Info("bye", "reason", result.State.Reason, "ticks", result.State.Ticks)
}
