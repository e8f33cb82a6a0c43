// stardodge is a small dodge game: walk around the field and avoid the stars.
//
// Usage:
//
//	stardodge play      - Play in a desktop window
//	stardodge term      - Play in the terminal
//	stardodge config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Load configuration from a YAML file
//	--seed <value>      - Set RNG seed for a reproducible star field
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-dodge/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardodge",
	Short: "Star Dodge - walk around and avoid the stars",
	Long: `Star Dodge places ten stars at random on an 800x600 field.
Walk the man around with the arrow keys; touching a star ends the run.

Available commands:
  play     - Play in a desktop window
  term     - Play in the terminal
  config   - Print the effective configuration

Examples:
  stardodge play
  stardodge play --assets ./assets --seed 42
  stardodge term --fps 30
  stardodge config --config ./my-stardodge.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the stderr logger at the requested level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stardodge",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// setup loads the logger and configuration shared by every command.
// It exits with status 1 on failure.
func setup() (*log.Logger, config.Config) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	return logger, cfg
}
