package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the search order:

  1. --config path
  2. ~/.stardodge/stardodge.yaml
  3. ./configs/stardodge.yaml
  4. built-in defaults

Examples:
  stardodge config > ~/.stardodge/stardodge.yaml
  stardodge config --config ./my-stardodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger, cfg := setup()

	data, err := cfg.Marshal()
	if err != nil {
		logger.Error("cannot encode config", "error", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
