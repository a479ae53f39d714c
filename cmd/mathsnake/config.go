package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default rules YAML",
	Long: `Print the built-in rules as YAML. Save the output to
~/.mathsnake/configs/mathsnake.yaml or ./configs/mathsnake.yaml and edit
it to change targets, speeds, lives and sound.

Examples:
  mathsnake config > configs/mathsnake.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
	},
}
