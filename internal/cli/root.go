// Package cli implements the ecotrack command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecotrack",
	Short: "Personal carbon footprint tracker",
	Long: `EcoTrack tracks the carbon footprint of everyday activities —
transport, energy, food, and waste — computes emissions from per-category
factor tables, evaluates reduction goals, and serves insights over HTTP.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
