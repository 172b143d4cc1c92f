package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/stac-to-layers/generator/internal/handler" // register layer handlers
	"github.com/stac-to-layers/generator/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "layergen",
	Short: "Generate map layer configuration from a STAC catalog",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.Default = logger.New(slog.LevelDebug)
		}
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
