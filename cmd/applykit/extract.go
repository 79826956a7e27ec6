package main

import (
	"os"

	"github.com/amishk599/applykit/internal/builder"
	"github.com/spf13/cobra"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract stub regions into the JSON resume document",
	Long:  "Reads the configured stub files, assembles their regions into records and writes the JSON document.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output path (overrides config)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	output := cfg.Output
	if extractOutput != "" {
		output = extractOutput
	}

	b := builder.New(builder.Config{
		StubDir: cfg.StubDir,
		Output:  output,
		Layout:  layoutFromConfig(cfg.Sources),
	}, logger)

	if _, err := b.Run(); err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
	return nil
}
