package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/amishk599/applykit/internal/builder"
	"github.com/amishk599/applykit/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "applykit.yaml"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:          "applykit",
	Short:        "Resume stub toolkit",
	Long:         "applykit extracts resume data from LaTeX stub files and keeps a log of past applications.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: APPLYKIT_CONFIG env var or ./applykit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > APPLYKIT_CONFIG env var > "./applykit.yaml".
// A missing file at the default path falls back to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	explicit := true
	if path == "" {
		if env := os.Getenv("APPLYKIT_CONFIG"); env != "" {
			path = env
		} else {
			path = defaultConfigPath
			explicit = false
		}
	}
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func layoutFromConfig(src config.SourcesConfig) builder.Layout {
	layout := builder.Layout{Singles: src.Singles}
	for _, l := range src.Lists {
		layout.Lists = append(layout.Lists, builder.ListSource{
			Key:      l.Key,
			File:     l.File,
			StartTag: l.StartTag,
			Fields:   l.Fields,
			Bulleted: l.Bulleted,
		})
	}
	return layout
}

// bulletedTags returns every tag configured to be expanded into items.
func bulletedTags(src config.SourcesConfig) map[string]bool {
	tags := make(map[string]bool)
	for _, l := range src.Lists {
		for _, b := range l.Bulleted {
			tags[b] = true
		}
	}
	return tags
}
