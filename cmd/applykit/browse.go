package main

import (
	"fmt"
	"os"

	"github.com/amishk599/applykit/internal/browse"
	"github.com/amishk599/applykit/internal/config"
	"github.com/amishk599/applykit/internal/stubs"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse stub files interactively (TUI)",
	Long:  "Shows the stub picker TUI, then a split-pane view of the raw stub and the regions found in it.",
	RunE:  runBrowseCmd,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	runBrowse(cfg)
	return nil
}

func runBrowse(cfg *config.Config) {
	lib := stubs.NewLibrary(cfg.StubDir)
	list, err := lib.List()
	if err != nil {
		fmt.Printf("Error listing stubs: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Printf("No stub files in %s.\n", cfg.StubDir)
		return
	}

	bulleted := bulletedTags(cfg.Sources)
	for {
		choice, err := browse.RunStubPicker(list)
		if err != nil {
			fmt.Printf("Picker error: %v\n", err)
			return
		}
		if choice < 0 {
			return
		}
		st := list[choice]

		text, err := lib.Read(st.Name)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", st.Name, err)
			continue
		}

		wantQuit, err := browse.RunStubView(st.Name, text, bulleted)
		if err != nil {
			fmt.Printf("TUI error: %v\n", err)
		}
		if wantQuit {
			return
		}
		// else: loop → back to picker
	}
}
