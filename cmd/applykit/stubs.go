package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/amishk599/applykit/internal/stub"
	"github.com/amishk599/applykit/internal/stubs"
	"github.com/spf13/cobra"
)

var stubsCmd = &cobra.Command{
	Use:   "stubs",
	Short: "Manage the resume stub files",
}

var stubsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stub files and their region counts",
	RunE:  runStubsList,
}

var stubsCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize whitespace in every stub file",
	RunE:  runStubsClean,
}

var stubsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the regions found in one stub file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStubsShow,
}

func init() {
	stubsCmd.AddCommand(stubsListCmd, stubsCleanCmd, stubsShowCmd)
	rootCmd.AddCommand(stubsCmd)
}

func runStubsList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	lib := stubs.NewLibrary(cfg.StubDir)
	list, err := lib.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list stubs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-30s %10s %s\n", "Stub", "Bytes", "Regions")
	fmt.Println(strings.Repeat("─", 50))

	for _, st := range list {
		text, err := lib.Read(st.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", st.Name, err)
			os.Exit(1)
		}
		fmt.Printf("%-30s %10d %d\n", st.Name, st.Size, len(stub.Scan(text)))
	}

	fmt.Printf("\nTotal: %d stubs in %s\n", len(list), cfg.StubDir)
	return nil
}

func runStubsClean(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	changed, err := stubs.NewLibrary(cfg.StubDir).Clean()
	if err != nil {
		logger.Error("failed to clean stubs", "error", err)
		os.Exit(1)
	}
	for _, name := range changed {
		logger.Info("normalized stub", "file", name)
	}
	logger.Info("clean complete", "changed", len(changed))
	return nil
}

func runStubsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	text, err := stubs.NewLibrary(cfg.StubDir).Read(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read stub: %v\n", err)
		os.Exit(1)
	}

	bulleted := bulletedTags(cfg.Sources)
	regions := stub.Scan(text)
	for _, r := range regions {
		fmt.Printf("[%s] @%d\n", r.Tag, r.Offset)
		if bulleted[r.Tag] {
			for _, item := range stub.ExtractItems(r.Content) {
				fmt.Printf("  • %s\n", item)
			}
		} else {
			for _, line := range strings.Split(r.Content, "\n") {
				fmt.Printf("  %s\n", line)
			}
		}
		fmt.Println()
	}
	fmt.Printf("Total: %d regions\n", len(regions))
	return nil
}
