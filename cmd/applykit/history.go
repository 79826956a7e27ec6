package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/amishk599/applykit/internal/filter"
	"github.com/amishk599/applykit/internal/store"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	historyCompanies []string
	historyRoles     []string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged applications",
	Long:  "Prints a table of logged applications, newest first, optionally filtered by company or role keywords.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringSliceVar(&historyCompanies, "company", nil, "company keyword (repeatable)")
	historyCmd.Flags().StringSliceVar(&historyRoles, "role", nil, "role keyword (repeatable)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	apps, err := sqlStore.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list applications: %v\n", err)
		os.Exit(1)
	}
	matched := filter.NewCompanyRoleFilter(historyCompanies, historyRoles).Apply(apps)

	fmt.Printf("%-20s %-30s %-12s %s\n", "Company", "Role", "Status", "Applied")
	fmt.Println(strings.Repeat("─", 78))

	for _, a := range matched {
		fmt.Printf("%-20s %-30s %-12s %s\n",
			truncate(a.Company, 20), truncate(a.Role, 30), truncate(a.Status, 12), humanize.Time(a.CreatedAt))
	}

	fmt.Printf("\nTotal: %d applications (%d logged)\n", len(matched), len(apps))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
