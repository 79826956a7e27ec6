package main

import (
	"os"

	"github.com/amishk599/applykit/internal/archive"
	"github.com/amishk599/applykit/internal/model"
	"github.com/amishk599/applykit/internal/store"
	"github.com/amishk599/applykit/internal/stubs"
	"github.com/spf13/cobra"
)

var (
	applyCompany         string
	applyRole            string
	applyStatus          string
	applyDescription     string
	applyDescriptionFile string
	applyDryRun          bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Archive a job application",
	Long:  "Snapshots the resume stubs, writes a cover letter and the job description into a new folder, and logs the application.",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyCompany, "company", "", "company name")
	applyCmd.Flags().StringVar(&applyRole, "role", "", "role applied for")
	applyCmd.Flags().StringVar(&applyStatus, "status", "", "application status (default \"Applied\")")
	applyCmd.Flags().StringVar(&applyDescription, "description", "", "job description text")
	applyCmd.Flags().StringVar(&applyDescriptionFile, "description-file", "", "read the job description from a file")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "write the folder but do not log the application")
	applyCmd.MarkFlagsMutuallyExclusive("description", "description-file")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	description := applyDescription
	if applyDescriptionFile != "" {
		data, err := os.ReadFile(applyDescriptionFile)
		if err != nil {
			logger.Error("failed to read job description", "error", err)
			os.Exit(1)
		}
		description = string(data)
	}

	// In dry-run mode, use a NopStore so nothing is logged.
	var appStore model.ApplicationStore
	if applyDryRun {
		logger.Info("dry-run mode enabled, application will not be logged")
		appStore = store.NewNopStore()
	} else {
		sqlStore, err := store.NewSQLiteStore(cfg.Database)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		appStore = sqlStore
	}

	archiver := archive.NewArchiver(cfg.ApplicationsDir, stubs.NewLibrary(cfg.StubDir), appStore, logger)
	_, err = archiver.Save(archive.Request{
		Company:        applyCompany,
		Role:           applyRole,
		Status:         applyStatus,
		JobDescription: description,
		CoverLetter: model.CoverLetter{
			Greeting: cfg.CoverLetter.Greeting,
			Body:     cfg.CoverLetter.Body,
		},
	})
	if err != nil {
		logger.Error("failed to archive application", "error", err)
		os.Exit(1)
	}
	return nil
}
