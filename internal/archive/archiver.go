package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/applykit/internal/model"
)

const (
	defaultStatus   = "Applied"
	timestampLayout = "20060102-150405"
)

// ResumeSource supplies the resume snapshot saved with each application.
type ResumeSource interface {
	Concat() (string, error)
}

// Request is the user input for one archived application.
type Request struct {
	Company        string
	Role           string
	Status         string
	JobDescription string
	CoverLetter    model.CoverLetter
}

// Archiver writes one folder per application and records it in the store.
type Archiver struct {
	dir    string
	resume ResumeSource
	store  model.ApplicationStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewArchiver creates an Archiver writing under dir.
func NewArchiver(dir string, resume ResumeSource, store model.ApplicationStore, logger *slog.Logger) *Archiver {
	return &Archiver{
		dir:    dir,
		resume: resume,
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// Save validates req, writes resume.tex, cover_letter.txt and
// job_description.txt into a fresh <slug>-<timestamp> folder, and records the
// application.
func (a *Archiver) Save(req Request) (model.Application, error) {
	company := strings.TrimSpace(req.Company)
	role := strings.TrimSpace(req.Role)
	description := strings.TrimSpace(req.JobDescription)
	if company == "" || role == "" || description == "" {
		return model.Application{}, model.ErrApplicationIncomplete
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = defaultStatus
	}

	now := a.now()
	folder := filepath.Join(a.dir, fmt.Sprintf("%s-%s", Slug(company, role), now.Format(timestampLayout)))
	if err := os.MkdirAll(folder, 0755); err != nil {
		return model.Application{}, fmt.Errorf("creating application folder: %w", err)
	}

	resume, err := a.resume.Concat()
	if err != nil {
		return model.Application{}, fmt.Errorf("snapshotting resume: %w", err)
	}

	cl := req.CoverLetter
	if cl.Company == "" {
		cl.Company = company
	}
	if cl.Role == "" {
		cl.Role = role
	}

	files := []struct {
		name    string
		content string
	}{
		{"resume.tex", resume},
		{"cover_letter.txt", ComposeCoverLetter(cl, status)},
		{"job_description.txt", description + "\n"},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(folder, f.name), []byte(f.content), 0644); err != nil {
			return model.Application{}, fmt.Errorf("writing %s: %w", f.name, err)
		}
	}

	app := model.Application{
		ID:             a.newID(),
		Company:        company,
		Role:           role,
		Status:         status,
		JobDescription: description,
		Folder:         folder,
		CreatedAt:      now,
	}
	if err := a.store.Record(app); err != nil {
		return model.Application{}, fmt.Errorf("logging application: %w", err)
	}

	a.logger.Info("archived application",
		"id", app.ID,
		"company", app.Company,
		"role", app.Role,
		"status", app.Status,
		"folder", folder,
	)
	return app, nil
}
