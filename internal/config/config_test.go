package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "applykit.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
stub_dir: stubs
output: out/resume.json
applications_dir: apps
database: log.db
cover_letter:
  greeting: "Hi there,"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StubDir != "stubs" || cfg.Output != "out/resume.json" {
		t.Errorf("paths = %q, %q", cfg.StubDir, cfg.Output)
	}
	if cfg.ApplicationsDir != "apps" || cfg.Database != "log.db" {
		t.Errorf("ApplicationsDir = %q, Database = %q", cfg.ApplicationsDir, cfg.Database)
	}
	if cfg.CoverLetter.Greeting != "Hi there," {
		t.Errorf("Greeting = %q", cfg.CoverLetter.Greeting)
	}
	if cfg.CoverLetter.Body != defaultBody {
		t.Errorf("Body = %q, want default", cfg.CoverLetter.Body)
	}
	if !reflect.DeepEqual(cfg.Sources, DefaultSources()) {
		t.Errorf("Sources = %+v, want defaults", cfg.Sources)
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(empty) = %+v, want defaults", cfg)
	}
}

func TestLoad_CustomSources(t *testing.T) {
	path := writeConfig(t, `
sources:
  singles: [summary.tex]
  lists:
    - key: talks
      file: talks.tex
      start_tag: talk-title
      fields: [talk-venue, talk-points]
      bulleted: [talk-points]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.Sources.Singles, []string{"summary.tex"}) {
		t.Errorf("Singles = %v", cfg.Sources.Singles)
	}
	if len(cfg.Sources.Lists) != 1 || cfg.Sources.Lists[0].StartTag != "talk-title" {
		t.Errorf("Lists = %+v", cfg.Sources.Lists)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("APPLYKIT_TEST_HOME", "/tmp/applykit-home")
	path := writeConfig(t, "stub_dir: ${APPLYKIT_TEST_HOME}/stubs\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StubDir != "/tmp/applykit-home/stubs" {
		t.Errorf("StubDir = %q", cfg.StubDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "stub_dir: [broken"))
	if err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_InvalidLists(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing start tag",
			content: `
sources:
  lists:
    - key: jobs
      file: resume_job.tex
`,
		},
		{
			name: "duplicate key",
			content: `
sources:
  lists:
    - {key: jobs, file: a.tex, start_tag: a}
    - {key: jobs, file: b.tex, start_tag: b}
`,
		},
		{
			name: "bulleted not in fields",
			content: `
sources:
  lists:
    - key: jobs
      file: resume_job.tex
      start_tag: job-title
      fields: [job-employer]
      bulleted: [job-points]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatal("Load: expected validation error")
			}
		})
	}
}
