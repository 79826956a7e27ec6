package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amishk599/applykit/internal/config"
)

func TestLoadConfig_MissingDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("APPLYKIT_CONFIG", "")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.StubDir != config.Default().StubDir {
		t.Errorf("StubDir = %q, want default", cfg.StubDir)
	}
}

func TestLoadConfig_EnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("stub_dir: stubs\noutput: out.json\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("APPLYKIT_CONFIG", path)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.StubDir != "stubs" || cfg.Output != "out.json" {
		t.Errorf("got stub_dir=%q output=%q", cfg.StubDir, cfg.Output)
	}
}

func TestLoadConfig_ExplicitMissingFails(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLayoutFromConfig(t *testing.T) {
	layout := layoutFromConfig(config.DefaultSources())

	if len(layout.Singles) != 2 {
		t.Errorf("Singles = %v", layout.Singles)
	}
	var keys []string
	for _, l := range layout.Lists {
		keys = append(keys, l.Key)
	}
	want := []string{"jobs", "projects", "skill_categories"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestBulletedTags(t *testing.T) {
	tags := bulletedTags(config.DefaultSources())

	if !tags["job-points"] || !tags["project-points"] {
		t.Errorf("bulletedTags = %v", tags)
	}
	if tags["cat-skills"] {
		t.Error("cat-skills should not be bulleted")
	}
}

func TestVersionString(t *testing.T) {
	got := versionString()
	if !strings.HasPrefix(got, "applykit ") {
		t.Errorf("versionString = %q", got)
	}
	if !strings.Contains(got, "applykit)") {
		t.Errorf("versionString = %q, want module path", got)
	}
}
