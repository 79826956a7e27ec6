package stubs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/amishk599/applykit/internal/model"
)

func newTestLibrary(t *testing.T, files map[string]string) *Library {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return NewLibrary(dir)
}

func names(stubs []Stub) []string {
	out := make([]string, len(stubs))
	for i, s := range stubs {
		out[i] = s.Name
	}
	return out
}

func TestList_SortedTexOnly(t *testing.T) {
	lib := newTestLibrary(t, map[string]string{
		"resume_skills.tex": "s",
		"notes.txt":         "ignored",
		"resume_job.tex":    "j",
	})
	if err := os.Mkdir(filepath.Join(lib.Dir, "sub.tex"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := lib.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []string{"resume_job.tex", "resume_skills.tex"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("List = %v, want %v", names(got), want)
	}
}

func TestList_MissingDir(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "missing"))
	got, err := lib.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List = %v, want empty", got)
	}
}

func TestReadSave(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "Resume-Stubs"))

	if err := lib.Save("resume_objective.tex", "\n\nObjective   \n\n\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := lib.Read("resume_objective.tex")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "Objective\n" {
		t.Errorf("Read = %q, want normalized text", got)
	}
}

func TestRead_Errors(t *testing.T) {
	lib := newTestLibrary(t, nil)

	if _, err := lib.Read("absent.tex"); !errors.Is(err, model.ErrStubNotFound) {
		t.Errorf("Read(absent) = %v, want ErrStubNotFound", err)
	}
	for _, name := range []string{"", "../escape.tex", "sub/x.tex", "notes.txt"} {
		if _, err := lib.Read(name); !errors.Is(err, model.ErrInvalidStubName) {
			t.Errorf("Read(%q) = %v, want ErrInvalidStubName", name, err)
		}
	}
}

func TestClean_ReportsChanged(t *testing.T) {
	lib := newTestLibrary(t, map[string]string{
		"clean.tex": "already\n",
		"dirty.tex": "\n\nneeds  \n\n\nwork",
	})

	changed, err := lib.Clean()
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if !reflect.DeepEqual(changed, []string{"dirty.tex"}) {
		t.Errorf("Clean changed = %v", changed)
	}
	got, _ := lib.Read("dirty.tex")
	if got != "needs\n\nwork\n" {
		t.Errorf("dirty.tex = %q", got)
	}
}

func TestConcat(t *testing.T) {
	lib := newTestLibrary(t, map[string]string{
		"b.tex": "\n second \n",
		"a.tex": "first\n\n",
	})

	got, err := lib.Concat()
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}
	if got != "first\n\nsecond\n" {
		t.Errorf("Concat = %q", got)
	}
}

func TestConcat_NoStubs(t *testing.T) {
	lib := newTestLibrary(t, nil)
	got, err := lib.Concat()
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}
	if got != noStubsText {
		t.Errorf("Concat = %q", got)
	}
}
