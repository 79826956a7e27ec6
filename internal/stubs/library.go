package stubs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/amishk599/applykit/internal/model"
)

const noStubsText = "% No resume stubs found.\n"

// Stub is one *.tex fragment in the stub directory.
type Stub struct {
	Name string
	Path string
	Size int64
}

// Library reads and writes the stub fragments kept in Dir.
type Library struct {
	Dir string
}

// NewLibrary returns a Library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{Dir: dir}
}

// List returns the *.tex stubs sorted by name. A missing directory yields an
// empty list.
func (l *Library) List() ([]Stub, error) {
	entries, err := os.ReadDir(l.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing stubs in %s: %w", l.Dir, err)
	}

	var out []Stub
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".tex" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		out = append(out, Stub{
			Name: e.Name(),
			Path: filepath.Join(l.Dir, e.Name()),
			Size: info.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Read returns the raw text of the named stub.
func (l *Library) Read(name string) (string, error) {
	path, err := l.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", name, model.ErrStubNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("reading stub %s: %w", name, err)
	}
	return string(data), nil
}

// Save normalizes text and writes it to the named stub, creating the stub
// directory if needed.
func (l *Library) Save(name, text string) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return fmt.Errorf("creating stub dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Normalize(text)), 0644); err != nil {
		return fmt.Errorf("writing stub %s: %w", name, err)
	}
	return nil
}

// Clean normalizes every stub in place and returns the names that changed.
func (l *Library) Clean() ([]string, error) {
	stubs, err := l.List()
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, s := range stubs {
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return changed, fmt.Errorf("reading stub %s: %w", s.Name, err)
		}
		original := string(data)
		cleaned := Normalize(original)
		if cleaned == original {
			continue
		}
		if err := os.WriteFile(s.Path, []byte(cleaned), 0644); err != nil {
			return changed, fmt.Errorf("writing stub %s: %w", s.Name, err)
		}
		changed = append(changed, s.Name)
	}
	return changed, nil
}

// Concat joins every stub, trimmed, with a blank line between them. It is the
// resume snapshot stored with each archived application.
func (l *Library) Concat() (string, error) {
	stubs, err := l.List()
	if err != nil {
		return "", err
	}
	if len(stubs) == 0 {
		return noStubsText, nil
	}

	parts := make([]string, 0, len(stubs))
	for _, s := range stubs {
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return "", fmt.Errorf("reading stub %s: %w", s.Name, err)
		}
		parts = append(parts, strings.TrimSpace(string(data)))
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

func (l *Library) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || filepath.Ext(name) != ".tex" {
		return "", fmt.Errorf("%q: %w", name, model.ErrInvalidStubName)
	}
	return filepath.Join(l.Dir, name), nil
}
