package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/amishk599/applykit/internal/model"
	"github.com/amishk599/applykit/internal/stub"
)

// ListSource describes a stub file whose regions are grouped into records.
type ListSource struct {
	Key      string
	File     string
	StartTag string
	Fields   []string
	Bulleted []string
}

// Layout is the set of stub files read by one extraction run.
type Layout struct {
	Singles []string
	Lists   []ListSource
}

// Config tells the Builder where to read stubs and where to write the document.
type Config struct {
	StubDir string
	Output  string
	Layout  Layout
}

// Summary reports what one run wrote.
type Summary struct {
	Output string
	Counts []ListCount
}

// ListCount is the number of records written under one list key.
type ListCount struct {
	Key   string
	Count int
}

// Count returns the count recorded for key, or 0.
func (s Summary) Count(key string) int {
	for _, c := range s.Counts {
		if c.Key == key {
			return c.Count
		}
	}
	return 0
}

// Builder owns the extraction pipeline: load → scan → assemble → expand → write.
type Builder struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Builder.
func New(cfg Config, logger *slog.Logger) *Builder {
	return &Builder{cfg: cfg, logger: logger}
}

// Build reads every stub in the layout and returns the assembled document.
// Missing stub files count as empty; other read errors are returned.
func (b *Builder) Build() (*model.Document, error) {
	doc := &model.Document{}

	for _, name := range b.cfg.Layout.Singles {
		text, err := b.load(name)
		if err != nil {
			return nil, err
		}
		for _, r := range stub.Scan(text) {
			doc.Singles.Set(r.Tag, r.Content)
		}
	}

	for _, src := range b.cfg.Layout.Lists {
		text, err := b.load(src.File)
		if err != nil {
			return nil, err
		}
		regions := stub.Scan(text)
		records := stub.Assemble(regions, src.StartTag, src.Fields)
		for i := range records {
			stub.ExpandItems(&records[i], src.Bulleted)
		}
		b.logger.Debug("assembled records",
			"key", src.Key,
			"file", src.File,
			"regions", len(regions),
			"records", len(records),
		)
		doc.AddList(src.Key, records)
	}

	return doc, nil
}

// Write serializes doc to the configured output path, creating parent
// directories and overwriting any existing file.
func (b *Builder) Write(doc *model.Document) error {
	data, err := model.EncodeIndent(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.cfg.Output), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(b.cfg.Output, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", b.cfg.Output, err)
	}
	return nil
}

// Run builds the document, writes it, and logs one summary line.
func (b *Builder) Run() (Summary, error) {
	doc, err := b.Build()
	if err != nil {
		return Summary{}, fmt.Errorf("building document: %w", err)
	}
	if err := b.Write(doc); err != nil {
		return Summary{}, err
	}

	summary := Summary{Output: b.cfg.Output}
	args := make([]any, 0, 2*len(doc.Lists)+2)
	for _, l := range doc.Lists {
		summary.Counts = append(summary.Counts, ListCount{Key: l.Key, Count: len(l.Records)})
		args = append(args, l.Key, len(l.Records))
	}
	args = append(args, "path", b.cfg.Output)
	b.logger.Info("wrote document", args...)

	return summary, nil
}

func (b *Builder) load(name string) (string, error) {
	path := filepath.Join(b.cfg.StubDir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		b.logger.Debug("stub missing, treating as empty", "file", name)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading stub %s: %w", name, err)
	}
	return string(data), nil
}
