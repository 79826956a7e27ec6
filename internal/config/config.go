package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for applykit.
type Config struct {
	StubDir         string // directory holding the *.tex stub fragments
	Output          string // extracted JSON document path
	ApplicationsDir string // root of the per-application archive folders
	Database        string // SQLite application log path
	Sources         SourcesConfig
	CoverLetter     CoverLetterConfig
}

// SourcesConfig maps stub files to their role in the extracted document.
type SourcesConfig struct {
	Singles []string     `yaml:"singles"` // files whose regions become top-level string fields
	Lists   []ListConfig `yaml:"lists"`
}

// ListConfig describes one stub file that yields a list of records.
type ListConfig struct {
	Key      string   `yaml:"key"`       // output key, e.g. "jobs"
	File     string   `yaml:"file"`      // stub file name inside StubDir
	StartTag string   `yaml:"start_tag"` // tag that opens a new record
	Fields   []string `yaml:"fields"`    // other tags kept in a record
	Bulleted []string `yaml:"bulleted"`  // subset of Fields expanded into \resumeItem lists
}

// CoverLetterConfig holds the default cover letter text.
type CoverLetterConfig struct {
	Greeting string `yaml:"greeting"`
	Body     string `yaml:"body"`
}

const (
	defaultStubDir         = "Resume-Stubs"
	defaultOutput          = "data/resume_data.json"
	defaultApplicationsDir = "Past-Applications"
	defaultDatabase        = "applications.db"
	defaultGreeting        = "Hello Hiring Manager,"
	defaultBody            = "I am excited to apply and bring my skills to your team."
)

// DefaultSources returns the stub layout used when the config does not set one.
func DefaultSources() SourcesConfig {
	return SourcesConfig{
		Singles: []string{"resume_objective.tex", "resume_education.tex"},
		Lists: []ListConfig{
			{
				Key:      "jobs",
				File:     "resume_job.tex",
				StartTag: "job-title",
				Fields:   []string{"job-start-date", "job-end-date", "job-employer", "job-location", "job-points"},
				Bulleted: []string{"job-points"},
			},
			{
				Key:      "projects",
				File:     "resume_project.tex",
				StartTag: "project-title",
				Fields:   []string{"project-tech", "project-date", "project-points"},
				Bulleted: []string{"project-points"},
			},
			{
				Key:      "skill_categories",
				File:     "resume_skill_cat.tex",
				StartTag: "cat-title",
				Fields:   []string{"cat-skills"},
			},
		},
	}
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		StubDir:         defaultStubDir,
		Output:          defaultOutput,
		ApplicationsDir: defaultApplicationsDir,
		Database:        defaultDatabase,
		Sources:         DefaultSources(),
		CoverLetter: CoverLetterConfig{
			Greeting: defaultGreeting,
			Body:     defaultBody,
		},
	}
}

// rawConfig is used for YAML unmarshaling (snake_case fields).
type rawConfig struct {
	StubDir         string            `yaml:"stub_dir"`
	Output          string            `yaml:"output"`
	ApplicationsDir string            `yaml:"applications_dir"`
	Database        string            `yaml:"database"`
	Sources         *SourcesConfig    `yaml:"sources"`
	CoverLetter     CoverLetterConfig `yaml:"cover_letter"`
}

// Load reads and parses the YAML config file at path, fills defaults,
// validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.StubDir != "" {
		cfg.StubDir = raw.StubDir
	}
	if raw.Output != "" {
		cfg.Output = raw.Output
	}
	if raw.ApplicationsDir != "" {
		cfg.ApplicationsDir = raw.ApplicationsDir
	}
	if raw.Database != "" {
		cfg.Database = raw.Database
	}
	if raw.Sources != nil {
		cfg.Sources = *raw.Sources
	}
	if raw.CoverLetter.Greeting != "" {
		cfg.CoverLetter.Greeting = raw.CoverLetter.Greeting
	}
	if raw.CoverLetter.Body != "" {
		cfg.CoverLetter.Body = raw.CoverLetter.Body
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.StubDir == "" {
		return fmt.Errorf("stub_dir must not be empty")
	}
	if cfg.Output == "" {
		return fmt.Errorf("output must not be empty")
	}

	keys := make(map[string]bool)
	for i, l := range cfg.Sources.Lists {
		if l.Key == "" || l.File == "" || l.StartTag == "" {
			return fmt.Errorf("sources.lists[%d]: key, file and start_tag are required", i)
		}
		if keys[l.Key] {
			return fmt.Errorf("sources.lists[%d]: duplicate key %q", i, l.Key)
		}
		keys[l.Key] = true

		fields := make(map[string]bool, len(l.Fields))
		for _, f := range l.Fields {
			fields[f] = true
		}
		for _, b := range l.Bulleted {
			if !fields[b] {
				return fmt.Errorf("sources.lists[%d]: bulleted tag %q is not listed in fields", i, b)
			}
		}
	}

	for _, s := range cfg.Sources.Singles {
		if s == "" {
			return fmt.Errorf("sources.singles must not contain empty file names")
		}
	}

	return nil
}
