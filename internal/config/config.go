// Package config handles project discovery and configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file searched for by FindRoot.
const FileName = "variants.yaml"

// ErrNoProject indicates that no directory up to the filesystem root holds a
// configuration file.
var ErrNoProject = errors.New("project root not found (no " + FileName + ")")

// Config holds the variants project configuration.
type Config struct {
	// Root is the directory holding the configuration file. Empty when
	// running with defaults.
	Root string `yaml:"-"`

	// IniFile is a variants file to use instead of the built-in definitions.
	// Relative paths are resolved against Root.
	IniFile string `yaml:"ini,omitempty"`

	// Schedule configures the tournament planner.
	Schedule ScheduleConfig `yaml:"schedule"`

	// Drift configures the comparison against a git checkout.
	Drift DriftConfig `yaml:"drift"`
}

// ScheduleConfig configures the tournament planner.
type ScheduleConfig struct {
	// Days is how far past today to schedule (default: 7).
	Days int `yaml:"days"`

	// CreatedBy is recorded as the tournament creator.
	CreatedBy string `yaml:"createdBy,omitempty"`
}

// DriftConfig points at the copy of the definitions kept in a git repository.
type DriftConfig struct {
	// Repo is the repository path (default: Root, or the working directory).
	Repo string `yaml:"repo,omitempty"`

	// Ref is the revision to read (default: HEAD).
	Ref string `yaml:"ref,omitempty"`

	// Path is the file inside the repository (default: variants.ini).
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{Days: 7},
		Drift:    DriftConfig{Ref: "HEAD", Path: "variants.ini"},
	}
}

// FindRoot searches upward from the current directory to find the project root.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return FindRootFrom(dir)
}

// FindRootFrom searches upward from dir for a directory holding FileName.
func FindRootFrom(dir string) (string, error) {
	for {
		if info, err := os.Stat(filepath.Join(dir, FileName)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrNoProject
}

// Load finds the project root from the working directory and returns its
// Config. Without a project, defaults are used. Environment overrides are
// applied last.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return LoadFrom(dir)
}

// LoadFrom is Load starting the search at dir.
func LoadFrom(dir string) (*Config, error) {
	cfg := Default()

	root, err := FindRootFrom(dir)
	switch {
	case errors.Is(err, ErrNoProject):
	case err != nil:
		return nil, err
	default:
		if err := cfg.readFile(filepath.Join(root, FileName)); err != nil {
			return nil, err
		}
		cfg.Root = root
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.IniFile != "" && !filepath.IsAbs(cfg.IniFile) && cfg.Root != "" {
		cfg.IniFile = filepath.Join(cfg.Root, cfg.IniFile)
	}
	if cfg.Drift.Repo == "" {
		cfg.Drift.Repo = cfg.Root
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if c.Schedule.Days < 0 {
		return fmt.Errorf("parse %s: schedule.days must not be negative", path)
	}
	return nil
}

// applyEnv overrides file settings with VARIANTS_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("VARIANTS_INI"); v != "" {
		c.IniFile = v
	}
	if v := os.Getenv("VARIANTS_CREATED_BY"); v != "" {
		c.Schedule.CreatedBy = v
	}
	if v := os.Getenv("VARIANTS_SCHEDULE_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return fmt.Errorf("VARIANTS_SCHEDULE_DAYS: invalid day count %q", v)
		}
		c.Schedule.Days = days
	}
	return nil
}
