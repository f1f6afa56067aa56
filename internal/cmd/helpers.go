package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/liantichess/variants/internal/config"
	"github.com/liantichess/variants/internal/manifest"
	"github.com/liantichess/variants/internal/variants"
)

// builtinSource names the embedded payload in messages.
const builtinSource = "built-in definitions"

// loadConfig loads the project configuration, applying --file on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if iniFile != "" {
		cfg.IniFile = iniFile
	}
	return cfg, nil
}

// loadDocument parses the definitions selected by the configuration and
// returns them with a description of where they came from.
func loadDocument(cfg *config.Config) (*manifest.Document, string, error) {
	if cfg.IniFile != "" {
		doc, err := manifest.Load(cfg.IniFile)
		if err != nil {
			return nil, "", err
		}
		return doc, cfg.IniFile, nil
	}

	doc, err := manifest.Parse([]byte(variants.Ini))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", builtinSource, err)
	}
	return doc, builtinSource, nil
}

// withDocument loads configuration and definitions and hands them to fn.
func withDocument(fn func(cfg *config.Config, doc *manifest.Document, source string) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, source, err := loadDocument(cfg)
	if err != nil {
		return err
	}
	return fn(cfg, doc, source)
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
