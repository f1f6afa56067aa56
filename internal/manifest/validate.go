package manifest

import (
	"fmt"

	"github.com/liantichess/variants/internal/registry"
)

// Severity grades a lint finding.
type Severity string

const (
	// SeverityError marks a definition the engine would reject or misread.
	SeverityError Severity = "error"

	// SeverityWarning marks a definition that loads but is likely a mistake.
	SeverityWarning Severity = "warning"
)

// Issue is one lint finding.
type Issue struct {
	Section  string   `yaml:"section"`
	Key      string   `yaml:"key,omitempty"`
	Severity Severity `yaml:"severity"`
	Message  string   `yaml:"message"`
}

func (i Issue) String() string {
	if i.Key != "" {
		return fmt.Sprintf("[%s] %s: %s", i.Section, i.Key, i.Message)
	}
	return fmt.Sprintf("[%s] %s", i.Section, i.Message)
}

// Validate checks every section against the engine's built-in variants and
// option schema. Findings are returned in document order.
func Validate(doc *Document) []Issue {
	var issues []Issue
	defined := make(map[string]bool)

	for _, s := range doc.Sections {
		add := func(key string, sev Severity, format string, args ...any) {
			issues = append(issues, Issue{
				Section:  s.Name,
				Key:      key,
				Severity: sev,
				Message:  fmt.Sprintf(format, args...),
			})
		}

		if defined[s.Name] {
			add("", SeverityError, "duplicate section")
		}
		if registry.IsBuiltin(s.Name) {
			add("", SeverityWarning, "redefines built-in variant %s", s.Name)
		}

		if s.Base != "" && !registry.IsBuiltin(s.Base) && !defined[s.Base] {
			add("", SeverityError, "%v: %s", ErrUnknownBase, s.Base)
		}

		if len(s.Options) == 0 {
			add("", SeverityWarning, "section overrides nothing")
		}

		seen := make(map[string]bool, len(s.Options))
		for _, opt := range s.Options {
			if seen[opt.Key] {
				add(opt.Key, SeverityWarning, "set more than once, last value wins")
			}
			seen[opt.Key] = true

			kind, ok := registry.Lookup(opt.Key)
			if !ok {
				add(opt.Key, SeverityError, "unknown option")
				continue
			}
			if err := registry.CheckValue(kind, opt.Value); err != nil {
				add(opt.Key, SeverityError, "%v", err)
			}
		}

		defined[s.Name] = true
	}

	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
