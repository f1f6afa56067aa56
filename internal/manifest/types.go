package manifest

import "strings"

// Document is an ordered list of variant sections.
type Document struct {
	Sections []*Section
}

// Section is one [name:base] block.
type Section struct {
	// Name is the variant identifier being defined.
	Name string `yaml:"name"`

	// Base is the variant this one inherits from. Empty means the engine default.
	Base string `yaml:"base,omitempty"`

	// Comment is the text of the comment lines above the header, without
	// comment markers, one line per source line.
	Comment string `yaml:"comment,omitempty"`

	// Options are the overrides in source order. A key may appear more than
	// once; the last assignment wins.
	Options []Option `yaml:"options,omitempty"`
}

// Option is a single key = value line.
type Option struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Header returns the section header text without brackets.
func (s *Section) Header() string {
	if s.Base == "" {
		return s.Name
	}
	return s.Name + ":" + s.Base
}

// Get returns the effective value of key in this section.
func (s *Section) Get(key string) (string, bool) {
	for i := len(s.Options) - 1; i >= 0; i-- {
		if s.Options[i].Key == key {
			return s.Options[i].Value, true
		}
	}
	return "", false
}

// Map returns the effective key/value overrides of this section.
func (s *Section) Map() map[string]string {
	m := make(map[string]string, len(s.Options))
	for _, opt := range s.Options {
		m[opt.Key] = opt.Value
	}
	return m
}

// Lookup returns the first section with the given name.
func (d *Document) Lookup(name string) (*Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Names returns section names in document order, duplicates included.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		names = append(names, s.Name)
	}
	return names
}

// index returns the position of the first section named name, or -1.
func (d *Document) index(name string) int {
	for i, s := range d.Sections {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// cleanComment strips comment markers from each line of a raw comment block.
func cleanComment(raw string) string {
	if raw == "" {
		return ""
	}
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "#;")
		out = append(out, strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
