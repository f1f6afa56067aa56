package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Parse errors.
var (
	// ErrEmpty indicates a document without any section.
	ErrEmpty = errors.New("no variant sections")

	// ErrOrphanOption indicates an option line before the first section header.
	ErrOrphanOption = errors.New("option outside of a section")

	// ErrInvalidHeader indicates a header that is not [name] or [name:base].
	ErrInvalidHeader = errors.New("invalid section header")
)

// loadOptions matches the engine's reader: keys are case sensitive, only =
// separates key and value, values are taken verbatim to the end of the line
// (surrounding quotes included), and repeated sections or keys are kept so
// they can be reported. Values wrapped in backticks or triple quotes are
// still unwrapped by ini.v1.
var loadOptions = ini.LoadOptions{
	AllowNonUniqueSections:     true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	PreserveSurroundedQuote:    true,
	KeyValueDelimiters:         "=",
}

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse reads a variant definition document.
func Parse(data []byte) (*Document, error) {
	comments, err := headerComments(data)
	if err != nil {
		return nil, err
	}

	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse variants ini: %w", err)
	}

	doc := &Document{}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			if keys := sec.KeyStrings(); len(keys) > 0 {
				return nil, fmt.Errorf("%w: %s", ErrOrphanOption, keys[0])
			}
			continue
		}

		name, base, err := splitHeader(sec.Name())
		if err != nil {
			return nil, err
		}

		section := &Section{Name: name, Base: base}
		if n := len(doc.Sections); n < len(comments) {
			section.Comment = comments[n]
		}
		for _, key := range sec.Keys() {
			values := key.ValueWithShadows()
			if len(values) == 0 {
				values = []string{key.Value()}
			}
			for _, value := range values {
				section.Options = append(section.Options, Option{Key: key.Name(), Value: value})
			}
		}
		doc.Sections = append(doc.Sections, section)
	}

	if len(doc.Sections) == 0 {
		return nil, ErrEmpty
	}

	return doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variants file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// headerComments returns, for each section header in data, the comment
// lines directly above it. A blank or option line ends a comment block, so
// a file-level comment separated by a blank line belongs to no section.
func headerComments(data []byte) ([]string, error) {
	var comments, block []string
	for _, line := range strings.Split(string(bytes.TrimPrefix(data, utf8BOM)), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "#"), strings.HasPrefix(line, ";"):
			block = append(block, line)
		case strings.HasPrefix(line, "["):
			if end := strings.LastIndex(line, "]"); end > 0 {
				if name := strings.TrimSpace(line[1:end]); name == ini.DefaultSection {
					return nil, fmt.Errorf("%w: [%s] is reserved, options must belong to a variant", ErrInvalidHeader, name)
				}
			}
			comments = append(comments, cleanComment(strings.Join(block, "\n")))
			block = nil
		default:
			block = nil
		}
	}
	return comments, nil
}

func splitHeader(header string) (name, base string, err error) {
	parts := strings.Split(header, ":")
	switch len(parts) {
	case 1:
		name = strings.TrimSpace(parts[0])
	case 2:
		name = strings.TrimSpace(parts[0])
		base = strings.TrimSpace(parts[1])
		if base == "" {
			return "", "", fmt.Errorf("%w: [%s] has an empty base", ErrInvalidHeader, header)
		}
	default:
		return "", "", fmt.Errorf("%w: [%s] has more than one base", ErrInvalidHeader, header)
	}

	if name == "" {
		return "", "", fmt.Errorf("%w: [%s] has an empty name", ErrInvalidHeader, header)
	}
	return name, base, nil
}
