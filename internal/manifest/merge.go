package manifest

import (
	"errors"
	"fmt"
	"maps"

	"github.com/liantichess/variants/internal/registry"
)

// Resolution errors.
var (
	// ErrUnknownVariant indicates a name that no section defines.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnknownBase indicates a base that is neither built in nor defined
	// earlier in the document.
	ErrUnknownBase = errors.New("unknown base variant")

	// ErrCycle indicates a section that inherits from itself.
	ErrCycle = errors.New("inheritance cycle")
)

// Resolved is a section flattened over its document-defined ancestors.
type Resolved struct {
	// Name is the resolved variant.
	Name string `yaml:"name"`

	// Builtin is the engine variant at the root of the chain, empty for the
	// engine default.
	Builtin string `yaml:"builtin,omitempty"`

	// Chain lists the document sections walked, child first.
	Chain []string `yaml:"chain"`

	// Options holds every override in effect.
	Options map[string]string `yaml:"options"`
}

// Resolve flattens the named section. A base must be built in or defined by
// a section that appears earlier in the document.
func Resolve(doc *Document, name string) (*Resolved, error) {
	pos := doc.index(name)
	if pos < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}

	res := &Resolved{Name: name}
	var layers []map[string]string

	// Parents always sit earlier in the document, so the walk terminates.
	for {
		section := doc.Sections[pos]
		res.Chain = append(res.Chain, section.Name)
		layers = append(layers, section.Map())

		base := section.Base
		if base == "" || registry.IsBuiltin(base) {
			res.Builtin = base
			break
		}

		parent := doc.index(base)
		if parent < 0 || parent >= pos {
			if base == section.Name {
				return nil, fmt.Errorf("%w: %s", ErrCycle, section.Name)
			}
			return nil, fmt.Errorf("%w: %s (base of %s)", ErrUnknownBase, base, section.Name)
		}
		pos = parent
	}

	res.Options = make(map[string]string)
	for i := len(layers) - 1; i >= 0; i-- {
		res.Options = MergeOptions(res.Options, layers[i])
	}
	return res, nil
}

// MergeOptions returns a new map holding base with overlay's values replacing
// base's for shared keys.
func MergeOptions(base, overlay map[string]string) map[string]string {
	result := make(map[string]string, len(base)+len(overlay))
	maps.Copy(result, base)
	maps.Copy(result, overlay)
	return result
}
