package manifest

import (
	"maps"
	"slices"
)

// ChangeKind describes how a definition differs between two documents.
type ChangeKind string

const (
	Added   ChangeKind = "added"
	Removed ChangeKind = "removed"
	Changed ChangeKind = "changed"
)

// Change is one difference between two documents. Key is empty for
// section-level changes; a Changed section-level entry means the base moved.
type Change struct {
	Section string     `yaml:"section"`
	Key     string     `yaml:"key,omitempty"`
	Kind    ChangeKind `yaml:"kind"`
	Old     string     `yaml:"old,omitempty"`
	New     string     `yaml:"new,omitempty"`
}

// Diff compares effective definitions in from and to. Comments, ordering
// and repeated keys do not count as changes.
func Diff(from, to *Document) []Change {
	var changes []Change

	for _, old := range from.Sections {
		if _, ok := to.Lookup(old.Name); !ok {
			changes = append(changes, Change{Section: old.Name, Kind: Removed, Old: old.Header()})
		}
	}

	for _, cur := range to.Sections {
		old, ok := from.Lookup(cur.Name)
		if !ok {
			changes = append(changes, Change{Section: cur.Name, Kind: Added, New: cur.Header()})
			continue
		}
		if old == cur {
			continue
		}
		if old.Base != cur.Base {
			changes = append(changes, Change{Section: cur.Name, Kind: Changed, Old: old.Base, New: cur.Base})
		}
		changes = append(changes, diffOptions(cur.Name, old.Map(), cur.Map())...)
	}

	return changes
}

func diffOptions(section string, from, to map[string]string) []Change {
	keys := make(map[string]bool, len(from)+len(to))
	for k := range from {
		keys[k] = true
	}
	for k := range to {
		keys[k] = true
	}
	var changes []Change
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		oldVal, inOld := from[k]
		newVal, inNew := to[k]
		switch {
		case !inOld:
			changes = append(changes, Change{Section: section, Key: k, Kind: Added, New: newVal})
		case !inNew:
			changes = append(changes, Change{Section: section, Key: k, Kind: Removed, Old: oldVal})
		case oldVal != newVal:
			changes = append(changes, Change{Section: section, Key: k, Kind: Changed, Old: oldVal, New: newVal})
		}
	}
	return changes
}
