package valuetree

import "strings"

// Path is the root-exclusive chain of mapping keys leading to a value.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// FullPath returns the path of the first occurrence of key in tree.
// The walk is depth-first in insertion order: every item of a mapping is
// checked before descending into it. Reports false when key does not occur.
func FullPath(tree *Map, key string) (Path, bool) {
	return fullPath(tree, key, nil, false)
}

// FullPathWithValue is like FullPath but only matches occurrences whose
// stored value is Equal to value. It disambiguates keys that appear at
// several places in the tree.
func FullPathWithValue(tree *Map, key string, value any) (Path, bool) {
	return fullPath(tree, key, value, true)
}

func fullPath(tree *Map, key string, value any, matchValue bool) (Path, bool) {
	var walk func(m *Map, prefix Path) (Path, bool)
	walk = func(m *Map, prefix Path) (Path, bool) {
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Key == key && (!matchValue || Equal(pair.Value, value)) {
				return appendPath(prefix, key), true
			}
			if child, ok := pair.Value.(*Map); ok {
				if p, ok := walk(child, appendPath(prefix, pair.Key)); ok {
					return p, true
				}
			}
		}
		return nil, false
	}

	if tree == nil {
		return nil, false
	}
	return walk(tree, nil)
}

func appendPath(p Path, key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}
