// Package tree provides path-addressed access to nested metadata trees.
//
// A Tree is an untyped nesting of map[string]any, []any and scalar
// leaves, as produced by decoding vendor instrument files. Lookups are
// total: any miss (absent key, bad index, non-container intermediate)
// reports not-found rather than panicking or returning an error, so
// callers can probe wildly heterogeneous vendor layouts freely.
package tree

import "strconv"

// Tree is a nested string-keyed metadata mapping.
type Tree = map[string]any

// Path is an ordered sequence of keys addressing a leaf or subtree.
// A segment that parses as a non-negative integer indexes []any nodes.
type Path []string

// Key returns a single-segment path.
func Key(k string) Path { return Path{k} }

// Join returns p extended by the given segments, without mutating p.
func (p Path) Join(segs ...string) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	out = append(out, segs...)
	return out
}

// Get walks t along path and returns the value found, or ok=false if
// any segment is missing or an intermediate node is not a container.
func Get(t Tree, path Path) (any, bool) {
	var cur any = t
	for _, seg := range path {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// GetTree returns the subtree at path, or ok=false when the path is
// absent or does not end at a mapping.
func GetTree(t Tree, path Path) (Tree, bool) {
	v, ok := Get(t, path)
	if !ok {
		return nil, ok
	}
	sub, ok := v.(map[string]any)
	return sub, ok
}

// Has reports whether path resolves inside t.
func Has(t Tree, path Path) bool {
	_, ok := Get(t, path)
	return ok
}

// Set writes v at path, creating intermediate mappings as needed. When
// unit is non-empty the leaf is stored as {"value": v, "unit": unit}.
// An already-present non-empty leaf is left alone unless override is
// set. It reports whether a write happened.
func Set(t Tree, path Path, v any, unit string, override bool) bool {
	if len(path) == 0 {
		return false
	}
	cur := t
	for _, seg := range path[:len(path)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	leaf := path[len(path)-1]
	if old, ok := cur[leaf]; ok && !Empty(old) && !override {
		return false
	}
	if unit != "" {
		cur[leaf] = map[string]any{"value": v, "unit": unit}
	} else {
		cur[leaf] = v
	}
	return true
}

// Empty reports whether v carries no information: nil, or a mapping or
// sequence with no elements. Zero scalars and empty strings are values.
func Empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
