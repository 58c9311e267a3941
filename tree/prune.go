package tree

// Prune removes empty leaves (nil, empty mapping, empty sequence) from
// t depth-first, then removes any container emptied by the removal of
// its children. It mutates t in place and returns it for chaining.
// Prune is idempotent: pruning twice equals pruning once, and a tree
// with no empty values is returned unchanged.
func Prune(t Tree) Tree {
	for k, v := range t {
		if pv, empty := pruneValue(v); empty {
			delete(t, k)
		} else {
			t[k] = pv
		}
	}
	return t
}

func pruneValue(v any) (any, bool) {
	switch node := v.(type) {
	case nil:
		return nil, true
	case map[string]any:
		Prune(node)
		return node, len(node) == 0
	case []any:
		out := node[:0]
		for _, e := range node {
			if pe, empty := pruneValue(e); !empty {
				out = append(out, pe)
			}
		}
		return out, len(out) == 0
	default:
		return v, false
	}
}
