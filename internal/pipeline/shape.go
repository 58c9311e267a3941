package pipeline

import (
	"sort"
	"strconv"

	"github.com/materials-io/emeta/mapping"
	"github.com/materials-io/emeta/tree"
)

var dimensionsPath = tree.Path{"ImageList", "TagGroup0", "ImageData", "Dimensions"}

// shapeStage derives image.shape from the vendor dimension list. The
// file stores (width, height, further axes...); the canonical record
// wants row-major (height, width, ...), so the first two axes swap.
// A single axis passes through; no axes, no shape fact.
func (r *run) shapeStage() {
	node, ok := tree.Get(r.raw, dimensionsPath)
	if !ok {
		return
	}
	dims := dimensionList(node)
	if len(dims) == 0 {
		return
	}
	shape := make([]any, 0, len(dims))
	if len(dims) >= 2 {
		shape = append(shape, dims[1], dims[0])
		for _, d := range dims[2:] {
			shape = append(shape, d)
		}
	} else {
		shape = append(shape, dims[0])
	}
	r.image["shape"] = shape
}

// dimensionList reads the axis sizes either from a plain sequence or
// from a numerically-keyed tag group, in axis order. Entries that do
// not cast to an integer void the whole shape, as a partial shape
// would be misleading.
func dimensionList(node any) []int64 {
	var raw []any
	switch t := node.(type) {
	case []any:
		raw = t
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, aerr := strconv.Atoi(keys[i])
			b, berr := strconv.Atoi(keys[j])
			if aerr == nil && berr == nil {
				return a < b
			}
			return keys[i] < keys[j]
		})
		for _, k := range keys {
			raw = append(raw, t[k])
		}
	default:
		return nil
	}

	dims := make([]int64, 0, len(raw))
	for _, v := range raw {
		n, err := mapping.AsInt(v)
		if err != nil {
			return nil
		}
		dims = append(dims, n.(int64))
	}
	return dims
}
