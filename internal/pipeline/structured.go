package pipeline

import "github.com/materials-io/emeta/tree"

// structuredStage maps the fixed-vocabulary metadata produced by the
// decoding library: shared instrument fields from the per-instrument
// subtree, detector sub-blocks, and the top-level General and Sample
// sections. Everything here is lowest precedence (no overrides).
func (r *run) structuredStage() {
	t := mustTables()

	instData, ok := tree.GetTree(r.meta, tree.Path{"Acquisition_instrument", r.inst})
	if ok {
		r.apply(bind(t.Instrument, instData, nil, r.em))
		if det, ok := tree.GetTree(instData, tree.Key("Detector")); ok {
			r.apply(bind(t.Detector, det, nil, r.em))
		}
	}

	r.apply(bind(t.General, r.meta, nil, r.em))
}
