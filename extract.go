package emeta

import (
	"go.uber.org/zap"

	"github.com/materials-io/emeta/internal/pipeline"
	"github.com/materials-io/emeta/mapping"
	"github.com/materials-io/emeta/tree"
)

// Options bundles extraction options. The zero value is ready to use.
type Options struct {
	// Logger receives debug-level notes about stage resolution and
	// skipped fields. Defaults to a nop logger.
	Logger *zap.Logger
}

// Decoded carries an extracted record along with the non-fatal
// diagnostics accumulated while producing it: fields whose source
// value was present but not convertible, free-text lines that did not
// match their pattern, and the like. The record is complete either
// way; issues never subtract from it.
type Decoded struct {
	Record Record
	Issues mapping.Issues
}

// Extract normalizes one decoded dataset into a canonical record. It
// is a pure function of the dataset: the source trees are not mutated
// and no state is shared across calls. When opts are given, the last
// one wins.
func Extract(ds Dataset, opts ...Options) Record {
	return ExtractWithMeta(ds, opts...).Record
}

// ExtractWithMeta is Extract plus the accumulated diagnostics.
func ExtractWithMeta(ds Dataset, opts ...Options) Decoded {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	raw := ds.RawMetadata()
	if raw == nil {
		raw = tree.Tree{}
	}
	res := pipeline.Run(ds.StructuredMetadata(), raw, pipeline.Options{Logger: opt.Logger})
	return Decoded{Record: assemble(res, raw), Issues: res.Issues}
}

// assemble prunes the canonical sections and keeps only the non-empty
// top-level branches. The raw vendor tree is attached unpruned: it is
// a verbatim superset, not subject to the emptiness rules, and rides
// along whenever the electron_microscopy branch is emitted at all.
func assemble(res pipeline.Result, raw tree.Tree) Record {
	out := Record{}
	em := tree.Prune(res.EM)
	if len(em) > 0 || len(raw) > 0 {
		em[SectionRawMetadata] = raw
		out[KeyElectronMicroscopy] = em
	}
	if img := tree.Prune(res.Image); len(img) > 0 {
		out[KeyImage] = img
	}
	return out
}
