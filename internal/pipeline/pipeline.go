// Package pipeline runs the staged extraction over one decoded
// dataset: structured metadata first, then the vendor tag tree, then
// signal-specific blocks, then the embedded free-text block, which has
// the highest precedence. Stage order is load-bearing: several fields
// are written by more than one stage and the later override writers
// are meant to win.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/materials-io/emeta/mapping"
	"github.com/materials-io/emeta/tree"
)

// Options configures one pipeline run.
type Options struct {
	Logger *zap.Logger
}

// Result is the raw outcome of a run: the canonical sections and the
// derived image facts, both unpruned, plus non-fatal diagnostics.
type Result struct {
	EM     tree.Tree
	Image  tree.Tree
	Issues mapping.Issues
}

// run is the per-call scratch state. Nothing here is shared between
// invocations, so callers may fan extraction out across files freely.
type run struct {
	meta tree.Tree // structured metadata, read-only
	raw  tree.Tree // vendor tag tree, read-only

	em    tree.Tree
	image tree.Tree

	inst    string    // "SEM", "TEM" or "none"
	tagRoot tree.Path // resolved vendor tag-tree root
	hasTags bool

	log    *zap.Logger
	issues mapping.Issues
}

// Run extracts one dataset into canonical form. It is a pure function
// of its inputs; the source trees are never mutated.
func Run(meta, raw tree.Tree, opt Options) Result {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &run{
		meta:  orEmpty(meta),
		raw:   orEmpty(raw),
		em:    tree.Tree{},
		image: tree.Tree{},
		log:   log,
	}
	r.inst = instrumentClass(r.meta)
	r.tagRoot, r.hasTags = vendorTagRoot(r.raw)
	r.log.Debug("pipeline run",
		zap.String("instrument", r.inst),
		zap.Bool("vendor_tags", r.hasTags),
		zap.Strings("tag_root", r.tagRoot))

	r.structuredStage()
	r.vendorStage()
	r.eelsStage()
	r.edsStage()
	r.tecnaiStage()
	r.shapeStage()

	return Result{EM: r.em, Image: r.image, Issues: r.issues}
}

func (r *run) apply(rules []mapping.Rule) {
	r.issues = append(r.issues, mapping.Apply(rules)...)
}

// instrumentClass probes SEM before TEM; the structured schema nests
// the shared instrument fields under whichever of the two is present.
func instrumentClass(meta tree.Tree) string {
	acq := tree.Key("Acquisition_instrument")
	if tree.Has(meta, acq.Join("SEM")) {
		return "SEM"
	}
	if tree.Has(meta, acq.Join("TEM")) {
		return "TEM"
	}
	return "none"
}

func orEmpty(t tree.Tree) tree.Tree {
	if t == nil {
		return tree.Tree{}
	}
	return t
}
