package pipeline

import (
	"github.com/materials-io/emeta/mapping"
	"github.com/materials-io/emeta/tree"
)

// acquisitionSoftwareName is set whenever the DigitalMicrograph tag
// root is present at all: the tag dialect identifies the software.
const acquisitionSoftwareName = "DigitalMicrograph"

var (
	tagRootPlain = tree.Path{"ImageList", "TagGroup0", "ImageTags"}
	stackProbe   = tagRootPlain.Join("plane info")
	tagRootStack = tagRootPlain.Join("plane info", "TagGroup0", "source tags")
)

// vendorTagRoot resolves where the interesting DigitalMicrograph tags
// live. A .dm3/.dm4 holding an image stack nests the per-plane source
// tags one level deeper; the choice is made once and reused by every
// vendor-tree stage.
func vendorTagRoot(raw tree.Tree) (tree.Path, bool) {
	if tree.Has(raw, stackProbe) {
		return tagRootStack, tree.Has(raw, tagRootPlain)
	}
	return tagRootPlain, tree.Has(raw, tagRootPlain)
}

// vendorStage maps the general-purpose DigitalMicrograph tag blocks:
// Microscope Info, Session Info, Meta Data and a few loose tags.
func (r *run) vendorStage() {
	t := mustTables()
	rules := bind(t.Vendor, r.raw, r.tagRoot, r.em)

	// The voltage tag's unit depends on its magnitude: values >= 1000
	// are volts and are rescaled to kV; smaller values pass through.
	voltPath := r.tagRoot.Join("Microscope Info", "Voltage")
	if v, ok := tree.Get(r.raw, voltPath); ok {
		if f, err := mapping.AsFloat(v); err == nil {
			rule := mapping.Rule{
				Source:     r.raw,
				SourcePath: voltPath,
				Dest:       r.em,
				DestPath:   tree.Path{"General_EM", "accelerating_voltage"},
				Cast:       mapping.AsFloat,
				Unit:       mapping.EV,
			}
			if f.(float64) >= 1000 {
				rule.Unit = mapping.KiloEV
				rule.Conv = mapping.Scale(1.0 / 1000)
			}
			rules = append(rules, rule)
		}
	}

	r.apply(rules)

	// TIA-family files carry a few of the same values in a top-level
	// ObjectInfo block; the tag-root values above win when both exist.
	r.apply(bind(t.TIA, r.raw, nil, r.em))

	if r.hasTags {
		tree.Set(r.em, tree.Path{"General_EM", "acquisition_software_name"},
			acquisitionSoftwareName, "", false)
	}
}
