// Package mapping implements the declarative attribute-mapping engine:
// ordered lists of rules, each describing one field extraction from a
// source metadata tree into a destination tree, interpreted by Apply.
//
// Rules are pure data. Precedence between competing writers is encoded
// entirely by list order and the per-rule Override flag: with Override
// unset the first successfully cast value wins, with it set a later
// rule unconditionally replaces what is already there.
package mapping

import "github.com/materials-io/emeta/tree"

// Rule describes one field extraction. Immutable once constructed;
// rules are grouped into ordered lists ("stages").
type Rule struct {
	Source     tree.Tree // tree read from
	SourcePath tree.Path
	Dest       tree.Tree // tree written to
	DestPath   tree.Path
	Cast       CastFunc // required; fallible scalar conversion
	Unit       Unit     // optional; wraps the leaf as {value, unit}
	Conv       ConvFunc // optional; post-cast rescale of float64 results only
	Override   bool
}

// Apply runs rules in order against their destination trees. A rule
// whose source path is absent is skipped; a rule whose cast fails is
// skipped and recorded as an Issue. Apply never fails as a whole.
func Apply(rules []Rule) Issues {
	var iss Issues
	for _, r := range rules {
		raw, ok := tree.Get(r.Source, r.SourcePath)
		if !ok {
			continue
		}
		v, err := r.Cast(raw)
		if err != nil {
			iss = append(iss, Issue{
				Path:    PointerOf(r.DestPath),
				Code:    CodeCastFailure,
				Message: "source value not convertible",
				Cause:   err,
			})
			continue
		}
		if r.Conv != nil {
			if f, isFloat := v.(float64); isFloat {
				v = r.Conv(f)
			}
		}
		tree.Set(r.Dest, r.DestPath, v, string(r.Unit), r.Override)
	}
	return iss
}
