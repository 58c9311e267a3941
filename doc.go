// Package emeta normalizes heterogeneous, vendor-specific electron
// microscopy metadata into one canonical record.
//
// - A generic attribute-mapping engine (mapping) interprets ordered,
//   declarative rule lists against nested metadata trees (tree).
// - A staged pipeline applies those rules over a decoded dataset's
//   partially redundant source trees, from structured metadata through
//   the vendor tag tree to an embedded free-text block (freetext),
//   later stages overriding earlier ones where marked.
// - The result is pruned of empty branches and assembled under the
//   electron_microscopy and image top-level keys.
//
// Design policy:
// - Keep only public APIs in the root package; put stage orchestration
//   under internal/pipeline.
// - Extraction is best-effort: a missing or malformed field is omitted,
//   never fatal. The only fatal error is the external decode call.
// - One extraction call owns its destination tree exclusively, so
//   callers can fan out across files without locking.
//
// Typical usage:
//
//	rec := emeta.Extract(ds)
//	dm := emeta.ExtractWithMeta(ds)        // plus non-fatal diagnostics
//	rec, err := emeta.ExtractFile(decode, "specimen.dm3")
package emeta
