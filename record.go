package emeta

import (
	json "github.com/goccy/go-json"

	"github.com/materials-io/emeta/tree"
)

// Top-level record keys.
const (
	KeyElectronMicroscopy = "electron_microscopy"
	KeyImage              = "image"
)

// Canonical sections under electron_microscopy. raw_metadata carries
// the vendor tag tree verbatim, for traceability.
const (
	SectionGeneral     = "General"
	SectionGeneralEM   = "General_EM"
	SectionTEM         = "TEM"
	SectionSEM         = "SEM"
	SectionEDS         = "EDS"
	SectionEELS        = "EELS"
	SectionRawMetadata = "raw_metadata"
)

// Record is one assembled metadata record. Leaves are bare scalars, or
// {"value": scalar, "unit": code} where the mapping rule declared a
// unit. Top-level keys whose section came out empty are absent.
type Record map[string]any

// EM returns the electron_microscopy branch, or nil when absent.
func (r Record) EM() tree.Tree {
	em, _ := r[KeyElectronMicroscopy].(map[string]any)
	return em
}

// EncodeJSON serializes the record.
func (r Record) EncodeJSON() ([]byte, error) {
	return json.Marshal(map[string]any(r))
}
