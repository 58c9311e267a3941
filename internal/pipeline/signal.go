package pipeline

import "github.com/materials-io/emeta/tree"

// eelsStage maps the EELS acquisition block and the spectrometer
// block. Different DigitalMicrograph versions park the spectrometer
// tags at one of two places; the first that resolves wins.
func (r *run) eelsStage() {
	t := mustTables()
	r.apply(bind(t.EELS, r.raw, r.tagRoot.Join("EELS"), r.em))

	spectPath := r.tagRoot.Join("EELS", "Acquisition", "Spectrometer")
	if !tree.Has(r.raw, spectPath) {
		spectPath = r.tagRoot.Join("EELS Spectrometer")
	}
	r.apply(bind(t.Spectrometer, r.raw, spectPath, r.em))
}

// edsStage maps the EDS detector and acquisition tags.
func (r *run) edsStage() {
	t := mustTables()
	r.apply(bind(t.EDS, r.raw, r.tagRoot.Join("EDS"), r.em))
}
