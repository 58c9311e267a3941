package pipeline

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/materials-io/emeta/freetext"
	"github.com/materials-io/emeta/mapping"
	"github.com/materials-io/emeta/tree"
)

// tecnaiDelimiter joins the field lines of the embedded Microscope_Info
// string. It is hard-coded in DigitalMicrograph.
const tecnaiDelimiter = '\u2028'

// The Tecnai block always sits at the plain tag root, never under the
// stack-nested source tags.
var tecnaiPath = tree.Path{"ImageList", "TagGroup0", "ImageTags", "Tecnai", "Microscope Info"}

var (
	reExtractorVolt = regexp.MustCompile(`(\d+) V`)
	reEmission      = regexp.MustCompile(`([\d.]+)uA`)
	reOperationMode = regexp.MustCompile(`(.*) Defocus`)
	reDefocusImage  = regexp.MustCompile(`Defocus \(um\) (.*) Magn`)
	reDefocusDiff   = regexp.MustCompile(`Defocus ([\d.]+) CL`)
	reMagnification = regexp.MustCompile(`Magn (\d+)x`)
	reCameraLength  = regexp.MustCompile(`CL (.*)m`)
	reStagePos      = regexp.MustCompile(` (-?\d*\.\d*) um.*? (-?\d*\.\d*) um.*? (-?\d*\.\d*) um.*? (-?\d*\.\d*) deg.*? (-?\d*\.\d*) deg`)
	reDispersion    = regexp.MustCompile(`(.*)\[eV/Channel\]`)
	reApertureMM    = regexp.MustCompile(`(\d+)mm`)
	reEnergyEV      = regexp.MustCompile(`(.*)\[eV\]`)
)

// tecnaiStage parses the free-text metadata block some FEI microscopes
// embed in .dm3 files and maps it over everything extracted so far.
// These values are the most specific ones available, so every rule in
// the stage overrides.
func (r *run) tecnaiStage() {
	v, ok := tree.Get(r.raw, tecnaiPath)
	if !ok {
		return
	}
	blob, ok := v.(string)
	if !ok {
		return
	}
	lines := freetext.Split(blob, tecnaiDelimiter)
	rec := r.tecnaiRecord(lines)
	r.log.Debug("tecnai block parsed", zap.Int("lines", len(lines)), zap.Int("fields", len(rec)))

	r.apply(bind(mustTables().Tecnai, rec, nil, r.em))
}

// tecnaiRecord condenses the field lines into a single-use source
// record keyed by canonical field names, for the rule table to map.
func (r *run) tecnaiRecord(lines []string) tree.Tree {
	rec := tree.Tree{}
	put := func(key, val string) { rec[key] = val }

	if s, ok := freetext.FindFirst("Microscope ", lines); ok {
		put("microscope_name", s)
	}
	r.capture(rec, lines, "Extr volt ", reExtractorVolt, "extractor_voltage")
	r.capture(rec, lines, "Emission ", reEmission, "emission_current")

	if mode, ok := freetext.FindFirst("Mode ", lines); ok {
		if s, ok := freetext.Extract(reOperationMode, mode); ok {
			put("operation_mode", s)
		}
		// defocus serializes differently in imaging and diffraction
		// mode; first pattern to match wins
		if s, ok := freetext.Extract(reDefocusImage, mode); ok {
			put("defocus", s)
		} else if s, ok := freetext.Extract(reDefocusDiff, mode); ok {
			put("defocus", s)
		}
		if s, ok := freetext.Extract(reMagnification, mode); ok {
			put("magnification", s)
		}
		if s, ok := freetext.Extract(reCameraLength, mode); ok {
			put("camera_length", s)
		}
	}

	if s, ok := freetext.FindFirst("Spot ", lines); ok {
		put("spot_size", s)
	}

	// one composite line holds all five stage coordinates
	if s, ok := freetext.FindFirst("Stage", lines); ok {
		if vals, ok := freetext.ExtractAll(reStagePos, s); ok && len(vals) == 5 {
			put("stage_x", vals[0])
			put("stage_y", vals[1])
			put("stage_z", vals[2])
			put("tilt_alpha", vals[3])
			put("tilt_beta", vals[4])
		} else {
			r.noMatch("/General_EM/stage_position", "stage line present but not parseable")
		}
	}

	if _, ok := freetext.FindFirst("Filter related settings", lines); ok {
		if s, ok := freetext.FindFirst("Mode: ", lines); ok {
			put("spectrometer_mode", s)
		}
		r.capture(rec, lines, "Selected dispersion: ", reDispersion, "dispersion_per_channel")
		r.capture(rec, lines, "Selected aperture: ", reApertureMM, "aperture_size")
		r.capture(rec, lines, "Prism shift: ", reEnergyEV, "prism_shift_energy")
		r.capture(rec, lines, "Drift tube: ", reEnergyEV, "drift_tube_energy")
		r.capture(rec, lines, "Total energy loss: ", reEnergyEV, "total_energy_loss")
	}

	return rec
}

// capture finds the line carrying prefix and peels the value off with
// re. A line that is present but unmatched is worth a diagnostic.
func (r *run) capture(rec tree.Tree, lines []string, prefix string, re *regexp.Regexp, key string) {
	s, ok := freetext.FindFirst(prefix, lines)
	if !ok {
		return
	}
	val, ok := freetext.Extract(re, s)
	if !ok {
		r.noMatch(tecnaiDest(key), "line "+prefix+"present but not parseable")
		return
	}
	rec[key] = val
}

// tecnaiDest resolves a source record key to the destination pointer
// its rule writes to, so diagnostics name record fields, not internals.
func tecnaiDest(key string) string {
	for _, s := range mustTables().Tecnai {
		if len(s.Source) == 1 && s.Source[0] == key {
			return mapping.PointerOf(s.Dest)
		}
	}
	return "/" + key
}

func (r *run) noMatch(path, msg string) {
	r.issues = append(r.issues, mapping.Issue{Path: path, Code: mapping.CodeNoMatch, Message: msg})
}
