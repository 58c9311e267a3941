package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeCastFailure = "cast_failure" // value present but not convertible to the declared type
	CodeNoMatch     = "no_match"     // free-text pattern present but did not match
)

// Issue records one non-fatal extraction diagnostic. Extraction is
// best-effort: a field that cannot be converted is omitted from the
// record, and the only trace is an Issue.
type Issue struct {
	Path    string // JSON Pointer into the destination record (for example: /General_EM/beam_energy).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of extraction diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// PointerOf renders path segments as a JSON Pointer for Issue.Path.
func PointerOf(segs []string) string {
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}
