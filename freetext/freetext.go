// Package freetext parses metadata embedded as a single delimited
// free-text string, as some vendors serialize it: many human-readable
// field lines joined by one designated separator rune, with values
// peeled off individual lines by prefix search and regex capture.
package freetext

import (
	"regexp"
	"strings"
)

// Split breaks blob into field lines on the given delimiter rune.
// There is no escaping in the format.
func Split(blob string, delimiter rune) []string {
	return strings.Split(blob, string(delimiter))
}

// FindFirst returns the first line containing prefix, with prefix
// stripped from the start of the line, or ok=false if no line matches.
func FindFirst(prefix string, lines []string) (string, bool) {
	for _, l := range lines {
		if strings.Contains(l, prefix) {
			return strings.TrimPrefix(l, prefix), true
		}
	}
	return "", false
}

// Extract returns the first capture group of re matched against text,
// or ok=false when the pattern does not match.
func Extract(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// ExtractAll returns every capture group of re matched against text in
// positional order, or ok=false when the pattern does not match. Used
// for composite lines carrying several values at fixed positions.
func ExtractAll(re *regexp.Regexp, text string) ([]string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return nil, false
	}
	return m[1:], true
}
