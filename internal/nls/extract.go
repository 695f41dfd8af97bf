// Package nls locates string literals in source text while skipping
// comments, and manages the line-anchored //$NON-NLS-n$ markers Eclipse
// uses to exempt the n-th literal of a line from externalization.
//
// The three entry points bracket an external formatting pass: Extract
// captures the literal sequence and per-literal marker flags, Erase
// blanks marker text in place so the formatter never sees it, and
// Reinject re-scans the formatted output and re-emits each marker at its
// new line position.
package nls

import (
	"regexp"
	"strconv"
)

// markerRe matches one marker token. The captured digits are the 1-based
// ordinal of a string literal on the same physical line.
var markerRe = regexp.MustCompile(`//\$NON-NLS-([0-9]+)\$`)

// TraceFunc receives diagnostic lines during extraction. A nil TraceFunc
// disables tracing.
type TraceFunc func(format string, args ...any)

// Extraction is the outcome of one Extract pass.
type Extraction struct {
	// Literals holds every string literal of the document in order,
	// delimiting quotes included.
	Literals []string
	// HasMarker is parallel to Literals; true when the literal's line
	// carried a marker naming its position.
	HasMarker []bool
	// Any reports whether at least one marker was honored.
	Any bool
}

// MarkerCount returns how many literals carry a marker.
func (x Extraction) MarkerCount() int {
	n := 0
	for _, f := range x.HasMarker {
		if f {
			n++
		}
	}
	return n
}

// Extract scans content for string literals and their marker flags.
// Literal collection always covers the whole document; a marker is
// honored only when its full token span lies inside ranges (nil means
// unrestricted). Markers whose ordinal exceeds the line's literal count
// are ignored.
func Extract(content string, ranges *RangeSet, trace TraceFunc) (Extraction, error) {
	var x Extraction

	lines, terminators, err := SplitLines(content)
	if err != nil {
		return x, err
	}

	unrestricted := ranges == nil || ranges.Encloses(0, len(content))

	offset := 0
	st := scanState{}
	for i, line := range lines {
		var lineLiterals []string
		st.startLine()
		for !st.done() {
			if lit, ok := nextLiteral(line, &st); ok {
				lineLiterals = append(lineLiterals, lit)
			}
		}

		flags := make([]bool, len(lineLiterals))
		for _, m := range markerRe.FindAllStringSubmatchIndex(line, -1) {
			if !unrestricted && !ranges.Encloses(offset+m[0], offset+m[1]) {
				continue
			}
			ordinal, err := strconv.Atoi(line[m[2]:m[3]])
			if err != nil {
				continue
			}
			if idx := ordinal - 1; idx >= 0 && idx < len(flags) {
				flags[idx] = true
			}
		}

		x.Literals = append(x.Literals, lineLiterals...)
		x.HasMarker = append(x.HasMarker, flags...)
		for _, f := range flags {
			x.Any = x.Any || f
		}

		offset += len(line)
		if i < len(terminators) {
			offset += len(terminators[i])
		}
	}

	if trace != nil {
		trace("%d literals", len(x.Literals))
		for i, lit := range x.Literals {
			trace("%d -> %s  marker=%v", i, lit, x.HasMarker[i])
		}
	}
	return x, nil
}
