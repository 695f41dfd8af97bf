package nls

import (
	"errors"
	"regexp"
)

// ErrLineSplit is returned when the detected terminator count does not
// agree with the number of lines. It signals corrupt input, not a
// recoverable condition; callers must abort the whole transformation.
var ErrLineSplit = errors.New("nls: end of line detection failed")

// Matches the same terminator alphabet as Java's \R.
var lineBreakRe = regexp.MustCompile("\r\n|[\n\v\f\r\u0085\u2028\u2029]")

// SplitLines splits content into line bodies and the terminator sequences
// between them. Joining lines[i] + terminators[i] in order (the last line
// has no terminator entry) reproduces content byte for byte.
func SplitLines(content string) (lines []string, terminators []string, err error) {
	locs := lineBreakRe.FindAllStringIndex(content, -1)
	lines = make([]string, 0, len(locs)+1)
	terminators = make([]string, 0, len(locs))
	prev := 0
	for _, loc := range locs {
		lines = append(lines, content[prev:loc[0]])
		terminators = append(terminators, content[loc[0]:loc[1]])
		prev = loc[1]
	}
	lines = append(lines, content[prev:])
	if len(terminators) != len(lines)-1 {
		return nil, nil, ErrLineSplit
	}
	return lines, terminators, nil
}
