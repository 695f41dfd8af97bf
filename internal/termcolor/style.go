package termcolor

import (
	"strconv"
	"strings"
)

// Style is one table cell's rendition. The zero value renders text
// unchanged. At most one foreground is honored, preferring the richest
// the terminal profile produced (truecolor, then 256, then basic).
type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int // classic palette index 0-7
	FG256     *int // xterm 256-color index
	FGTrue    *[3]uint8
}

// Apply wraps text in the SGR sequence for s. Disabled rendering, empty
// text, and the zero style all pass text through untouched.
func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	var seq strings.Builder
	attr := func(code string) {
		if seq.Len() > 0 {
			seq.WriteByte(';')
		}
		seq.WriteString(code)
	}
	if s.Bold {
		attr("1")
	}
	if s.Dim {
		attr("2")
	}
	if s.Underline {
		attr("4")
	}
	switch {
	case s.FGTrue != nil:
		rgb := *s.FGTrue
		attr("38;2;" + strconv.Itoa(int(rgb[0])) + ";" + strconv.Itoa(int(rgb[1])) + ";" + strconv.Itoa(int(rgb[2])))
	case s.FG256 != nil:
		attr("38;5;" + strconv.Itoa(*s.FG256))
	case s.FGBasic != nil:
		attr(strconv.Itoa(30 + *s.FGBasic))
	}
	if seq.Len() == 0 {
		return text
	}
	return "\x1b[" + seq.String() + "m" + text + "\x1b[0m"
}
