package nls

import (
	"fmt"
	"strconv"
	"strings"
)

// MismatchError reports that the literal sequence found after formatting
// diverged from the one captured before it. No partial output is ever
// produced alongside this error; callers keep the original text.
type MismatchError struct {
	// Found is the literal encountered in the formatted text, empty when
	// the formatted text ended before all expected literals appeared.
	Found string
	// Expected is the literal captured during extraction, empty when the
	// formatted text contained more literals than were captured.
	Expected string
}

func (e *MismatchError) Error() string {
	switch {
	case e.Expected == "":
		return fmt.Sprintf("nls: found literal %s beyond the end of the expected sequence", e.Found)
	case e.Found == "":
		return fmt.Sprintf("nls: formatted text ended before expected literal %s", e.Expected)
	default:
		return fmt.Sprintf("nls: found literal %s does not match next expected literal %s", e.Found, e.Expected)
	}
}

// Reinject re-scans content (the formatter's output), verifies that its
// literal sequence equals literals element for element, and appends a
// marker token per flagged literal to the end of the literal's new line,
// numbered by the literal's 1-based position on that line. Line bodies
// and terminators are otherwise reproduced unchanged.
func Reinject(content string, literals []string, hasMarker []bool) (string, error) {
	lines, terminators, err := SplitLines(content)
	if err != nil {
		return "", err
	}

	cursor := 0
	st := scanState{}
	var out strings.Builder
	out.Grow(len(content))
	for i, line := range lines {
		lineOrdinal := 1
		var suffix strings.Builder
		st.startLine()
		for !st.done() {
			lit, ok := nextLiteral(line, &st)
			if !ok {
				continue
			}
			if cursor >= len(literals) {
				return "", &MismatchError{Found: lit}
			}
			if lit != literals[cursor] {
				return "", &MismatchError{Found: lit, Expected: literals[cursor]}
			}
			if hasMarker[cursor] {
				suffix.WriteString(" //$NON-NLS-")
				suffix.WriteString(strconv.Itoa(lineOrdinal))
				suffix.WriteString("$")
			}
			cursor++
			lineOrdinal++
		}
		out.WriteString(line)
		out.WriteString(suffix.String())
		if i < len(terminators) {
			out.WriteString(terminators[i])
		}
	}
	if cursor != len(literals) {
		return "", &MismatchError{Expected: literals[cursor]}
	}
	return out.String(), nil
}
