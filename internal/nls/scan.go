package nls

import "strings"

type scanMode int

const (
	modeCode scanMode = iota
	modeLineComment
	modeBlockComment
)

// exhausted marks a scan cursor that has consumed its whole line.
const exhausted = -1

// scanState is the per-pass cursor threaded through nextLiteral. mode
// carries across lines only for block comments; a line comment never
// survives its own line.
type scanState struct {
	mode scanMode
	pos  int
}

// startLine rewinds the cursor to the beginning of the next line.
func (st *scanState) startLine() {
	st.pos = 0
}

func (st *scanState) done() bool {
	return st.pos == exhausted
}

// nextLiteral advances the cursor one step and returns the next string
// literal on line, if the step produced one. Callers loop until done().
func nextLiteral(line string, st *scanState) (string, bool) {
	if st.pos >= len(line) {
		st.pos = exhausted
		if st.mode == modeLineComment {
			st.mode = modeCode
		}
		return "", false
	}
	switch st.mode {
	case modeLineComment:
		// The rest of the line is comment text.
		st.mode = modeCode
		st.pos = exhausted
		return "", false
	case modeBlockComment:
		if closing := strings.Index(line[st.pos:], "*/"); closing >= 0 {
			st.mode = modeCode
			st.pos += closing + 2
		} else {
			st.pos = exhausted
		}
		return "", false
	}

	rest := line[st.pos:]
	lineComment := strings.Index(rest, "//")
	blockComment := strings.Index(rest, "/*")
	litStart, litEnd := findLiteral(rest)

	switch earliest(lineComment, blockComment, litStart) {
	case pickLineComment:
		st.mode = modeLineComment
		st.pos += lineComment + 2
	case pickBlockComment:
		st.mode = modeBlockComment
		st.pos += blockComment + 2
	case pickLiteral:
		lit := rest[litStart:litEnd]
		st.pos += litEnd
		return lit, true
	default:
		st.pos = exhausted
	}
	return "", false
}

const (
	pickNone = iota - 1
	pickLineComment
	pickBlockComment
	pickLiteral
)

// earliest picks the candidate with the smallest non-negative offset.
// Offsets cannot collide in practice (the three patterns start with
// different bytes), but equal offsets resolve deterministically:
// line comment, then block comment, then literal.
func earliest(lineComment, blockComment, literal int) int {
	best := pickNone
	bestAt := -1
	consider := func(pick, at int) {
		if at < 0 {
			return
		}
		if best == pickNone || at < bestAt {
			best = pick
			bestAt = at
		}
	}
	consider(pickLineComment, lineComment)
	consider(pickBlockComment, blockComment)
	consider(pickLiteral, literal)
	return best
}

// findLiteral locates the first string literal in s and returns its
// half-open [start, end) offsets, or (-1, -1). A literal is a
// double-quoted run where a backslash escapes any following byte. A
// candidate opening quote directly preceded by an unescaped single quote
// is rejected so that character literals like '"' do not match; this is
// a heuristic, not a grammar, and it deliberately mirrors how character
// literals with escaped quotes ('\"') can still misfire.
func findLiteral(s string) (int, int) {
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		if i > 0 && s[i-1] == '\'' && !escapedAt(s, i-1) {
			continue
		}
		end := closingQuote(s, i+1)
		if end < 0 {
			return -1, -1
		}
		return i, end + 1
	}
	return -1, -1
}

// closingQuote finds the unescaped double quote terminating a literal
// whose body starts at from.
func closingQuote(s string, from int) int {
	for j := from; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j
		}
	}
	return -1
}

// escapedAt reports whether the byte at pos sits behind an odd run of
// backslashes.
func escapedAt(s string, pos int) bool {
	count := 0
	for i := pos - 1; i >= 0 && s[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}
