package nls

import (
	"reflect"
	"testing"
)

// literalsOf drives the scanner across all lines the way Extract does and
// returns every literal in document order.
func literalsOf(t *testing.T, content string) []string {
	t.Helper()
	lines, _, err := SplitLines(content)
	if err != nil {
		t.Fatalf("SplitLines error: %v", err)
	}
	var out []string
	st := scanState{}
	for _, line := range lines {
		st.startLine()
		for !st.done() {
			if lit, ok := nextLiteral(line, &st); ok {
				out = append(out, lit)
			}
		}
	}
	return out
}

func TestScanLiterals(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "string inside line comment excluded",
			content: `String a = "x"; // comment "y"`,
			want:    []string{`"x"`},
		},
		{
			name:    "string inside block comment excluded",
			content: `f("a"); /* not "b" */ g("c");`,
			want:    []string{`"a"`, `"c"`},
		},
		{
			name:    "block comment spans lines",
			content: "f(\"a\"); /* open\nstill \"hidden\"\nclose */ g(\"b\");",
			want:    []string{`"a"`, `"b"`},
		},
		{
			name:    "line comment never spans lines",
			content: "f(); // trailing \"x\"\ng(\"y\");",
			want:    []string{`"y"`},
		},
		{
			name:    "line comment at exact end of line",
			content: "f();//\ng(\"y\");",
			want:    []string{`"y"`},
		},
		{
			name:    "comment markers inside literal ignored",
			content: `u = "http://example.com"; v = "/* raw */";`,
			want:    []string{`"http://example.com"`, `"/* raw */"`},
		},
		{
			name:    "escaped quote stays inside literal",
			content: `s = "a \" b"; t = "c";`,
			want:    []string{`"a \" b"`, `"c"`},
		},
		{
			name:    "escaped backslash closes normally",
			content: `s = "a\\"; t = "b";`,
			want:    []string{`"a\\"`, `"b"`},
		},
		{
			name:    "character literal quote excluded",
			content: `char c = '"'; f("x");`,
			want:    []string{`"x"`},
		},
		{
			name:    "escaped single quote does not shield literal",
			content: `char c = '\''; f("x");`,
			want:    []string{`"x"`},
		},
		{
			name:    "literal at line start",
			content: `"alone".length();`,
			want:    []string{`"alone"`},
		},
		{
			name:    "adjacent literals",
			content: `f("a" + "b" + "c");`,
			want:    []string{`"a"`, `"b"`, `"c"`},
		},
		{
			name:    "empty literal",
			content: `f("");`,
			want:    []string{`""`},
		},
		{
			name:    "unterminated literal yields nothing",
			content: `s = "never closed`,
			want:    nil,
		},
		{
			name:    "no literals at all",
			content: "int a = 1;\nint b = 2;\n",
			want:    nil,
		},
		{
			name:    "block comment reopens after close on same line",
			content: `/* a */ f("x"); /* b */ g("y");`,
			want:    []string{`"x"`, `"y"`},
		},
		{
			name:    "line comment beats block comment and literal",
			content: `// /* "x" */`,
			want:    nil,
		},
		{
			name:    "block comment hides line comment",
			content: "/* // */ f(\"x\");",
			want:    []string{`"x"`},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := literalsOf(t, tc.content)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("literals mismatch:\n got  %#v\n want %#v", got, tc.want)
			}
		})
	}
}

func TestEarliestTieBreak(t *testing.T) {
	cases := []struct {
		name                               string
		lineComment, blockComment, literal int
		want                               int
	}{
		{name: "all absent", lineComment: -1, blockComment: -1, literal: -1, want: pickNone},
		{name: "line comment only", lineComment: 3, blockComment: -1, literal: -1, want: pickLineComment},
		{name: "block comment only", lineComment: -1, blockComment: 0, literal: -1, want: pickBlockComment},
		{name: "literal only", lineComment: -1, blockComment: -1, literal: 7, want: pickLiteral},
		{name: "literal before comments", lineComment: 9, blockComment: 5, literal: 2, want: pickLiteral},
		{name: "block before line", lineComment: 6, blockComment: 4, literal: 8, want: pickBlockComment},
		{name: "equal offsets prefer line comment", lineComment: 2, blockComment: 2, literal: 2, want: pickLineComment},
		{name: "equal block and literal prefer block", lineComment: -1, blockComment: 1, literal: 1, want: pickBlockComment},
		{name: "zero offsets are valid", lineComment: 0, blockComment: 3, literal: 5, want: pickLineComment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := earliest(tc.lineComment, tc.blockComment, tc.literal)
			if got != tc.want {
				t.Fatalf("earliest(%d, %d, %d) = %d, want %d", tc.lineComment, tc.blockComment, tc.literal, got, tc.want)
			}
		})
	}
}

func TestLineCommentModeResetsAtLineEnd(t *testing.T) {
	st := scanState{}
	line := "f();//"
	st.startLine()
	for !st.done() {
		if _, ok := nextLiteral(line, &st); ok {
			t.Fatalf("unexpected literal on comment line")
		}
	}
	if st.mode != modeCode {
		t.Fatalf("mode should reset to code at line end, got %v", st.mode)
	}
}

func TestBlockCommentModeCarriesAcrossLines(t *testing.T) {
	st := scanState{}
	st.startLine()
	for !st.done() {
		nextLiteral(`f("a"); /* open`, &st)
	}
	if st.mode != modeBlockComment {
		t.Fatalf("expected block comment mode to carry, got %v", st.mode)
	}

	// An empty line inside the comment changes nothing.
	st.startLine()
	for !st.done() {
		nextLiteral("", &st)
	}
	if st.mode != modeBlockComment {
		t.Fatalf("block comment mode lost on empty line, got %v", st.mode)
	}

	st.startLine()
	var got []string
	for !st.done() {
		if lit, ok := nextLiteral(`close */ g("b");`, &st); ok {
			got = append(got, lit)
		}
	}
	if len(got) != 1 || got[0] != `"b"` {
		t.Fatalf("expected literal after comment close, got %#v", got)
	}
}

func TestFindLiteralOffsets(t *testing.T) {
	cases := []struct {
		name             string
		in               string
		wantStart, wantEnd int
	}{
		{name: "simple", in: `x = "ab";`, wantStart: 4, wantEnd: 8},
		{name: "at start", in: `"ab"`, wantStart: 0, wantEnd: 4},
		{name: "none", in: `x = 1;`, wantStart: -1, wantEnd: -1},
		{name: "char literal skipped", in: `'"' + "ok"`, wantStart: 6, wantEnd: 10},
		{name: "unterminated", in: `x = "ab`, wantStart: -1, wantEnd: -1},
		{name: "escape at end", in: `x = "ab\`, wantStart: -1, wantEnd: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := findLiteral(tc.in)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("findLiteral(%q) = (%d, %d), want (%d, %d)", tc.in, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}
