package nls

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExtractSingleMarker(t *testing.T) {
	x, err := Extract(`foo("a"); //$NON-NLS-1$`, nil, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !reflect.DeepEqual(x.Literals, []string{`"a"`}) {
		t.Fatalf("literals mismatch: %#v", x.Literals)
	}
	if !reflect.DeepEqual(x.HasMarker, []bool{true}) {
		t.Fatalf("marker flags mismatch: %#v", x.HasMarker)
	}
	if !x.Any {
		t.Fatalf("Any should be true")
	}
}

func TestExtractMarkerTargetsSecondLiteral(t *testing.T) {
	x, err := Extract(`f("a","b"); //$NON-NLS-2$`, nil, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !reflect.DeepEqual(x.Literals, []string{`"a"`, `"b"`}) {
		t.Fatalf("literals mismatch: %#v", x.Literals)
	}
	if !reflect.DeepEqual(x.HasMarker, []bool{false, true}) {
		t.Fatalf("marker flags mismatch: %#v", x.HasMarker)
	}
	if got := x.MarkerCount(); got != 1 {
		t.Fatalf("MarkerCount = %d, want 1", got)
	}
}

func TestExtractIgnoresOutOfRangeOrdinals(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "ordinal too large", content: `f("a"); //$NON-NLS-2$`},
		{name: "ordinal zero", content: `f("a"); //$NON-NLS-0$`},
		{name: "marker without literal", content: `f(); //$NON-NLS-1$`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, err := Extract(tc.content, nil, nil)
			if err != nil {
				t.Fatalf("Extract error: %v", err)
			}
			for i, f := range x.HasMarker {
				if f {
					t.Fatalf("literal %d unexpectedly flagged", i)
				}
			}
			if x.Any {
				t.Fatalf("Any should be false")
			}
		})
	}
}

func TestExtractMarkerAppliesPerLine(t *testing.T) {
	content := "f(\"a\");\ng(\"b\"); //$NON-NLS-1$\n"
	x, err := Extract(content, nil, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !reflect.DeepEqual(x.Literals, []string{`"a"`, `"b"`}) {
		t.Fatalf("literals mismatch: %#v", x.Literals)
	}
	if !reflect.DeepEqual(x.HasMarker, []bool{false, true}) {
		t.Fatalf("marker flags mismatch: %#v", x.HasMarker)
	}
}

func TestExtractRangeGatesMarkersNotLiterals(t *testing.T) {
	line1 := `f("a"); //$NON-NLS-1$`
	line2 := `g("b"); //$NON-NLS-1$`
	content := line1 + "\n" + line2

	// Only the second line is active.
	ranges := NewRangeSet([2]int{len(line1) + 1, len(content)})
	x, err := Extract(content, ranges, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !reflect.DeepEqual(x.Literals, []string{`"a"`, `"b"`}) {
		t.Fatalf("literal extraction must ignore ranges: %#v", x.Literals)
	}
	if !reflect.DeepEqual(x.HasMarker, []bool{false, true}) {
		t.Fatalf("marker gating mismatch: %#v", x.HasMarker)
	}
	if !x.Any {
		t.Fatalf("Any should be true for the in-range marker")
	}
}

func TestExtractMarkerSpanMustBeEnclosed(t *testing.T) {
	line := `f("a"); //$NON-NLS-1$` // marker token spans [8, 21)
	cases := []struct {
		name   string
		ranges *RangeSet
		want   bool
	}{
		{name: "exact span", ranges: NewRangeSet([2]int{8, 21}), want: true},
		{name: "cut short by one", ranges: NewRangeSet([2]int{0, 20}), want: false},
		{name: "starts inside token", ranges: NewRangeSet([2]int{9, 21}), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, err := Extract(line, tc.ranges, nil)
			if err != nil {
				t.Fatalf("Extract error: %v", err)
			}
			if x.HasMarker[0] != tc.want {
				t.Fatalf("HasMarker[0] = %v, want %v", x.HasMarker[0], tc.want)
			}
		})
	}
}

func TestExtractNoMarkersAnywhere(t *testing.T) {
	line := `f("a"); //$NON-NLS-1$`
	ranges := NewRangeSet([2]int{0, 2})
	x, err := Extract(line, ranges, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if x.Any {
		t.Fatalf("marker outside active range must not count")
	}
	if x.HasMarker[0] {
		t.Fatalf("literal must stay unflagged when its line is out of range")
	}
}

func TestExtractTraceCallback(t *testing.T) {
	var buf strings.Builder
	trace := func(format string, args ...any) {
		fmt.Fprintf(&buf, format+"\n", args...)
	}
	if _, err := Extract(`f("a"); //$NON-NLS-1$`, nil, trace); err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 literals") {
		t.Fatalf("trace output missing literal count: %q", out)
	}
	if !strings.Contains(out, `"a"`) {
		t.Fatalf("trace output missing literal text: %q", out)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	x, err := Extract("", nil, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(x.Literals) != 0 || len(x.HasMarker) != 0 || x.Any {
		t.Fatalf("unexpected extraction from empty input: %+v", x)
	}
}
