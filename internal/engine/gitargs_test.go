package engine

import (
	"regexp"
	"testing"
)

func TestBuildPathspecs_DefaultsToDot(t *testing.T) {
	t.Parallel()

	got := buildPathspecs(nil, nil, false)
	want := []string{"."}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestBuildPathspecsIncludesAndExcludes(t *testing.T) {
	t.Parallel()

	includes := []string{"src", " pkg ", ""}
	excludes := []string{"generated/**", ":(exclude)third_party/**", ":!build/**"}

	got := buildPathspecs(includes, excludes, true)

	expectedHead := []string{"src", "pkg"}
	for i, want := range expectedHead {
		if i >= len(got) || got[i] != want {
			t.Fatalf("include %d mismatch: got=%v want=%v", i, got, expectedHead)
		}
	}

	// typical excludes should follow includes
	typical := typicalExcludePatterns
	start := len(expectedHead)
	if len(got) < start+len(typical) {
		t.Fatalf("expected typical excludes to be appended: %v", got)
	}
	for i, want := range typical {
		if got[start+i] != want {
			t.Fatalf("typical exclude mismatch at %d: got=%q want=%q", start+i, got[start+i], want)
		}
	}

	tail := got[start+len(typical):]
	expectedTail := []string{":(glob,exclude)generated/**", ":(exclude)third_party/**", ":!build/**"}
	if len(tail) != len(expectedTail) {
		t.Fatalf("exclude length mismatch: got=%v want=%v", tail, expectedTail)
	}
	for i, want := range expectedTail {
		if tail[i] != want {
			t.Fatalf("exclude %d mismatch: got=%q want=%q", i, tail[i], want)
		}
	}
}

func TestCompilePathRegexTrimsAndValidates(t *testing.T) {
	t.Parallel()

	rx, err := CompilePathRegex([]string{"  ", "^src/", "(cmd|pkg)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rx) != 2 {
		t.Fatalf("expected 2 regexps, got %d", len(rx))
	}

	if _, err := CompilePathRegex([]string{"["}); err == nil {
		t.Fatal("expected compile error for invalid regexp")
	}
}

func TestFilterPathsByRegex(t *testing.T) {
	t.Parallel()

	paths := []string{"src/Main.java", "pkg/util.go", "docs/readme.md"}
	rx := []*regexp.Regexp{regexp.MustCompile(`^src/`), regexp.MustCompile(`\.go$`)}

	got := filterPathsByRegex(paths, rx)
	want := []string{"src/Main.java", "pkg/util.go"}
	if len(got) != len(want) {
		t.Fatalf("expected %d paths, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path %d mismatch: got=%q want=%q", i, got[i], want[i])
		}
	}

	all := filterPathsByRegex(paths, nil)
	if len(all) != len(paths) {
		t.Fatalf("expected original slice when no regex: %d vs %d", len(all), len(paths))
	}
}
