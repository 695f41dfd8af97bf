package termcolor

import "testing"

func TestApply(t *testing.T) {
	boldRed := Style{Bold: true}
	color := 1
	boldRed.FGBasic = &color
	got := Apply(boldRed, "failed", true)
	want := "\x1b[1;31mfailed\x1b[0m"
	if got != want {
		t.Fatalf("Apply produced %q, want %q", got, want)
	}

	if got := Apply(Style{}, "hello", true); got != "hello" {
		t.Fatalf("empty style should return original text, got %q", got)
	}
	if got := Apply(boldRed, "hello", false); got != "hello" {
		t.Fatalf("disabled Apply should return original text, got %q", got)
	}
}
