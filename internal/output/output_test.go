package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/phyten/nlsfmt/internal/model"
)

var sampleResults = []model.FileResult{
	{
		File:     "src/main/java/App.java",
		Lang:     "java",
		Status:   model.StatusFormatted,
		Literals: 12,
		Markers:  3,
	},
	{
		File:     "pkg/util/helpers.kt",
		Lang:     "kotlin",
		Status:   model.StatusFailed,
		Literals: 4,
		Markers:  1,
		Message:  "formatter exited with status 1 | see \"stderr\"\nsecond line",
	},
}

func TestResolveFields(t *testing.T) {
	sel, err := ResolveFields("")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	if len(sel.Fields) != len(defaultFieldKeys) {
		t.Fatalf("expected all default fields, got %d", len(sel.Fields))
	}

	sel, err = ResolveFields("file, STATUS ,markers")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	want := []string{"FILE", "STATUS", "MARKERS"}
	got := Headers(sel.Fields)
	if len(got) != len(want) {
		t.Fatalf("header mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("header %d mismatch: got=%q want=%q", i, got[i], want[i])
		}
	}

	if _, err := ResolveFields("file,,status"); err == nil {
		t.Fatal("expected error for empty entry")
	}
	if _, err := ResolveFields("bogus"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestWriteCSV(t *testing.T) {
	sel, err := ResolveFields("file,status,literals,markers")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults, sel); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\r\n") {
		t.Fatal("CSV output should use CRLF line endings")
	}
	if !strings.HasPrefix(out, "FILE,STATUS,LITERALS,MARKERS\r\n") {
		t.Fatalf("unexpected header row: %q", out)
	}
	if !strings.Contains(out, "src/main/java/App.java,formatted,12,3\r\n") {
		t.Fatalf("missing first row: %q", out)
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, sampleResults); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	output := buf.String()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != len(sampleResults) {
		t.Fatalf("expected %d lines, got %d", len(sampleResults), len(lines))
	}
	for i, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Fatalf("line %d is not valid JSON: %s", i, line)
		}
		var r model.FileResult
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Fatalf("failed to decode line %d: %v", i, err)
		}
	}
	if strings.Contains(output, "\\u003c") {
		t.Fatal("HTML characters should not be escaped in NDJSON output")
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	sel, err := ResolveFields("file,status,message")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, sampleResults, sel); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	output := buf.String()
	if !strings.HasPrefix(output, "| FILE | STATUS | MESSAGE |\n| --- | --- | --- |\n") {
		t.Fatalf("unexpected table head: %q", output)
	}
	if !strings.Contains(output, "see \"stderr\"<br>second line") {
		t.Fatal("expected newline conversion to <br> in markdown output")
	}
	if !strings.Contains(output, "status 1 \\|") {
		t.Fatal("expected pipe characters to be escaped in markdown output")
	}
}
