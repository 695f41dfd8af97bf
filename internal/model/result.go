package model

// FileStatus classifies the outcome of formatting one file.
type FileStatus string

const (
	// StatusFormatted means the formatter produced different text. In
	// write mode the file was rewritten; in check mode it only means a
	// rewrite is needed.
	StatusFormatted FileStatus = "formatted"
	// StatusUnchanged means the formatter output matched the input.
	StatusUnchanged FileStatus = "unchanged"
	// StatusSkipped means the file never reached the formatter (binary,
	// oversized, or an unsupported language).
	StatusSkipped FileStatus = "skipped"
	// StatusFailed means the formatter or the marker pipeline errored;
	// the file on disk is untouched.
	StatusFailed FileStatus = "failed"
)

// FileResult is the per-file outcome of a formatting run.
type FileResult struct {
	File     string     `json:"file"`
	Lang     string     `json:"lang,omitempty"`
	Status   FileStatus `json:"status"`
	Literals int        `json:"literals"`
	Markers  int        `json:"markers"`
	Message  string     `json:"message,omitempty"`
}
