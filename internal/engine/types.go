package engine

import (
	"regexp"

	"github.com/phyten/nlsfmt/internal/execx"
	"github.com/phyten/nlsfmt/internal/model"
)

// Options control one formatting run.
type Options struct {
	// FormatterCmd is the external formatter binary; it reads source on
	// stdin and writes the formatted text to stdout.
	FormatterCmd  string
	FormatterArgs []string

	// Write rewrites changed files in place. Check only reports. When
	// neither is set, formatted output goes to stdout (single file) or
	// the run behaves like Check.
	Write bool
	Check bool

	Jobs    int
	RepoDir string

	Paths             []string
	Excludes          []string
	ExcludeTypical    bool
	PathRegex         []string
	PathRegexCompiled []*regexp.Regexp
	Langs             []string

	MaxFileBytes int
	Progress     bool
	Verbose      bool

	// Runner is swapped out in tests; nil means the real command runner.
	Runner execx.Runner
}

// ItemError records a per-file failure without aborting the run.
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Result is the outcome of a run over all candidate files.
type Result struct {
	Files      []model.FileResult `json:"files"`
	Formatted  int                `json:"formatted"`
	Unchanged  int                `json:"unchanged"`
	Skipped    int                `json:"skipped"`
	Failed     int                `json:"failed"`
	Total      int                `json:"total"`
	ElapsedMS  int64              `json:"elapsed_ms"`
	Errors     []ItemError        `json:"errors,omitempty"`
	ErrorCount int                `json:"error_count"`
}
