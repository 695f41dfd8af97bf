package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/phyten/nlsfmt/internal/execx"
	"github.com/phyten/nlsfmt/internal/nls"
)

// Formatter is the external formatting command. Source goes in on
// stdin; the formatted text comes back on stdout. A non-zero exit is a
// failure and stderr is folded into the error.
type Formatter struct {
	Cmd    string
	Args   []string
	Dir    string
	Runner execx.Runner
}

func (f *Formatter) runner() execx.Runner {
	if f.Runner != nil {
		return f.Runner
	}
	return execx.DefaultRunner()
}

// Format runs the external command over src.
func (f *Formatter) Format(ctx context.Context, src string) (string, error) {
	stdout, stderr, err := f.runner().Run(ctx, f.Dir, []byte(src), f.Cmd, f.Args...)
	if err != nil {
		if execx.IsNotFound(err) {
			return "", fmt.Errorf("formatter %s not found: %w", f.Cmd, err)
		}
		msg := firstLine(string(stderr))
		if msg == "" {
			return "", fmt.Errorf("formatter %s: %w", f.Cmd, err)
		}
		return "", fmt.Errorf("formatter %s: %w: %s", f.Cmd, err, msg)
	}
	return string(stdout), nil
}

// FormatSource runs the whole marker-preserving pipeline over src:
// capture literals and marker flags, blank the markers, run the external
// formatter, then re-emit the markers against the formatted text. Any
// error leaves the caller with the original text; partial output never
// escapes this function.
func FormatSource(ctx context.Context, src string, ranges *nls.RangeSet, f *Formatter, trace nls.TraceFunc) (string, nls.Extraction, error) {
	extraction, err := nls.Extract(src, ranges, trace)
	if err != nil {
		return src, extraction, err
	}

	work := src
	if extraction.Any {
		work = nls.Erase(work, ranges)
	}

	formatted, err := f.Format(ctx, work)
	if err != nil {
		return src, extraction, err
	}

	if extraction.Any {
		restored, err := nls.Reinject(formatted, extraction.Literals, extraction.HasMarker)
		if err != nil {
			return src, extraction, err
		}
		return restored, extraction, nil
	}
	return formatted, extraction, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
