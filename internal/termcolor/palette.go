package termcolor

import (
	"strings"

	"github.com/phyten/nlsfmt/internal/model"
)

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// StatusStyle maps a per-file outcome onto a terminal style: formatted
// files are green, failures red, skipped files dimmed.
func StatusStyle(status model.FileStatus) Style {
	switch status {
	case model.StatusFormatted:
		color := 2
		return Style{FGBasic: &color}
	case model.StatusFailed:
		color := 1
		return Style{FGBasic: &color}
	case model.StatusSkipped:
		return Style{Dim: true}
	default:
		return Style{}
	}
}

// MarkerStyle highlights the marker count column when a file actually
// carries NON-NLS markers.
func MarkerStyle(markers int, profile Profile) Style {
	if markers <= 0 {
		return Style{}
	}
	switch profile {
	case ProfileTrueColor:
		rgb := [3]uint8{0, 175, 255}
		return Style{FGTrue: &rgb}
	case ProfileANSI256:
		idx := 39
		return Style{FG256: &idx}
	default:
		color := 6
		return Style{FGBasic: &color}
	}
}

// LangStyle keeps language names visually quiet next to the status column.
func LangStyle(lang string) Style {
	if strings.TrimSpace(lang) == "" {
		return Style{Dim: true}
	}
	return Style{}
}
