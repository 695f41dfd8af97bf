// Package termcolor decides whether the result table gets ANSI colors
// and which palette depth the terminal supports.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode reads a --color flag value. The empty string means auto.
func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// EnvMap turns os.Environ-style "KEY=value" entries into a lookup map.
func EnvMap(entries []string) map[string]string {
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		if key, value, ok := strings.Cut(entry, "="); ok {
			env[key] = value
		} else {
			env[entry] = ""
		}
	}
	return env
}

// DetectMode resolves auto mode against the conventional environment
// switches. TERM=dumb and NO_COLOR always win, CLICOLOR=0 disables,
// CLICOLOR_FORCE / FORCE_COLOR enable even when piped, and otherwise
// the decision is simply whether stdout is a terminal.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	lookup := func(key string) string { return strings.TrimSpace(env[key]) }
	if env != nil {
		if strings.EqualFold(lookup("TERM"), "dumb") {
			return ModeNever
		}
		if lookup("NO_COLOR") != "" {
			return ModeNever
		}
		if lookup("CLICOLOR") == "0" {
			return ModeNever
		}
		if v := lookup("CLICOLOR_FORCE"); v != "" && v != "0" {
			return ModeAlways
		}
		if v := lookup("FORCE_COLOR"); v != "" && v != "0" {
			return ModeAlways
		}
	}
	if isTerminal(stdout) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled maps a resolved mode to a yes/no for the renderer. Auto falls
// back to a plain TTY check; callers that care about NO_COLOR and
// friends resolve through DetectMode first.
func Enabled(mode ColorMode, stdout *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	return isTerminal(stdout)
}

// DetectProfile picks the deepest palette the terminal advertises:
// COLORTERM truecolor/24bit, then a 256color TERM, then basic 8.
func DetectProfile(env map[string]string) Profile {
	if env == nil {
		return ProfileBasic8
	}
	colorterm := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") || strings.Contains(colorterm, "24-bit") {
		return ProfileTrueColor
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
