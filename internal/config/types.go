package config

import (
	"strings"

	"github.com/phyten/nlsfmt/internal/engine"
)

type EngineConfig struct {
	Formatter      *string   `yaml:"formatter" toml:"formatter" json:"formatter"`
	FormatterArgs  *[]string `yaml:"formatter_args" toml:"formatter_args" json:"formatter_args"`
	Write          *bool     `yaml:"write" toml:"write" json:"write"`
	Check          *bool     `yaml:"check" toml:"check" json:"check"`
	Paths          *[]string `yaml:"path" toml:"path" json:"path"`
	Excludes       *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	PathRegex      *[]string `yaml:"path_regex" toml:"path_regex" json:"path_regex"`
	ExcludeTypical *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	Langs          *[]string `yaml:"lang" toml:"lang" json:"lang"`
	Jobs           *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	Repo           *string   `yaml:"repo" toml:"repo" json:"repo"`
	Output         *string   `yaml:"output" toml:"output" json:"output"`
	Color          *string   `yaml:"color" toml:"color" json:"color"`
	MaxFileBytes   *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
}

type ServeConfig struct {
	Port *int  `yaml:"port" toml:"port" json:"port"`
	Open *bool `yaml:"open" toml:"open" json:"open"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	Serve  ServeConfig  `yaml:"serve" toml:"serve" json:"serve"`
}

type EngineSettings struct {
	Formatter      string
	FormatterArgs  []string
	Write          bool
	Check          bool
	Paths          []string
	Excludes       []string
	PathRegex      []string
	ExcludeTypical bool
	Langs          []string
	Jobs           int
	Repo           string
	Output         string
	Color          string
	MaxFileBytes   int
}

type ServeSettings struct {
	Port int
	Open bool
}

func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	return EngineSettings{
		Formatter:      opts.FormatterCmd,
		FormatterArgs:  cloneStrings(opts.FormatterArgs),
		Write:          opts.Write,
		Check:          opts.Check,
		Paths:          cloneStrings(opts.Paths),
		Excludes:       cloneStrings(opts.Excludes),
		PathRegex:      cloneStrings(opts.PathRegex),
		ExcludeTypical: opts.ExcludeTypical,
		Langs:          cloneStrings(opts.Langs),
		Jobs:           opts.Jobs,
		Repo:           opts.RepoDir,
		Output:         "table",
		Color:          "auto",
		MaxFileBytes:   opts.MaxFileBytes,
	}
}

func (s EngineSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.FormatterCmd = s.Formatter
	opts.FormatterArgs = cloneStrings(s.FormatterArgs)
	opts.Write = s.Write
	opts.Check = s.Check
	opts.Paths = cloneStrings(s.Paths)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.PathRegex = cloneStrings(s.PathRegex)
	opts.ExcludeTypical = s.ExcludeTypical
	opts.Langs = cloneStrings(s.Langs)
	opts.Jobs = s.Jobs
	if trimmed := strings.TrimSpace(s.Repo); trimmed != "" {
		opts.RepoDir = trimmed
	}
	opts.MaxFileBytes = s.MaxFileBytes
}

func DefaultServeSettings() ServeSettings {
	return ServeSettings{
		Port: 8080,
		Open: false,
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
