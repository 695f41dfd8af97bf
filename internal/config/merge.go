package config

import "strings"

func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Formatter = ResolveAndTrim(out.Formatter, layer.Formatter)
		out.FormatterArgs = ResolveStrings(out.FormatterArgs, layer.FormatterArgs)
		out.Write = ResolveBool(out.Write, layer.Write)
		out.Check = ResolveBool(out.Check, layer.Check)
		out.Paths = ResolveStrings(out.Paths, layer.Paths)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.PathRegex = ResolveStrings(out.PathRegex, layer.PathRegex)
		out.ExcludeTypical = ResolveBool(out.ExcludeTypical, layer.ExcludeTypical)
		out.Langs = ResolveStrings(out.Langs, layer.Langs)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
		out.Repo = ResolveAndTrim(out.Repo, layer.Repo)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

func MergeServe(base ServeSettings, layers ...ServeConfig) ServeSettings {
	out := base
	for _, layer := range layers {
		out.Port = ResolveInt(out.Port, layer.Port)
		out.Open = ResolveBool(out.Open, layer.Open)
	}
	return out
}
