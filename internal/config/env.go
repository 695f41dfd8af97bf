package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/nlsfmt/internal/engine/opts"
)

func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Engine.Formatter, "NLSFMT_FORMATTER")
	setList(&cfg.Engine.FormatterArgs, "NLSFMT_FORMATTER_ARGS")
	setBool(&cfg.Engine.Write, "NLSFMT_WRITE")
	setBool(&cfg.Engine.Check, "NLSFMT_CHECK")
	setList(&cfg.Engine.Paths, "NLSFMT_PATH")
	setList(&cfg.Engine.Excludes, "NLSFMT_EXCLUDE")
	setList(&cfg.Engine.PathRegex, "NLSFMT_PATH_REGEX")
	setList(&cfg.Engine.Langs, "NLSFMT_LANG")
	setBool(&cfg.Engine.ExcludeTypical, "NLSFMT_EXCLUDE_TYPICAL")
	setString(&cfg.Engine.Output, "NLSFMT_OUTPUT")
	setString(&cfg.Engine.Color, "NLSFMT_COLOR")
	setInt(&cfg.Engine.MaxFileBytes, "NLSFMT_MAX_FILE_BYTES", 0, math.MaxInt)
	// Allow large values here and rely on NormalizeAndValidate to enforce the
	// canonical upper bound so every input path shares the same error message.
	setInt(&cfg.Engine.Jobs, "NLSFMT_JOBS", 0, math.MaxInt)
	setString(&cfg.Engine.Repo, "NLSFMT_REPO")

	setInt(&cfg.Serve.Port, "NLSFMT_PORT", 1, 65535)
	setBool(&cfg.Serve.Open, "NLSFMT_OPEN")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
