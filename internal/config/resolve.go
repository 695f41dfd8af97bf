package config

import "strings"

// The merge layers hand these helpers optional overrides in a fixed
// order (file, then env, then flags); the last layer that set a value
// wins, otherwise the default stands.

func ResolveString(def string, overrides ...*string) string {
	for i := len(overrides) - 1; i >= 0; i-- {
		if overrides[i] != nil {
			return *overrides[i]
		}
	}
	return def
}

func ResolveInt(def int, overrides ...*int) int {
	for i := len(overrides) - 1; i >= 0; i-- {
		if overrides[i] != nil {
			return *overrides[i]
		}
	}
	return def
}

func ResolveBool(def bool, overrides ...*bool) bool {
	for i := len(overrides) - 1; i >= 0; i-- {
		if overrides[i] != nil {
			return *overrides[i]
		}
	}
	return def
}

// ResolveStrings treats an explicitly empty list as "clear the default",
// not as unset; only a nil layer falls through.
func ResolveStrings(def []string, overrides ...*[]string) []string {
	for i := len(overrides) - 1; i >= 0; i-- {
		if overrides[i] == nil {
			continue
		}
		if len(*overrides[i]) == 0 {
			return []string{}
		}
		return cloneStrings(*overrides[i])
	}
	return cloneStrings(def)
}

func ResolveAndTrim(def string, overrides ...*string) string {
	return strings.TrimSpace(ResolveString(def, overrides...))
}
