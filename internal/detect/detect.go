// Package detect decides whether a file is written in a language the
// marker-preserving pipeline can scan, i.e. one whose comments are the
// C family's // and /* */. Detection goes by basename, then extension,
// then shebang.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

type Info struct {
	Name string
}

func FromPathAndContent(p string, data []byte) Info {
	if name := detectByPath(p); name != "" {
		return Info{Name: name}
	}
	if shebang := detectByShebang(data); shebang != "" {
		return Info{Name: shebang}
	}
	return Info{Name: ""}
}

func detectByPath(p string) string {
	base := strings.ToLower(filepath.Base(p))
	if lang, ok := basenameLanguages[base]; ok {
		return lang
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return ""
	}
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	return ""
}

func detectByShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for key, lang := range shebangLanguages {
		if strings.Contains(line, key) {
			return lang
		}
	}
	return ""
}

func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

// MatchesLang reports whether the detected language is in the allow
// list. An empty allow list accepts every detected language.
func MatchesLang(info Info, allow []string) bool {
	detected := NormalizeLangName(info.Name)
	if detected == "" {
		return false
	}
	if len(allow) == 0 {
		return true
	}
	for _, raw := range allow {
		if NormalizeLangName(raw) == detected {
			return true
		}
	}
	return false
}

func KnownLanguage(name string) bool {
	if name == "" {
		return false
	}
	_, ok := supportedLanguages[NormalizeLangName(name)]
	return ok
}

// CanonicalLangs normalizes and de-duplicates a language allow list.
func CanonicalLangs(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		norm := NormalizeLangName(raw)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

// Only languages with C-style comments belong here; the scanner's idea
// of a comment is hardwired to // and /* */.
var extensionLanguages = map[string]string{
	".java":   "java",
	".kt":     "kotlin",
	".kts":    "kotlin",
	".groovy": "groovy",
	".gradle": "groovy",
	".scala":  "scala",
	".c":      "c",
	".h":      "c",
	".cc":     "cpp",
	".cpp":    "cpp",
	".cxx":    "cpp",
	".hh":     "cpp",
	".hpp":    "cpp",
	".m":      "objective-c",
	".mm":     "objective-cpp",
	".cs":     "csharp",
	".go":     "go",
	".js":     "javascript",
	".mjs":    "javascript",
	".cjs":    "javascript",
	".jsx":    "javascriptreact",
	".ts":     "typescript",
	".tsx":    "typescriptreact",
	".swift":  "swift",
	".rs":     "rust",
	".dart":   "dart",
	".proto":  "proto",
}

var basenameLanguages = map[string]string{
	"jenkinsfile": "groovy",
}

var shebangLanguages = map[string]string{
	"node":   "javascript",
	"deno":   "javascript",
	"groovy": "groovy",
}

var langAliases = map[string]string{
	"c#":   "csharp",
	"cs":   "csharp",
	"c++":  "cpp",
	"cc":   "cpp",
	"js":   "javascript",
	"mjs":  "javascript",
	"jsx":  "javascriptreact",
	"ts":   "typescript",
	"tsx":  "typescriptreact",
	"kt":   "kotlin",
	"objc": "objective-c",
}

var supportedLanguages = map[string]struct{}{
	"java":            {},
	"kotlin":          {},
	"groovy":          {},
	"scala":           {},
	"c":               {},
	"cpp":             {},
	"objective-c":     {},
	"objective-cpp":   {},
	"csharp":          {},
	"go":              {},
	"javascript":      {},
	"javascriptreact": {},
	"typescript":      {},
	"typescriptreact": {},
	"swift":           {},
	"rust":            {},
	"dart":            {},
	"proto":           {},
}
