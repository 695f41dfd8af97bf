package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/nlsfmt/internal/model"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"file":     "FILE",
	"lang":     "LANG",
	"status":   "STATUS",
	"literals": "LITERALS",
	"markers":  "MARKERS",
	"message":  "MESSAGE",
}

var defaultFieldKeys = []string{"file", "lang", "status", "literals", "markers", "message"}

// ResolveFields parses a comma-separated field list. An empty list
// selects every column in the default order.
func ResolveFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	sel := FieldSelection{}
	if raw == "" {
		sel.Fields = make([]Field, 0, len(defaultFieldKeys))
		for _, key := range defaultFieldKeys {
			sel.Fields = append(sel.Fields, Field{Key: key, Header: fieldRegistry[key]})
		}
		return sel, nil
	}

	parts := strings.Split(raw, ",")
	sel.Fields = make([]Field, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		key := strings.ToLower(name)
		header, ok := fieldRegistry[key]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		sel.Fields = append(sel.Fields, Field{Key: key, Header: header})
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Header)
	}
	return out
}

func RowValues(r model.FileResult, fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, formatFieldValue(r, f.Key))
	}
	return out
}

func formatFieldValue(r model.FileResult, key string) string {
	switch key {
	case "file":
		return r.File
	case "lang":
		return r.Lang
	case "status":
		return string(r.Status)
	case "literals":
		return strconv.Itoa(r.Literals)
	case "markers":
		return strconv.Itoa(r.Markers)
	case "message":
		return r.Message
	default:
		return ""
	}
}
