package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/nlsfmt/internal/model"
)

// WriteNDJSON streams results as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, results []model.FileResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
