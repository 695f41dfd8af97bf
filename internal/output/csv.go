package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/nlsfmt/internal/model"
)

// WriteCSV renders results as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, results []model.FileResult, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(sel.Fields)); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write(RowValues(r, sel.Fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
