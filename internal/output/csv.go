package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/phyten/decomment/internal/engine"
)

var csvHeaders = []string{"file", "lang", "start", "end", "line", "col", "kind", "text"}

// WriteSpansCSV renders spans as RFC 4180 CSV (CRLF endings). Unlike
// the table forms it keeps the raw offsets, one span per record.
func WriteSpansCSV(w io.Writer, items []engine.Item) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(csvHeaders); err != nil {
		return err
	}
	for _, it := range items {
		for _, s := range it.Spans {
			record := []string{
				it.File,
				it.Lang,
				strconv.Itoa(s.Start),
				strconv.Itoa(s.End),
				strconv.Itoa(s.Line),
				strconv.Itoa(s.Col),
				s.Kind,
				s.Text,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
