package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/decomment/internal/engine"
)

type spanRecord struct {
	File string `json:"file"`
	Lang string `json:"lang"`
	engine.SpanItem
}

// WriteSpansNDJSON streams one JSON object per span.
func WriteSpansNDJSON(w io.Writer, items []engine.Item) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, it := range items {
		for _, s := range it.Spans {
			if err := enc.Encode(spanRecord{File: it.File, Lang: it.Lang, SpanItem: s}); err != nil {
				return err
			}
		}
	}
	return nil
}
