package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/decomment/internal/engine"
)

// WriteSpansMarkdown renders span rows as a GitHub Flavored Markdown
// table.
func WriteSpansMarkdown(w io.Writer, items []engine.Item, trunc int) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(spanHeaders, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(spanHeaders))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range spanRows(items, trunc, false) {
		for i := range row {
			row[i] = escapeCell(row[i])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return strings.ReplaceAll(s, "|", "\\|")
}
