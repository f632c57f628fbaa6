package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/phyten/decomment/internal/engine"
)

// WriteSpansTable renders span rows as an aligned table. Color is
// controlled globally via fatih/color's NoColor, which the CLI sets
// from --color and terminal detection.
func WriteSpansTable(w io.Writer, items []engine.Item, trunc int) error {
	return writeAligned(w, spanHeaders, spanRows(items, trunc, true))
}

// WriteSpansTSV renders span rows as tab-separated values, one span per
// line, no alignment padding.
func WriteSpansTSV(w io.Writer, items []engine.Item, trunc int) error {
	return writeTSV(w, spanHeaders, spanRows(items, trunc, false))
}

// WriteStatsTable renders per-file comment statistics.
func WriteStatsTable(w io.Writer, items []engine.Item) error {
	return writeAligned(w, statsHeaders, statsRows(items))
}

// WriteStatsTSV renders per-file comment statistics as TSV.
func WriteStatsTSV(w io.Writer, items []engine.Item) error {
	return writeTSV(w, statsHeaders, statsRows(items))
}

func writeAligned(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeTSV(w io.Writer, headers []string, rows [][]string) error {
	if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
