package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/phyten/decomment/internal/engine"
	"github.com/phyten/decomment/internal/textutil"
)

var spanHeaders = []string{"FILE", "LOC", "KIND", "TEXT"}

var kindColors = map[string]*color.Color{
	"line_comment":  color.New(color.FgGreen),
	"block_comment": color.New(color.FgCyan),
	"code":          color.New(color.Faint),
}

// spanRows flattens per-file items into printable rows. Text is
// single-lined and truncated to trunc display columns (0 = no limit).
func spanRows(items []engine.Item, trunc int, colored bool) [][]string {
	var rows [][]string
	for _, it := range items {
		for _, s := range it.Spans {
			text := strings.ReplaceAll(s.Text, "\r\n", "\n")
			text = strings.ReplaceAll(text, "\n", "\\n")
			if trunc > 0 {
				text = textutil.TruncateByWidth(text, trunc, "…")
			}
			kind := s.Kind
			if colored {
				if c, ok := kindColors[kind]; ok {
					kind = c.Sprint(kind)
				}
			}
			rows = append(rows, []string{
				it.File,
				fmt.Sprintf("%d:%d", s.Line, s.Col),
				kind,
				text,
			})
		}
	}
	return rows
}

var statsHeaders = []string{"FILE", "LANG", "LINES", "COMMENT_LINES", "COMMENT_BYTES", "RATIO"}

func statsRows(items []engine.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		ratio := 0.0
		if it.TotalLines > 0 {
			ratio = float64(it.CommentLines) / float64(it.TotalLines)
		}
		rows = append(rows, []string{
			it.File,
			it.Lang,
			fmt.Sprintf("%d", it.TotalLines),
			fmt.Sprintf("%d", it.CommentLines),
			fmt.Sprintf("%d", it.CommentBytes),
			fmt.Sprintf("%.1f%%", ratio*100),
		})
	}
	return rows
}
