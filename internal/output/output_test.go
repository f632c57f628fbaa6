package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/phyten/decomment/internal/engine"
)

func sampleItems() []engine.Item {
	return []engine.Item{
		{
			File: "a.py", Lang: "python", TotalLines: 2, CommentLines: 1, CommentBytes: 6,
			Spans: []engine.SpanItem{
				{Start: 6, End: 12, Line: 1, Col: 7, Kind: "line_comment", Text: "# note"},
			},
		},
		{
			File: "b.c", Lang: "c", TotalLines: 1, CommentLines: 1, CommentBytes: 9,
			Spans: []engine.SpanItem{
				{Start: 0, End: 9, Line: 1, Col: 1, Kind: "block_comment", Text: "/* a\nb */"},
			},
		},
	}
}

func TestWriteSpansTable(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var b strings.Builder
	if err := WriteSpansTable(&b, sampleItems(), 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "FILE") || !strings.Contains(lines[0], "KIND") {
		t.Fatalf("header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "a.py") || !strings.Contains(lines[1], "1:7") {
		t.Fatalf("row: %q", lines[1])
	}
	// Newlines inside span text are escaped so rows stay single lines.
	if !strings.Contains(lines[2], `/* a\nb */`) {
		t.Fatalf("escaped text missing: %q", lines[2])
	}
}

func TestWriteSpansTableTruncates(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	items := []engine.Item{{File: "f", Lang: "c", Spans: []engine.SpanItem{
		{Line: 1, Col: 1, Kind: "line_comment", Text: "// a very long comment body"},
	}}}
	var b strings.Builder
	if err := WriteSpansTable(&b, items, 10); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(b.String(), "// a very…") {
		t.Fatalf("truncation missing: %q", b.String())
	}
}

func TestWriteSpansTSV(t *testing.T) {
	var b strings.Builder
	if err := WriteSpansTSV(&b, sampleItems(), 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if lines[0] != "FILE\tLOC\tKIND\tTEXT" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != "a.py\t1:7\tline_comment\t# note" {
		t.Fatalf("row: %q", lines[1])
	}
}

func TestWriteSpansCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteSpansCSV(&b, sampleItems()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "file,lang,start,end,line,col,kind,text\r\n") {
		t.Fatalf("csv header: %q", out)
	}
	if !strings.Contains(out, "a.py,python,6,12,1,7,line_comment,# note\r\n") {
		t.Fatalf("csv row missing: %q", out)
	}
}

func TestWriteSpansNDJSON(t *testing.T) {
	var b strings.Builder
	if err := WriteSpansNDJSON(&b, sampleItems()); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one record per span, got %d", len(lines))
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record not valid JSON: %v", err)
	}
	if rec["file"] != "a.py" || rec["kind"] != "line_comment" {
		t.Fatalf("record: %v", rec)
	}
}

func TestWriteSpansMarkdown(t *testing.T) {
	var b strings.Builder
	if err := WriteSpansMarkdown(&b, []engine.Item{{File: "f.c", Lang: "c", Spans: []engine.SpanItem{
		{Line: 1, Col: 1, Kind: "line_comment", Text: "// a | b"},
	}}}, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "| FILE |") || !strings.Contains(out, "| --- |") {
		t.Fatalf("markdown frame: %q", out)
	}
	if !strings.Contains(out, `\|`) {
		t.Fatalf("pipe not escaped: %q", out)
	}
}

func TestWriteStatsTable(t *testing.T) {
	var b strings.Builder
	if err := WriteStatsTable(&b, sampleItems()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "COMMENT_LINES") || !strings.Contains(out, "RATIO") {
		t.Fatalf("header: %q", out)
	}
	if !strings.Contains(out, "50.0%") || !strings.Contains(out, "100.0%") {
		t.Fatalf("ratios: %q", out)
	}
}
