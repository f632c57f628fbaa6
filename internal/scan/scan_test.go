package scan

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/phyten/decomment/internal/lang"
	"github.com/phyten/decomment/internal/model"
)

func mustRule(t *testing.T, id string) lang.Rule {
	t.Helper()
	rule, err := lang.Builtin().Lookup(id)
	if err != nil {
		t.Fatalf("lookup %s: %v", id, err)
	}
	return rule
}

func kinds(spans []model.Span) []model.SpanKind {
	out := make([]model.SpanKind, len(spans))
	for i, s := range spans {
		out[i] = s.Kind
	}
	return out
}

func joinSpans(t *testing.T, text string, spans []model.Span) string {
	t.Helper()
	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.Start != prev {
			t.Fatalf("span gap: next starts at %d, previous ended at %d", s.Start, prev)
		}
		b.WriteString(s.Text(text))
		prev = s.End
	}
	if prev != len(text) {
		t.Fatalf("spans end at %d, input has %d bytes", prev, len(text))
	}
	return b.String()
}

func TestScanLineComment(t *testing.T) {
	text := "x = 1  # note\ny = 2\n"
	spans, err := Scan(mustRule(t, "python"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if joinSpans(t, text, spans) != text {
		t.Fatal("concatenated spans do not reproduce the input")
	}
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %v", len(spans), spans)
	}
	if spans[1].Kind != model.SpanKindLineComment {
		t.Fatalf("expected line comment, got %s", spans[1].Kind)
	}
	if got := spans[1].Text(text); got != "# note" {
		t.Fatalf("comment text: got %q want %q", got, "# note")
	}
	// The newline stays with the following code span.
	if got := spans[2].Text(text); got != "\ny = 2\n" {
		t.Fatalf("trailing code: got %q", got)
	}
	if spans[1].Line != 1 || spans[1].Col != 8 {
		t.Fatalf("comment position: got %d:%d want 1:8", spans[1].Line, spans[1].Col)
	}
}

func TestScanLineCommentAtEOFWithoutNewline(t *testing.T) {
	text := "x = 1 # tail"
	spans, err := Scan(mustRule(t, "python"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	last := spans[len(spans)-1]
	if last.Kind != model.SpanKindLineComment || last.End != len(text) {
		t.Fatalf("expected comment to run to EOF, got %+v", last)
	}
}

func TestScanCRLFStaysOutsideComment(t *testing.T) {
	text := "x = 1 # hi\r\ny = 2\r\n"
	spans, err := Scan(mustRule(t, "python"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := spans[1].Text(text); got != "# hi" {
		t.Fatalf("comment should not include CR: got %q", got)
	}
	stripped, err := Strip(mustRule(t, "python"), text)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	if stripped != "x = 1 \r\ny = 2\r\n" {
		t.Fatalf("stripped: got %q", stripped)
	}
}

func TestScanBlockComment(t *testing.T) {
	text := "a /* one\ntwo */ b"
	spans, err := Scan(mustRule(t, "c"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []model.SpanKind{model.SpanKindCode, model.SpanKindBlockComment, model.SpanKindCode}
	got := kinds(spans)
	if len(got) != len(want) {
		t.Fatalf("kinds: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds: got %v want %v", got, want)
		}
	}
	if spans[1].Text(text) != "/* one\ntwo */" {
		t.Fatalf("block text: got %q", spans[1].Text(text))
	}
}

func TestScanNonNestableFirstCloseWins(t *testing.T) {
	text := "/* a /* b */ c"
	spans, err := Scan(mustRule(t, "c"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if spans[0].Text(text) != "/* a /* b */" {
		t.Fatalf("comment: got %q", spans[0].Text(text))
	}
	if spans[1].Kind != model.SpanKindCode || spans[1].Text(text) != " c" {
		t.Fatalf("tail: got %+v", spans[1])
	}
}

func TestScanNestedBlocks(t *testing.T) {
	text := "{- a {- b -} c -} x"
	spans, err := Scan(mustRule(t, "haskell"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if spans[0].Text(text) != "{- a {- b -} c -}" {
		t.Fatalf("nested comment: got %q", spans[0].Text(text))
	}
	if spans[1].Text(text) != " x" {
		t.Fatalf("tail: got %q", spans[1].Text(text))
	}
}

func TestScanUnterminatedBlock(t *testing.T) {
	text := "a = 1\n/* never closed"
	spans, err := Scan(mustRule(t, "c"), text)
	var ub *UnterminatedBlockError
	if !errors.As(err, &ub) {
		t.Fatalf("expected UnterminatedBlockError, got %v", err)
	}
	if ub.Open != "/*" || ub.Line != 2 || ub.Col != 1 {
		t.Fatalf("error detail: %+v", ub)
	}
	// Lenient callers still get the full span list.
	if joinSpans(t, text, spans) != text {
		t.Fatal("lenient spans do not reproduce the input")
	}
	last := spans[len(spans)-1]
	if last.Kind != model.SpanKindBlockComment || last.End != len(text) {
		t.Fatalf("tail should be a block comment to EOF, got %+v", last)
	}
}

func TestScanLongestDelimiterWins(t *testing.T) {
	// Lua: --[[ opens a block even though -- alone is a line marker.
	text := "--[[ block\nstill ]] done\n-- line\n"
	spans, err := Scan(mustRule(t, "lua"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if spans[0].Kind != model.SpanKindBlockComment || spans[0].Text(text) != "--[[ block\nstill ]]" {
		t.Fatalf("expected block first, got %+v %q", spans[0], spans[0].Text(text))
	}
	var line model.Span
	for _, s := range spans {
		if s.Kind == model.SpanKindLineComment {
			line = s
		}
	}
	if line.Text(text) != "-- line" {
		t.Fatalf("line comment: got %q", line.Text(text))
	}
}

func TestScanHandlebarsPrefersLongOpen(t *testing.T) {
	text := "{{!-- a }} still --}} b"
	spans, err := Scan(mustRule(t, "handlebars"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if spans[0].Text(text) != "{{!-- a }} still --}}" {
		t.Fatalf("comment: got %q", spans[0].Text(text))
	}
}

func TestScanStringLiteralHidesMarker(t *testing.T) {
	text := "x = \"a # b\" # real\n"
	spans, err := Scan(mustRule(t, "python"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	comments := 0
	for _, s := range spans {
		if s.Kind == model.SpanKindLineComment {
			comments++
			if s.Text(text) != "# real" {
				t.Fatalf("comment: got %q", s.Text(text))
			}
		}
	}
	if comments != 1 {
		t.Fatalf("expected exactly one comment, got %d", comments)
	}
}

func TestScanEscapedQuoteStaysInString(t *testing.T) {
	text := `s = "a\"# not" # yes`
	spans, err := Scan(mustRule(t, "python"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var comment string
	for _, s := range spans {
		if s.Kind == model.SpanKindLineComment {
			comment = s.Text(text)
		}
	}
	if comment != "# yes" {
		t.Fatalf("comment: got %q", comment)
	}
}

func TestScanRawStringTakesNoEscapes(t *testing.T) {
	text := "s := `a \\` // still code\nx := 1 // done\n"
	spans, err := Scan(mustRule(t, "go"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	// The backslash does not escape the closing backtick, so the first
	// // sits outside the literal and opens a comment.
	var comments []string
	for _, s := range spans {
		if s.Kind == model.SpanKindLineComment {
			comments = append(comments, s.Text(text))
		}
	}
	if len(comments) != 2 || comments[0] != "// still code" || comments[1] != "// done" {
		t.Fatalf("comments: got %v", comments)
	}
}

func TestScanMarkerInsideRawStringIgnored(t *testing.T) {
	text := "s := `// not a comment`\n"
	spans, err := Scan(mustRule(t, "go"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for _, s := range spans {
		if s.Kind != model.SpanKindCode {
			t.Fatalf("expected code only, got %s %q", s.Kind, s.Text(text))
		}
	}
}

func TestScanColumnOneConstraint(t *testing.T) {
	text := "=begin\ndocs\n=end\nx = 1\n y =begin\n"
	spans, err := Scan(mustRule(t, "ruby"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if spans[0].Kind != model.SpanKindBlockComment || spans[0].Text(text) != "=begin\ndocs\n=end" {
		t.Fatalf("block: got %q", spans[0].Text(text))
	}
	// The indented =begin on the last line is plain code.
	last := spans[len(spans)-1]
	if last.Kind != model.SpanKindCode {
		t.Fatalf("expected trailing code, got %+v", last)
	}
}

func TestScanFixedFormColumnOne(t *testing.T) {
	text := "C full line comment\n      X = C\n"
	spans, err := Scan(mustRule(t, "fortran-fixed"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if spans[0].Kind != model.SpanKindLineComment || spans[0].Text(text) != "C full line comment" {
		t.Fatalf("first span: %+v %q", spans[0], spans[0].Text(text))
	}
	// The C in the expression is not in column 1.
	for _, s := range spans[1:] {
		if s.Kind != model.SpanKindCode {
			t.Fatalf("expected code after line 1, got %s %q", s.Kind, s.Text(text))
		}
	}
}

func TestScanFirstNonBlankConstraint(t *testing.T) {
	text := "  :: indented comment\necho :: not a comment\n"
	spans, err := Scan(mustRule(t, "batch"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var comments []string
	for _, s := range spans {
		if s.Kind == model.SpanKindLineComment {
			comments = append(comments, s.Text(text))
		}
	}
	if len(comments) != 1 || comments[0] != ":: indented comment" {
		t.Fatalf("comments: got %v", comments)
	}
}

func TestScanBatchRemWordBoundary(t *testing.T) {
	text := "REM\nREM note\nREMARK=1\n"
	spans, err := Scan(mustRule(t, "batch"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var comments []string
	for _, s := range spans {
		if s.Kind == model.SpanKindLineComment {
			comments = append(comments, s.Text(text))
		}
	}
	want := []string{"REM", "REM note"}
	if !reflect.DeepEqual(comments, want) {
		t.Fatalf("comments: got %v want %v", comments, want)
	}
}

func TestScanAbapAsymmetry(t *testing.T) {
	text := "* full line\nWRITE 'x'. \" inline\n"
	spans, err := Scan(mustRule(t, "abap"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var comments []string
	for _, s := range spans {
		if s.Kind == model.SpanKindLineComment {
			comments = append(comments, s.Text(text))
		}
	}
	if len(comments) != 2 || comments[0] != "* full line" || comments[1] != "\" inline" {
		t.Fatalf("comments: got %v", comments)
	}
}

func TestScanPascalMixedStyles(t *testing.T) {
	text := "{ a } code (* b *) // rest\n"
	spans, err := Scan(mustRule(t, "pascal"), text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var got []string
	for _, s := range spans {
		if s.Kind.Comment() {
			got = append(got, s.Text(text))
		}
	}
	if len(got) != 3 || got[0] != "{ a }" || got[1] != "(* b *)" || got[2] != "// rest" {
		t.Fatalf("comments: got %v", got)
	}
}

func TestStripKeepsLineNumbering(t *testing.T) {
	text := "a // one\nb /* two */ c\n"
	stripped, err := Strip(mustRule(t, "c"), text)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	if stripped != "a \nb  c\n" {
		t.Fatalf("stripped: got %q", stripped)
	}
	if strings.Count(stripped, "\n") != strings.Count(text, "\n") {
		t.Fatal("strip changed the line count")
	}
}

func TestCommentsOnly(t *testing.T) {
	text := "x /* a */ y // b"
	spans, err := Comments(mustRule(t, "c"), text)
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(spans))
	}
	if spans[0].Text(text) != "/* a */" || spans[1].Text(text) != "// b" {
		t.Fatalf("comments: %q %q", spans[0].Text(text), spans[1].Text(text))
	}
}

func TestScanEmptyAndCommentOnlyInput(t *testing.T) {
	rule := mustRule(t, "c")
	spans, err := Scan(rule, "")
	if err != nil {
		t.Fatalf("scan empty: %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("expected no spans for empty input, got %v", spans)
	}
	spans, err = Scan(rule, "// only\n")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(spans) != 2 || spans[0].Kind != model.SpanKindLineComment || spans[1].Text("// only\n") != "\n" {
		t.Fatalf("spans: %v", spans)
	}
}

func TestScanDNestsOnlySlashPlus(t *testing.T) {
	rule := mustRule(t, "d")

	text := "/+ a /+ b +/ c +/x"
	spans, err := Scan(rule, text)
	if err != nil {
		t.Fatalf("scan /+: %v", err)
	}
	if len(spans) != 2 || spans[0].Text(text) != "/+ a /+ b +/ c +/" || spans[1].Text(text) != "x" {
		t.Fatalf("/+ should nest: %v", spans)
	}

	text = "/* a /* b */ x"
	spans, err = Scan(rule, text)
	if err != nil {
		t.Fatalf("scan /*: %v", err)
	}
	if len(spans) != 2 || spans[0].Text(text) != "/* a /* b */" || spans[1].Text(text) != " x" {
		t.Fatalf("/* should not nest: %v", spans)
	}
}

func TestScanCustomRule(t *testing.T) {
	rule := lang.Rule{
		ID:          "pseudo",
		LineMarkers: []lang.Marker{{Text: "--"}},
		BlockDelims: []lang.Delim{{Open: "{", Close: "}"}, {Open: "(*", Close: "*)"}},
	}
	text := "{ a } code -- rest"
	spans, err := Scan(rule, text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %v", spans)
	}
	if spans[0].Text(text) != "{ a }" || spans[0].Kind != model.SpanKindBlockComment {
		t.Fatalf("first span: %+v %q", spans[0], spans[0].Text(text))
	}
	if spans[1].Text(text) != " code " || spans[1].Kind != model.SpanKindCode {
		t.Fatalf("middle span: %+v %q", spans[1], spans[1].Text(text))
	}
	if spans[2].Text(text) != "-- rest" || spans[2].Kind != model.SpanKindLineComment {
		t.Fatalf("last span: %+v %q", spans[2], spans[2].Text(text))
	}
}

func TestScanNestableCustomRuleSingleSpan(t *testing.T) {
	rule := lang.Rule{
		ID:          "longbracket",
		BlockDelims: []lang.Delim{{Open: "--[[", Close: "]]"}},
		Nestable:    true,
	}
	text := "--[[ outer --[[ inner ]] still ]]"
	spans, err := Scan(rule, text)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(spans) != 1 || spans[0].Kind != model.SpanKindBlockComment || spans[0].Text(text) != text {
		t.Fatalf("expected one span over the whole text, got %v", spans)
	}
}

func TestScanRoundTripAcrossLanguages(t *testing.T) {
	samples := map[string]string{
		"python": "def f():\n    return 1  # done\n",
		"c":      "int main(void) {\n  /* body */ return 0; // exit\n}\n",
		"html":   "<p>hi</p><!-- note -->\n",
		"lua":    "print(1) --[[ x ]] -- y\n",
		"ruby":   "=begin\nhead\n=end\nputs 1 # t\n",
		"go":     "s := `// raw`\n// real\n",
	}
	for id, text := range samples {
		spans, err := Scan(mustRule(t, id), text)
		if err != nil {
			t.Fatalf("%s: scan: %v", id, err)
		}
		if joinSpans(t, text, spans) != text {
			t.Fatalf("%s: spans do not reproduce the input", id)
		}
	}
}
