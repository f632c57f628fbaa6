package scan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phyten/decomment/internal/lang"
	"github.com/phyten/decomment/internal/model"
)

// UnterminatedBlockError reports a block comment whose close sequence
// never appears before end of input. Scan still returns the full span
// list (the tail is classified as a block comment), so callers may
// either surface the error or accept the lenient reading.
type UnterminatedBlockError struct {
	Open   string
	Offset int
	Line   int
	Col    int
}

func (e *UnterminatedBlockError) Error() string {
	return fmt.Sprintf("unterminated block comment: %q opened at %d:%d never closed", e.Open, e.Line, e.Col)
}

type scanner struct {
	rule        lang.Rule
	text        string
	lineOffsets []int
	spans       []model.Span
}

// Scan splits text into code and comment spans according to rule. The
// spans are contiguous, non-overlapping, and concatenate back to text.
func Scan(rule lang.Rule, text string) ([]model.Span, error) {
	sc := &scanner{
		rule:        rule,
		text:        text,
		lineOffsets: computeLineOffsets(text),
	}
	return sc.run()
}

// Strip returns text with every comment removed. Line comments keep
// their trailing newline (it belongs to the following code span), so
// line numbering survives a strip.
func Strip(rule lang.Rule, text string) (string, error) {
	spans, err := Scan(rule, text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range spans {
		if s.Kind == model.SpanKindCode {
			b.WriteString(s.Text(text))
		}
	}
	return b.String(), nil
}

// Comments returns only the comment spans of text.
func Comments(rule lang.Rule, text string) ([]model.Span, error) {
	spans, err := Scan(rule, text)
	if err != nil {
		return nil, err
	}
	out := spans[:0:0]
	for _, s := range spans {
		if s.Kind.Comment() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (sc *scanner) run() ([]model.Span, error) {
	text := sc.text
	codeStart := 0
	i := 0
	for i < len(text) {
		if marker, delim, ok := sc.openerAt(i); ok {
			sc.emit(codeStart, i, model.SpanKindCode)
			if delim != nil {
				end, closed := sc.blockEnd(i+len(delim.Open), *delim)
				sc.emit(i, end, model.SpanKindBlockComment)
				if !closed {
					line, col := sc.lineCol(i)
					return sc.spans, &UnterminatedBlockError{Open: delim.Open, Offset: i, Line: line, Col: col}
				}
				codeStart, i = end, end
				continue
			}
			end := sc.lineEnd(i + len(marker.Text))
			sc.emit(i, end, model.SpanKindLineComment)
			codeStart, i = end, end
			continue
		}
		if skip := sc.stringAt(i); skip > 0 {
			i += skip
			continue
		}
		i++
	}
	sc.emit(codeStart, len(text), model.SpanKindCode)
	return sc.spans, nil
}

// openerAt returns the comment opener matching at offset i, if any.
// When several candidates start at i the longest delimiter wins; ties
// go to the block form.
func (sc *scanner) openerAt(i int) (*lang.Marker, *lang.Delim, bool) {
	var (
		bestMarker *lang.Marker
		bestDelim  *lang.Delim
		bestLen    int
	)
	for idx := range sc.rule.LineMarkers {
		m := &sc.rule.LineMarkers[idx]
		if !strings.HasPrefix(sc.text[i:], m.Text) || !sc.positionOK(m.At, i) {
			continue
		}
		if m.Word && !sc.wordBoundary(i+len(m.Text)) {
			continue
		}
		if len(m.Text) > bestLen {
			bestMarker, bestDelim, bestLen = m, nil, len(m.Text)
		}
	}
	for idx := range sc.rule.BlockDelims {
		d := &sc.rule.BlockDelims[idx]
		if !strings.HasPrefix(sc.text[i:], d.Open) || !sc.positionOK(d.At, i) {
			continue
		}
		if len(d.Open) >= bestLen && len(d.Open) > 0 {
			if len(d.Open) > bestLen || bestDelim == nil {
				bestMarker, bestDelim, bestLen = nil, d, len(d.Open)
			}
		}
	}
	if bestLen == 0 {
		return nil, nil, false
	}
	return bestMarker, bestDelim, true
}

// blockEnd scans from just past the open sequence and returns the
// offset one past the close sequence, tracking depth when the rule
// nests. When no close is found it returns len(text) and false.
func (sc *scanner) blockEnd(from int, d lang.Delim) (int, bool) {
	depth := 1
	k := from
	for k < len(sc.text) {
		if sc.rule.Nests(d) && strings.HasPrefix(sc.text[k:], d.Open) && sc.positionOK(d.At, k) && d.Open != d.Close {
			depth++
			k += len(d.Open)
			continue
		}
		if strings.HasPrefix(sc.text[k:], d.Close) && sc.positionOK(d.At, k) {
			depth--
			k += len(d.Close)
			if depth == 0 {
				return k, true
			}
			continue
		}
		k++
	}
	return len(sc.text), false
}

// lineEnd returns the offset of the next newline at or after from, so a
// line comment never swallows its line break. A CR preceding the LF is
// left out of the comment as well.
func (sc *scanner) lineEnd(from int) int {
	nl := strings.IndexByte(sc.text[from:], '\n')
	if nl < 0 {
		return len(sc.text)
	}
	end := from + nl
	if end > from && sc.text[end-1] == '\r' {
		end--
	}
	return end
}

// stringAt returns the number of bytes to skip when a string literal
// starts at i, or 0. Markers inside the literal are not comment
// openers. Backslash escapes are honoured except after a backtick
// delimiter, which introduces raw text.
func (sc *scanner) stringAt(i int) int {
	for _, delim := range sc.rule.StringDelims {
		if delim == "" || !strings.HasPrefix(sc.text[i:], delim) {
			continue
		}
		raw := delim == "`"
		k := i + len(delim)
		for k < len(sc.text) {
			if !raw && sc.text[k] == '\\' {
				k += 2
				continue
			}
			if strings.HasPrefix(sc.text[k:], delim) {
				return k + len(delim) - i
			}
			k++
		}
		return len(sc.text) - i
	}
	return 0
}

// wordBoundary reports whether offset sits at whitespace or end of
// input, so word markers like batch's REM do not match inside REMARK.
func (sc *scanner) wordBoundary(offset int) bool {
	if offset >= len(sc.text) {
		return true
	}
	switch sc.text[offset] {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (sc *scanner) positionOK(at lang.Position, offset int) bool {
	switch at {
	case lang.PositionAny:
		return true
	case lang.PositionCol1:
		return sc.lineStart(offset) == offset
	case lang.PositionFirstNonBlank:
		for k := sc.lineStart(offset); k < offset; k++ {
			if sc.text[k] != ' ' && sc.text[k] != '\t' {
				return false
			}
		}
		return true
	}
	return false
}

func (sc *scanner) lineStart(offset int) int {
	idx := sort.Search(len(sc.lineOffsets), func(i int) bool { return sc.lineOffsets[i] > offset })
	if idx == 0 {
		return 0
	}
	return sc.lineOffsets[idx-1]
}

func (sc *scanner) lineCol(offset int) (line, col int) {
	idx := sort.Search(len(sc.lineOffsets), func(i int) bool { return sc.lineOffsets[i] > offset })
	if idx == 0 {
		return 1, offset + 1
	}
	return idx, offset - sc.lineOffsets[idx-1] + 1
}

func (sc *scanner) emit(start, end int, kind model.SpanKind) {
	if end <= start {
		return
	}
	line, col := sc.lineCol(start)
	sc.spans = append(sc.spans, model.Span{Start: start, End: end, Line: line, Col: col, Kind: kind})
}

func computeLineOffsets(text string) []int {
	offsets := make([]int, 0, strings.Count(text, "\n")+1)
	offsets = append(offsets, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
