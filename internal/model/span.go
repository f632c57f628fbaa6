package model

// SpanKind classifies a region of scanned source text.
type SpanKind string

const (
	SpanKindCode         SpanKind = "code"
	SpanKindLineComment  SpanKind = "line_comment"
	SpanKindBlockComment SpanKind = "block_comment"
)

// Comment reports whether the span is a line or block comment.
func (k SpanKind) Comment() bool {
	return k == SpanKindLineComment || k == SpanKindBlockComment
}

// Span is one contiguous region of the input. Offsets are byte offsets
// into the scanned text; Start is inclusive, End exclusive. Line and
// column are 1-based and refer to the span start.
type Span struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Line  int      `json:"line"`
	Col   int      `json:"col"`
	Kind  SpanKind `json:"kind"`
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Text slices the original input down to this span.
func (s Span) Text(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}
