package engine

// Op selects what Run does with each file.
type Op string

const (
	// OpSpans classifies every file into code/comment spans.
	OpSpans Op = "spans"
	// OpStrip removes comments; output goes to Item.Stripped, or back
	// to the file when Options.Write is set.
	OpStrip Op = "strip"
)

// Options control a Run over one or more paths.
type Options struct {
	Op           Op
	Paths        []string // files or directories; default "."
	Lang         string   // force a language id; "" auto-detects per file
	RuleFiles    []string // extra rule tables layered over the builtin set
	IncludeCode  bool     // include code spans in span listings
	Lenient      bool     // tolerate unterminated block comments
	Write        bool     // strip in place instead of collecting output
	MaxFileBytes int      // skip files larger than this (0 = no limit)
	Excludes     []string // base-name globs to skip
	Jobs         int
	Progress     bool
}

// SpanItem is one classified span plus its text slice.
type SpanItem struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
	Kind  string `json:"kind"`
	Text  string `json:"text"`
}

// Item is the per-file result.
type Item struct {
	File         string     `json:"file"`
	Lang         string     `json:"lang"`
	Spans        []SpanItem `json:"spans,omitempty"`
	CommentLines int        `json:"comment_lines"`
	CommentBytes int        `json:"comment_bytes"`
	TotalLines   int        `json:"total_lines"`
	Stripped     string     `json:"stripped,omitempty"`
}

// ItemError records a per-file failure without aborting the run.
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Result is the aggregate output of a Run.
type Result struct {
	Items      []Item      `json:"items"`
	Total      int         `json:"total"`
	Skipped    int         `json:"skipped"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []ItemError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}
