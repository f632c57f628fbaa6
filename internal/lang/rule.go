package lang

import (
	"fmt"
	"strings"
)

// Position constrains where a marker may start on its line.
type Position string

const (
	// PositionAny places no constraint on the marker.
	PositionAny Position = ""
	// PositionCol1 requires the marker to start in column 1.
	PositionCol1 Position = "col1"
	// PositionFirstNonBlank requires the marker to be the first
	// non-whitespace text on its line.
	PositionFirstNonBlank Position = "first-non-blank"
)

func (p Position) valid() bool {
	switch p {
	case PositionAny, PositionCol1, PositionFirstNonBlank:
		return true
	}
	return false
}

// Marker is a line-comment opener. At qualifies where on the line the
// marker is recognised; most markers use PositionAny. Word requires the
// marker to be followed by whitespace or end of line, so batch's REM
// matches a bare "REM" line but not "REMARK".
type Marker struct {
	Text string   `yaml:"text" toml:"text" json:"text"`
	At   Position `yaml:"at,omitempty" toml:"at,omitempty" json:"at,omitempty"`
	Word bool     `yaml:"word,omitempty" toml:"word,omitempty" json:"word,omitempty"`
}

// Delim is a block-comment delimiter pair. At applies to both the open
// and the close sequence (Ruby's =begin/=end must sit in column 1).
// Nestable marks this pair alone as self-nesting, for languages where
// only one of several block forms nests (D's /+ +/ but not /* */).
type Delim struct {
	Open     string   `yaml:"open" toml:"open" json:"open"`
	Close    string   `yaml:"close" toml:"close" json:"close"`
	At       Position `yaml:"at,omitempty" toml:"at,omitempty" json:"at,omitempty"`
	Nestable bool     `yaml:"nestable,omitempty" toml:"nestable,omitempty" json:"nestable,omitempty"`
}

// Rule describes the comment convention of one language. Values are
// immutable once a Registry has accepted them.
type Rule struct {
	ID           string   `yaml:"id" toml:"id" json:"id"`
	Name         string   `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	LineMarkers  []Marker `yaml:"line_markers,omitempty" toml:"line_markers,omitempty" json:"line_markers,omitempty"`
	BlockDelims  []Delim  `yaml:"block_delims,omitempty" toml:"block_delims,omitempty" json:"block_delims,omitempty"`
	Nestable     bool     `yaml:"nestable,omitempty" toml:"nestable,omitempty" json:"nestable,omitempty"`
	StringDelims []string `yaml:"string_delims,omitempty" toml:"string_delims,omitempty" json:"string_delims,omitempty"`
	Caveats      string   `yaml:"caveats,omitempty" toml:"caveats,omitempty" json:"caveats,omitempty"`
}

// HasLine reports whether the rule supports line comments.
func (r Rule) HasLine() bool { return len(r.LineMarkers) > 0 }

// HasBlock reports whether the rule supports block comments.
func (r Rule) HasBlock() bool { return len(r.BlockDelims) > 0 }

// Nests reports whether the pair d nests inside itself under this rule.
// The rule-level Nestable flag covers every pair; Delim.Nestable marks
// a single pair.
func (r Rule) Nests(d Delim) bool { return r.Nestable || d.Nestable }

// NestsAny reports whether any block pair of the rule nests.
func (r Rule) NestsAny() bool {
	if r.Nestable {
		return true
	}
	for _, d := range r.BlockDelims {
		if d.Nestable {
			return true
		}
	}
	return false
}

func (r Rule) validate() error {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return &ValidationError{Reason: "rule without id"}
	}
	if id != strings.ToLower(id) {
		return &ValidationError{ID: r.ID, Reason: "id must be lowercase"}
	}
	if !r.HasLine() && !r.HasBlock() {
		return &ValidationError{ID: r.ID, Reason: "neither line markers nor block delimiters"}
	}
	for _, m := range r.LineMarkers {
		if m.Text == "" {
			return &ValidationError{ID: r.ID, Reason: "empty line marker"}
		}
		if !m.At.valid() {
			return &ValidationError{ID: r.ID, Reason: fmt.Sprintf("invalid marker position %q", m.At)}
		}
	}
	for _, d := range r.BlockDelims {
		if d.Open == "" || d.Close == "" {
			return &ValidationError{ID: r.ID, Reason: "block delimiter with empty open or close"}
		}
		if !d.At.valid() {
			return &ValidationError{ID: r.ID, Reason: fmt.Sprintf("invalid delimiter position %q", d.At)}
		}
	}
	if r.Nestable && !r.HasBlock() {
		return &ValidationError{ID: r.ID, Reason: "nestable without block delimiters"}
	}
	return nil
}

// ValidationError reports a malformed rule at registry load time.
type ValidationError struct {
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return "invalid rule: " + e.Reason
	}
	return fmt.Sprintf("invalid rule %q: %s", e.ID, e.Reason)
}

// NotFoundError reports an unknown language identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown language: %q", e.ID)
}
