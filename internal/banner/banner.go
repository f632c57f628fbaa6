// Package banner renders ASCII comment banners: a framed caption built
// from a language's comment delimiters, ready to paste into source.
package banner

import (
	"fmt"
	"strings"

	"github.com/phyten/decomment/internal/lang"
	"github.com/phyten/decomment/internal/textutil"
)

// Options shape the banner frame.
type Options struct {
	Width  int    // total width in display columns (default 80)
	Height int    // total lines including borders (min 3, default 5)
	HAlign string // left|center|right (default center)
	VAlign string // top|center|bottom (default center)
	Filler string // cycled along the top and bottom border (default "-")
}

// Build renders text inside a comment frame for rule. Line-comment
// languages repeat the marker on both edges; block-comment languages
// frame with the open and close delimiters.
func Build(rule lang.Rule, text string, opts Options) (string, error) {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 5
	}
	if opts.Height < 3 {
		opts.Height = 3
	}
	if opts.Filler == "" {
		opts.Filler = "-"
	}

	start, end := frameDelims(rule)
	usable := opts.Width - textutil.VisibleWidth(start) - textutil.VisibleWidth(end) - 2
	if usable < 1 {
		return "", fmt.Errorf("width %d leaves no room between %q and %q", opts.Width, start, end)
	}

	var inner string
	switch opts.HAlign {
	case "", "center":
		inner = textutil.Center(text, usable)
	case "left":
		inner = textutil.PadRight(text, usable)
	case "right":
		inner = textutil.PadLeft(text, usable)
	default:
		return "", fmt.Errorf("invalid horizontal alignment: %s", opts.HAlign)
	}
	if textutil.VisibleWidth(inner) > usable {
		inner = textutil.TruncateByWidth(inner, usable, "…")
		inner = textutil.PadRight(inner, usable)
	}

	border := start + " " + repeatPattern(opts.Filler, usable) + " " + end
	caption := start + " " + inner + " " + end
	blank := start + " " + strings.Repeat(" ", usable) + " " + end

	padTotal := opts.Height - 3
	var padTop int
	switch opts.VAlign {
	case "", "center":
		padTop = padTotal / 2
	case "top":
		padTop = 0
	case "bottom":
		padTop = padTotal
	default:
		return "", fmt.Errorf("invalid vertical alignment: %s", opts.VAlign)
	}

	lines := make([]string, 0, opts.Height)
	lines = append(lines, border)
	for i := 0; i < padTop; i++ {
		lines = append(lines, blank)
	}
	lines = append(lines, caption)
	for i := 0; i < padTotal-padTop; i++ {
		lines = append(lines, blank)
	}
	lines = append(lines, border)
	return strings.Join(lines, "\n"), nil
}

func frameDelims(rule lang.Rule) (string, string) {
	if rule.HasLine() {
		m := strings.TrimSpace(rule.LineMarkers[0].Text)
		return m, m
	}
	d := rule.BlockDelims[0]
	return d.Open, d.Close
}

func repeatPattern(pattern string, width int) string {
	var b strings.Builder
	for textutil.VisibleWidth(b.String()) < width {
		b.WriteString(pattern)
	}
	return textutil.TruncateByWidth(b.String(), width, "")
}
