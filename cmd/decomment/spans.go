package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phyten/decomment/internal/config"
	"github.com/phyten/decomment/internal/engine"
	"github.com/phyten/decomment/internal/output"
)

var spansCmd = &cobra.Command{
	Use:   "spans [paths...]",
	Short: "Classify source into code and comment spans",
	Long: `Spans scans the given files or directories (default: the current
directory) and lists every comment span with its location. Reads stdin
when the only path is "-" or when input is piped and no path is given;
stdin requires --lang.`,
	RunE: runSpans,
}

func init() {
	addScanFlags(spansCmd)
	spansCmd.Flags().Bool("include-code", false, "list code spans too")
	spansCmd.Flags().StringP("output", "o", "", "output format (table|tsv|csv|ndjson|json|markdown)")
	spansCmd.Flags().Int("truncate", 0, "truncate span text to N display columns (0=default)")
}

// addScanFlags registers the flags shared by the scanning commands.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("lang", "l", "", "force a language id instead of detecting per file")
	cmd.Flags().StringSlice("exclude", nil, "base-name globs to skip")
	cmd.Flags().Bool("lenient", false, "tolerate unterminated block comments")
	cmd.Flags().Int("max-file-bytes", 0, "skip files larger than N bytes")
	cmd.Flags().IntP("jobs", "j", 0, "max parallel workers (0=auto)")
}

func runSpans(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	setupColor(s.Output.Color)

	opts := engine.Options{Op: engine.OpSpans, Paths: args}
	s.Scan.ApplyToOptions(&opts)
	opts.Progress = progressEnabled(cmd)

	res, err := runScan(cmd, opts, s)
	if err != nil {
		return err
	}
	if err := renderSpans(os.Stdout, res, s.Output); err != nil {
		return err
	}
	reportItemErrors(res)
	return nil
}

// runScan dispatches between the tree walker and stdin.
func runScan(cmd *cobra.Command, opts engine.Options, s settings) (*engine.Result, error) {
	if stdinRequested(opts.Paths) {
		if s.Scan.Lang == "" {
			return nil, fmt.Errorf("reading from stdin requires --lang")
		}
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		opts.Progress = false
		item, err := engine.ScanText(opts, s.Scan.Lang, string(text))
		if err != nil {
			return nil, err
		}
		return &engine.Result{Items: []engine.Item{item}, Total: 1}, nil
	}
	return engine.Run(cmd.Context(), opts)
}

func renderSpans(w io.Writer, res *engine.Result, out config.OutputSettings) error {
	switch out.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	case "tsv":
		return output.WriteSpansTSV(w, res.Items, out.Truncate)
	case "csv":
		return output.WriteSpansCSV(w, res.Items)
	case "ndjson":
		return output.WriteSpansNDJSON(w, res.Items)
	case "markdown":
		return output.WriteSpansMarkdown(w, res.Items, out.Truncate)
	default:
		return output.WriteSpansTable(w, res.Items, out.Truncate)
	}
}

// reportItemErrors prints per-file failures to stderr; the run itself
// still succeeds, matching the aggregate-and-continue policy of the
// engine.
func reportItemErrors(res *engine.Result) {
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "decomment: %s: %s: %s\n", e.File, e.Stage, e.Message)
	}
}
