package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/phyten/decomment/internal/engine"
	"github.com/phyten/decomment/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats [paths...]",
	Short: "Report per-file comment statistics",
	Long: `Stats scans the given files or directories and reports comment
line and byte counts per file, with the comment-to-total line ratio.`,
	RunE: runStats,
}

func init() {
	addScanFlags(statsCmd)
	statsCmd.Flags().StringP("output", "o", "", "output format (table|tsv|json)")
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	setupColor(s.Output.Color)

	opts := engine.Options{Op: engine.OpSpans, Paths: args}
	s.Scan.ApplyToOptions(&opts)
	// Stats only needs the counters, not the span listing.
	opts.IncludeCode = false
	opts.Progress = progressEnabled(cmd)

	res, err := runScan(cmd, opts, s)
	if err != nil {
		return err
	}
	for i := range res.Items {
		res.Items[i].Spans = nil
	}

	switch s.Output.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	case "tsv":
		if err := output.WriteStatsTSV(os.Stdout, res.Items); err != nil {
			return err
		}
	default:
		if err := output.WriteStatsTable(os.Stdout, res.Items); err != nil {
			return err
		}
	}
	reportItemErrors(res)
	return nil
}
