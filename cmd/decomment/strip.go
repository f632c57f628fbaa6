package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phyten/decomment/internal/engine"
)

var stripCmd = &cobra.Command{
	Use:   "strip [paths...]",
	Short: "Remove comments from source files",
	Long: `Strip removes every comment and writes the remaining code to
stdout. With -w the files are rewritten in place instead. Line-comment
newlines are kept, so line numbering survives. Reads stdin when the
only path is "-" or when input is piped and no path is given; stdin
requires --lang.`,
	RunE: runStrip,
}

func init() {
	addScanFlags(stripCmd)
	stripCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing")
}

func runStrip(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	write, _ := cmd.Flags().GetBool("write")
	opts := engine.Options{Op: engine.OpStrip, Paths: args, Write: write}
	s.Scan.ApplyToOptions(&opts)
	opts.Progress = progressEnabled(cmd)

	if write && stdinRequested(args) {
		return fmt.Errorf("-w cannot be combined with stdin input")
	}

	res, err := runScan(cmd, opts, s)
	if err != nil {
		return err
	}
	if !write {
		for _, item := range res.Items {
			if len(res.Items) > 1 {
				fmt.Printf("==> %s <==\n", item.File)
			}
			os.Stdout.WriteString(item.Stripped)
		}
	}
	reportItemErrors(res)
	return nil
}
