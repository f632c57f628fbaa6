package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/phyten/decomment/internal/config"
	"github.com/phyten/decomment/internal/util"
)

// settings are the fully resolved options for one invocation:
// defaults, then config file, then environment, then flags.
type settings struct {
	Scan   config.ScanSettings
	Output config.OutputSettings
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	var s settings

	explicit, _ := cmd.Root().PersistentFlags().GetString("config")
	if explicit == "" {
		explicit = os.Getenv("DECOMMENT_CONFIG")
	}
	path, _, err := config.Find(".", explicit, os.Getenv("XDG_CONFIG_HOME"), "")
	if err != nil {
		return s, err
	}

	var layers []config.Config
	if path != "" {
		fileLayer, err := config.Load(path)
		if err != nil {
			return s, fmt.Errorf("load config %s: %w", path, err)
		}
		layers = append(layers, fileLayer)
	}
	envLayer, err := config.FromEnv(os.Getenv)
	if err != nil {
		return s, err
	}
	layers = append(layers, envLayer)

	scanLayers := make([]config.ScanConfig, 0, len(layers))
	outLayers := make([]config.OutputConfig, 0, len(layers))
	for _, l := range layers {
		scanLayers = append(scanLayers, l.Scan)
		outLayers = append(outLayers, l.Output)
	}
	s.Scan = config.MergeScan(config.DefaultScanSettings(), scanLayers...)
	s.Output = config.MergeOutput(config.DefaultOutputSettings(), outLayers...)

	if err := applyFlags(cmd, &s); err != nil {
		return s, err
	}

	s.Scan, err = config.NormalizeScan(s.Scan)
	if err != nil {
		return s, err
	}
	s.Output, err = config.NormalizeOutput(s.Output)
	if err != nil {
		return s, err
	}
	return s, nil
}

// applyFlags overlays changed command-line flags as the last layer.
// Flags a command does not define are skipped.
func applyFlags(cmd *cobra.Command, s *settings) error {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		s.Scan.Lang, _ = flags.GetString("lang")
	}
	if flags.Changed("exclude") {
		s.Scan.Excludes, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("include-code") {
		s.Scan.IncludeCode, _ = flags.GetBool("include-code")
	}
	if flags.Changed("lenient") {
		s.Scan.Lenient, _ = flags.GetBool("lenient")
	}
	if flags.Changed("max-file-bytes") {
		s.Scan.MaxFileBytes, _ = flags.GetInt("max-file-bytes")
	}
	if flags.Changed("jobs") {
		s.Scan.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("output") {
		s.Output.Format, _ = flags.GetString("output")
	}
	if flags.Changed("truncate") {
		s.Output.Truncate, _ = flags.GetInt("truncate")
	}

	root := cmd.Root().PersistentFlags()
	if root.Changed("rules") {
		s.Scan.RuleFiles, _ = root.GetStringSlice("rules")
	}
	if root.Changed("color") {
		s.Output.Color, _ = root.GetString("color")
	}
	return nil
}

// setupColor applies the resolved color mode to the global color state.
func setupColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func progressEnabled(cmd *cobra.Command) bool {
	root := cmd.Root().PersistentFlags()
	force, _ := root.GetBool("progress")
	no, _ := root.GetBool("no-progress")
	return util.ShouldShowProgress(force, no)
}

// stdinRequested reports whether the invocation reads from stdin: an
// explicit "-" argument, or no paths while stdin is piped.
func stdinRequested(args []string) bool {
	if len(args) == 1 && args[0] == "-" {
		return true
	}
	return len(args) == 0 && !term.IsTerminal(int(os.Stdin.Fd()))
}
