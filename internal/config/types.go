package config

import (
	"github.com/phyten/decomment/internal/engine"
)

// ScanConfig mirrors the [scan] section of a config file. Pointer
// fields distinguish "absent" from zero values so layers merge cleanly.
type ScanConfig struct {
	Lang         *string   `yaml:"lang" toml:"lang" json:"lang"`
	RuleFiles    *[]string `yaml:"rule_files" toml:"rule_files" json:"rule_files"`
	Excludes     *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	IncludeCode  *bool     `yaml:"include_code" toml:"include_code" json:"include_code"`
	Lenient      *bool     `yaml:"lenient" toml:"lenient" json:"lenient"`
	MaxFileBytes *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Jobs         *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
}

// OutputConfig mirrors the [output] section.
type OutputConfig struct {
	Format   *string `yaml:"format" toml:"format" json:"format"`
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Truncate *int    `yaml:"truncate" toml:"truncate" json:"truncate"`
}

// Config is one configuration layer (file or environment).
type Config struct {
	Scan   ScanConfig   `yaml:"scan" toml:"scan" json:"scan"`
	Output OutputConfig `yaml:"output" toml:"output" json:"output"`
}

// ScanSettings are the resolved scan values after merging layers.
type ScanSettings struct {
	Lang         string
	RuleFiles    []string
	Excludes     []string
	IncludeCode  bool
	Lenient      bool
	MaxFileBytes int
	Jobs         int
}

// OutputSettings are the resolved output values.
type OutputSettings struct {
	Format   string
	Color    string
	Truncate int
}

// DefaultScanSettings returns the baseline before any layer applies.
func DefaultScanSettings() ScanSettings {
	return ScanSettings{
		MaxFileBytes: 4 << 20,
	}
}

// DefaultOutputSettings returns the baseline output values.
func DefaultOutputSettings() OutputSettings {
	return OutputSettings{Format: "table", Color: "auto", Truncate: 96}
}

// ApplyToOptions copies resolved settings onto engine options.
func (s ScanSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Lang = s.Lang
	opts.RuleFiles = cloneStrings(s.RuleFiles)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.IncludeCode = s.IncludeCode
	opts.Lenient = s.Lenient
	opts.MaxFileBytes = s.MaxFileBytes
	opts.Jobs = s.Jobs
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
