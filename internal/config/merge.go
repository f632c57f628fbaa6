package config

import "strings"

// MergeScan folds configuration layers over the base settings. Later
// layers win; a nil field leaves the current value untouched.
func MergeScan(base ScanSettings, layers ...ScanConfig) ScanSettings {
	out := base
	for _, layer := range layers {
		out.Lang = ResolveAndTrim(out.Lang, layer.Lang)
		out.RuleFiles = ResolveStrings(out.RuleFiles, layer.RuleFiles)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.IncludeCode = ResolveBool(out.IncludeCode, layer.IncludeCode)
		out.Lenient = ResolveBool(out.Lenient, layer.Lenient)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
	}
	return out
}

// MergeOutput folds output layers over the base settings and fills the
// format and color fallbacks when every layer left them blank.
func MergeOutput(base OutputSettings, layers ...OutputConfig) OutputSettings {
	out := base
	for _, layer := range layers {
		out.Format = ResolveAndTrim(out.Format, layer.Format)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Truncate = ResolveInt(out.Truncate, layer.Truncate)
	}
	if strings.TrimSpace(out.Format) == "" {
		out.Format = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
