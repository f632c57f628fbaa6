package config

import (
	"fmt"
	"strings"
)

func CanonicalizeFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		return "table", nil
	}
	switch format {
	case "table", "tsv", "csv", "ndjson", "json", "markdown":
		return format, nil
	case "md":
		return "markdown", nil
	default:
		return "", fmt.Errorf("invalid output format: %s", raw)
	}
}

func CanonicalizeColor(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	if mode == "" {
		return "auto", nil
	}
	switch mode {
	case "auto", "always", "never":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode: %s", raw)
	}
}

func NormalizeOutput(values OutputSettings) (OutputSettings, error) {
	var err error
	values.Format, err = CanonicalizeFormat(values.Format)
	if err != nil {
		return values, err
	}
	values.Color, err = CanonicalizeColor(values.Color)
	if err != nil {
		return values, err
	}
	if values.Truncate < 0 {
		return values, fmt.Errorf("truncate must not be negative")
	}
	return values, nil
}

func NormalizeScan(values ScanSettings) (ScanSettings, error) {
	values.Lang = strings.TrimSpace(values.Lang)
	if values.MaxFileBytes < 0 {
		return values, fmt.Errorf("max_file_bytes must not be negative")
	}
	if values.Jobs < 0 {
		return values, fmt.Errorf("jobs must not be negative")
	}
	return values, nil
}
