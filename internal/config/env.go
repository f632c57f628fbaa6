package config

import (
	"errors"
	"strings"
)

// FromEnv builds a config layer from DECOMMENT_* variables. getenv is
// injectable for tests.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := SplitList(raw)
		*target = &list
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := expectInt(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Scan.Lang, "DECOMMENT_LANG")
	setList(&cfg.Scan.RuleFiles, "DECOMMENT_RULE_FILES")
	setList(&cfg.Scan.Excludes, "DECOMMENT_EXCLUDE")
	setBool(&cfg.Scan.IncludeCode, "DECOMMENT_INCLUDE_CODE")
	setBool(&cfg.Scan.Lenient, "DECOMMENT_LENIENT")
	setInt(&cfg.Scan.MaxFileBytes, "DECOMMENT_MAX_FILE_BYTES")
	setInt(&cfg.Scan.Jobs, "DECOMMENT_JOBS")

	setString(&cfg.Output.Format, "DECOMMENT_OUTPUT")
	setString(&cfg.Output.Color, "DECOMMENT_COLOR")
	setInt(&cfg.Output.Truncate, "DECOMMENT_TRUNCATE")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
