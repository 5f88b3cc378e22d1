package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Extract.Columns,
// Extract.Precision).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	s = c.Import.SourceDir
	if s != "" {
		res = append(res, OptImportSourceDir(s))
	}
	s = c.Import.ObsPattern
	if s != "" {
		res = append(res, OptImportObsPattern(s))
	}
	s = c.Import.TaxrefPattern
	if s != "" {
		res = append(res, OptImportTaxrefPattern(s))
	}

	s = c.Export.Dir
	if s != "" {
		res = append(res, OptExportDir(s))
	}
	s = c.Export.File
	if s != "" {
		res = append(res, OptExportFile(s))
	}
	s = c.Export.Format
	if s != "" {
		res = append(res, OptExportFormat(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidColumn(col string) bool {
	if slices.Contains(Columns, col) {
		return true
	}
	gn.Warn(
		"Unknown derived column '%s'. Valid columns are: %s. Ignoring...",
		col, strings.Join(Columns, ", "),
	)
	return false
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Extract.Precision": {"family": s, "genus": s, "species": s},
		"Export.Format":     {"csv": s, "xlsx": s},
		"Log.Level":         {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":        {"json": s, "text": s},
		"Log.Destination":   {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
