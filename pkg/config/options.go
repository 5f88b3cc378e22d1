package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptImportSourceDir sets the directory holding the source tables.
func OptImportSourceDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Import Source Directory", s) {
			c.Import.SourceDir = s
		}
	}
}

// OptImportObsPattern sets the glob pattern for observation export files.
func OptImportObsPattern(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Observations Pattern", s) {
			c.Import.ObsPattern = s
		}
	}
}

// OptImportTaxrefPattern sets the glob pattern for reference taxonomy files.
func OptImportTaxrefPattern(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy Pattern", s) {
			c.Import.TaxrefPattern = s
		}
	}
}

// OptExtractColumns sets the derived columns to compute.
// Unknown column names are rejected with a warning.
// Runtime-only field - not in ToOptions().
func OptExtractColumns(cols []string) Option {
	var clean []string
	for _, col := range cols {
		col = strings.TrimSpace(strings.ToLower(col))
		if isValidColumn(col) {
			clean = append(clean, col)
		}
	}
	return func(c *Config) {
		if len(clean) > 0 {
			c.Extract.Columns = clean
		}
	}
}

// OptExtractPrecision sets the minimal taxonomic precision filter.
// Valid values: "family", "genus", "species"; "sp" is accepted as an
// alias for "species".
// Runtime-only field - not in ToOptions().
func OptExtractPrecision(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	if s == "sp" {
		s = "species"
	}
	return func(c *Config) {
		if isValidEnum("Extract.Precision", s) {
			c.Extract.Precision = s
		}
	}
}

// OptExportDir sets the output directory.
func OptExportDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Directory", s) {
			c.Export.Dir = s
		}
	}
}

// OptExportFile sets the output file name.
func OptExportFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export File", s) {
			c.Export.File = s
		}
	}
}

// OptExportFormat sets the output format.
// Valid values: "csv", "xlsx".
func OptExportFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Export.Format", s) {
			c.Export.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
