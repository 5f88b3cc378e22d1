// Package config provides configuration management for taxflor.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use TAXFLOR_ prefix with underscores for nesting:
//
//	TAXFLOR_IMPORT_SOURCE_DIR=~/geonature/exports
//	TAXFLOR_EXPORT_DIR=~/geonature/enriched
//	TAXFLOR_LOG_LEVEL=info
package config

// Config represents the complete taxflor configuration.
type Config struct {
	// Import contains settings for locating and loading the source tables.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Extract contains settings for the field-extraction stage.
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`

	// Export contains settings for writing the enriched table.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ImportConfig describes where the source tables live and how their
// files are named. When several files match a pattern, the newest one
// by modification time is selected.
type ImportConfig struct {
	// SourceDir is the directory holding the observation export and the
	// reference taxonomy file.
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`

	// ObsPattern is the glob pattern matching observation export files.
	ObsPattern string `mapstructure:"obs_pattern" yaml:"obs_pattern"`

	// TaxrefPattern is the glob pattern matching reference taxonomy files.
	TaxrefPattern string `mapstructure:"taxref_pattern" yaml:"taxref_pattern"`
}

// ExtractConfig describes which columns to derive from the embedded
// fields blob and the minimal accepted taxonomic precision.
type ExtractConfig struct {
	// Columns is the set of derived columns to compute. Valid values:
	// "caste", "station", "annee_determination", "methode_capture",
	// "plante". The "plante" column expands into plante_sp, plante_genre,
	// plante_famille and plante_cd_ref.
	// Runtime-only field - not in ToOptions().
	Columns []string `mapstructure:"columns" yaml:"columns"`

	// Precision is the minimal taxonomic rank a record's plant match
	// must reach to be kept: "family", "genus" or "species" ("sp" is
	// accepted as an alias). Empty means no filtering. Only meaningful
	// when the "plante" column is requested.
	// Runtime-only field - not in ToOptions().
	Precision string `mapstructure:"precision" yaml:"precision"`
}

// ExportConfig describes the output destination.
type ExportConfig struct {
	// Dir is the directory the enriched table is written to.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// File is the output file name.
	File string `mapstructure:"file" yaml:"file"`

	// Format is the output format, "csv" or "xlsx".
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Import: ImportConfig{
			SourceDir:     ".",
			ObsPattern:    "export_synthese*.csv",
			TaxrefPattern: "TAXREF*.csv",
		},
		Extract: ExtractConfig{
			Columns: []string{
				"caste", "station", "annee_determination",
				"methode_capture", "plante",
			},
		},
		Export: ExportConfig{
			Dir:    ".",
			File:   "export_enriched.csv",
			Format: "csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
