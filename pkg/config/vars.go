package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "taxflor"

	// Columns lists the derived columns the extract stage understands.
	Columns = []string{
		"caste", "station", "annee_determination",
		"methode_capture", "plante",
	}
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/taxflor by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/taxflor/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/taxflor/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CorrectionsFilePath returns the full path to the corrections.yaml file.
// Returns ~/.config/taxflor/corrections.yaml by default.
func CorrectionsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "corrections.yaml")
}
