package iofs

import (
	_ "embed"
	"os"

	"github.com/apinae/taxflor/pkg/config"
	"github.com/apinae/taxflor/pkg/nameclean"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed corrections.yaml
var CorrectionsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureCorrectionsFile copies the embedded default correction table to
// the config directory unless the user already has one. Users extend
// the table by editing the copy; the pipeline only ever reads it.
func EnsureCorrectionsFile(homeDir string) error {
	correctionsPath := config.CorrectionsFilePath(homeDir)

	if _, err := os.Stat(correctionsPath); err == nil {
		return nil
	}

	if err := os.WriteFile(
		correctionsPath, []byte(CorrectionsYAML), 0644,
	); err != nil {
		return CopyFileError(correctionsPath, err)
	}

	return nil
}

// correctionsFile mirrors the corrections.yaml layout.
type correctionsFile struct {
	// Corrections rewrites raw plant mentions to canonical names.
	Corrections map[string]string `yaml:"corrections"`
	// ExcludedHybrids lists hybrid/cultivar names that must never be
	// genus-matched automatically.
	ExcludedHybrids []string `yaml:"excluded_hybrids"`
}

// LoadCorrections reads the user's corrections.yaml and returns the
// correction table plus the hybrid exclusion set.
func LoadCorrections(
	homeDir string,
) (nameclean.Corrections, map[string]struct{}, error) {
	path := config.CorrectionsFilePath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, CorrectionsReadError(path, err)
	}

	var cf correctionsFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, nil, CorrectionsParseError(path, err)
	}

	excluded := make(map[string]struct{}, len(cf.ExcludedHybrids))
	for _, name := range cf.ExcludedHybrids {
		excluded[name] = struct{}{}
	}

	return nameclean.Corrections(cf.Corrections), excluded, nil
}
