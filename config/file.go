package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilePath returns the path of the config file: $NEWSPULSE_CONFIG if
// set, otherwise ~/.newspulse/config.yaml.
func ConfigFilePath() (string, error) {
	if path := os.Getenv("NEWSPULSE_CONFIG"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".newspulse", "config.yaml"), nil
}

// LoadConfigFile merges the YAML file at path into cfg. Keys absent from the
// file keep their current value. A missing file is not an error; a file that
// exists but cannot be parsed is.
func LoadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
