package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the per-user config location.
//
// Note: this function does not create directories or files.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "opentriv", "config.yaml"), nil
}
