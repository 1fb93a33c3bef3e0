//go:build darwin

package main

import (
	"os"
	"path/filepath"
)

// defaultConfigDir returns the default config directory for macOS.
// Returns ~/Library/Application Support/natunits/
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support", appName), nil
}
