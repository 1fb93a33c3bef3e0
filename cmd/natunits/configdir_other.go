//go:build !linux && !darwin && !windows

package main

import (
	"os"
	"path/filepath"
)

// defaultConfigDir returns ~/.config/natunits/ on other platforms.
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
