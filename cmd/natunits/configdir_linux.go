//go:build linux

package main

import (
	"os"
	"path/filepath"
)

// defaultConfigDir returns the default config directory for Linux.
// Uses $XDG_CONFIG_HOME/natunits/ if set, otherwise ~/.config/natunits/
func defaultConfigDir() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
