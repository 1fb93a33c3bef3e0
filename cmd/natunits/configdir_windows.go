//go:build windows

package main

import (
	"os"
	"path/filepath"
)

// defaultConfigDir returns the default config directory for Windows.
// Returns %APPDATA%\natunits\
func defaultConfigDir() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		appData = filepath.Join(home, "AppData", "Roaming")
	}
	return filepath.Join(appData, appName), nil
}
