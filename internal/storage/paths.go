// Package storage keeps user preferences and match statistics in BadgerDB.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chezz"

// GetDataDir returns the application data directory, creating it if needed.
// A non-empty override (CHEZZ_DATA_DIR or -data-dir) is used as is;
// otherwise the platform location under dataHome is used:
// - macOS: ~/Library/Application Support/chezz/
// - Linux: $XDG_DATA_HOME/chezz/ or ~/.local/share/chezz/
// - Windows: %APPDATA%/chezz/
func GetDataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		home, err := dataHome(runtime.GOOS)
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, appName)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// dataHome returns the per-user base directory for application data on goos.
// Environment overrides win over the home-relative defaults.
func dataHome(goos string) (string, error) {
	envVar, rel := "XDG_DATA_HOME", []string{".local", "share"}
	switch goos {
	case "darwin":
		envVar, rel = "", []string{"Library", "Application Support"}
	case "windows":
		envVar, rel = "APPDATA", []string{"AppData", "Roaming"}
	}

	if envVar != "" {
		if dir := os.Getenv(envVar); dir != "" {
			return dir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, rel...)...), nil
}

// GetDatabaseDir returns the BadgerDB directory inside the data directory
// chosen by GetDataDir(override).
func GetDatabaseDir(override string) (string, error) {
	dataDir, err := GetDataDir(override)
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
