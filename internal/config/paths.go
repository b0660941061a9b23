package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigNames are the project config files searched for, in order,
// when no explicit path is given.
var ProjectConfigNames = []string{"changelog.toml", "changelog.yaml", "changelog.yml"}

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/changeloggen/config.yml
// - macOS: ~/Library/Application Support/changeloggen/config.yml
// - Windows: %APPDATA%\changeloggen\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "changeloggen", "config.yml"), nil
}

// FindProjectConfig returns the first of ProjectConfigNames present in dir,
// or "" when none exists.
func FindProjectConfig(dir string) string {
	for _, name := range ProjectConfigNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
