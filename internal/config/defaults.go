package config

import "time"

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog.file":        "CHANGELOG.md",
		"changelog.header":      "default",
		"notifications.timeout": 10 * time.Second,
		"log_level":             "info",
	}
}
