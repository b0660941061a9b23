// Package config provides hierarchical configuration management for changeloggen using koanf.
// Configuration is loaded with priority: environment variables (CHANGELOGGEN_*) > project config
// (changelog.toml, changelog.yaml or an explicit --config file) > user config
// (~/.config/changeloggen/config.yml) > defaults. Project files may be TOML, YAML or JSON.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/changeloggen/internal/notes"
	"github.com/ariel-frischer/changeloggen/internal/notify"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variable overrides. Nested keys
// use a double underscore: CHANGELOGGEN_NOTIFICATIONS__SLACK_WEBHOOK.
const EnvPrefix = "CHANGELOGGEN_"

// Configuration represents the changeloggen configuration
type Configuration struct {
	Project   ProjectConfig   `koanf:"project"`
	Changelog ChangelogConfig `koanf:"changelog"`

	// Types maps conventional commit kinds to changelog sections,
	// overriding the built-in table (feat -> Added, fix -> Fixed, ...).
	Types map[string]string `koanf:"types"`

	// Notifications configures release webhooks.
	Notifications notify.Config `koanf:"notifications"`

	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// ProjectConfig describes the project the changelog belongs to.
type ProjectConfig struct {
	Name string `koanf:"name"`
	// Repository is the web URL used for compare links,
	// e.g. https://github.com/acme/tool.
	Repository string `koanf:"repository" validate:"omitempty,url"`
}

// ChangelogConfig holds changelog file defaults.
type ChangelogConfig struct {
	File   string `koanf:"file" validate:"required"`
	Header string `koanf:"header" validate:"required"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides project config discovery (the --config flag).
	ProjectConfigPath string
	// Dir is searched for project config files (default: current directory).
	Dir string
	// SkipUserConfig ignores the user-level config file.
	SkipUserConfig bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUserConfig {
		if err := loadUserConfig(k); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads ~/.config/changeloggen/config.yml when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	if err := loadFile(k, path); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the explicit config path, which must exist, or
// the first project config file found in opts.Dir.
func loadProjectConfig(k *koanf.Koanf, opts LoadOptions) error {
	path := opts.ProjectConfigPath
	if path != "" {
		if !fileExists(path) {
			return fmt.Errorf("config file not found: %s", path)
		}
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		path = FindProjectConfig(dir)
		if path == "" {
			return nil
		}
	}

	if err := loadFile(k, path); err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	return nil
}

// loadFile loads a config file, choosing the parser by extension.
// YAML files are syntax-checked first so errors carry line numbers.
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := ValidateYAMLSyntax(path); err != nil {
			return err
		}
		parser = yaml.Parser()
	case ".toml":
		parser = TOML()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config extension %q for %s; use .toml, .yaml, .yml or .json",
			filepath.Ext(path), path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOGGEN_NOTIFICATIONS__SLACK_WEBHOOK -> notifications.slack_webhook
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadTypeMap reads a kind-to-section mapping from a .json, .toml, .yaml or
// .yml file with a top-level "types" table. An empty path yields an empty map.
func LoadTypeMap(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	var mapping struct {
		Types map[string]string `koanf:"types"`
	}
	if err := k.Unmarshal("", &mapping); err != nil {
		return nil, fmt.Errorf("invalid mapping file %s: %w", path, err)
	}
	if mapping.Types == nil {
		return map[string]string{}, nil
	}
	return mapping.Types, nil
}

// TypeMap merges the configured types with extra, which wins on conflicts.
func (c *Configuration) TypeMap(extra map[string]string) notes.TypeMap {
	merged := make(notes.TypeMap, len(c.Types)+len(extra))
	maps.Copy(merged, c.Types)
	maps.Copy(merged, extra)
	return merged
}
