package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ariel-frischer/changeloggen/internal/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config at an empty temp dir so the developer's
// own config never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return t.TempDir()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadWithOptions(LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, "CHANGELOG.md", cfg.Changelog.File)
	assert.Equal(t, "default", cfg.Changelog.Header)
	assert.Equal(t, 10*time.Second, cfg.Notifications.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Types)
	assert.False(t, cfg.Notifications.Enabled())
}

func TestLoad_ProjectFormats(t *testing.T) {
	tests := map[string]struct {
		name    string
		content string
	}{
		"toml": {
			name: "changelog.toml",
			content: `
[project]
name = "tool"
repository = "https://github.com/acme/tool"

[changelog]
file = "docs/CHANGES.md"

[types]
feat = "Features"

[notifications]
slack_webhook = "https://hooks.slack.com/services/x"
timeout = "3s"
`,
		},
		"yaml": {
			name: "changelog.yaml",
			content: `
project:
  name: tool
  repository: https://github.com/acme/tool
changelog:
  file: docs/CHANGES.md
types:
  feat: Features
notifications:
  slack_webhook: https://hooks.slack.com/services/x
  timeout: 3s
`,
		},
		"yml": {
			name: "changelog.yml",
			content: `
project: {name: tool, repository: "https://github.com/acme/tool"}
changelog: {file: docs/CHANGES.md}
types: {feat: Features}
notifications: {slack_webhook: "https://hooks.slack.com/services/x", timeout: 3s}
`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, dir, tt.name, tt.content)

			cfg, err := LoadWithOptions(LoadOptions{Dir: dir})
			require.NoError(t, err)

			assert.Equal(t, "tool", cfg.Project.Name)
			assert.Equal(t, "https://github.com/acme/tool", cfg.Project.Repository)
			assert.Equal(t, "docs/CHANGES.md", cfg.Changelog.File)
			assert.Equal(t, "default", cfg.Changelog.Header, "unset keys keep defaults")
			assert.Equal(t, map[string]string{"feat": "Features"}, cfg.Types)
			assert.Equal(t, "https://hooks.slack.com/services/x", cfg.Notifications.SlackWebhook)
			assert.Equal(t, 3*time.Second, cfg.Notifications.Timeout)
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	writeFile(t, configHome, "changeloggen/config.yml", "changelog:\n  header: plain\n  file: USER.md\nlog_level: debug\n")

	dir := t.TempDir()
	writeFile(t, dir, "changelog.toml", "[changelog]\nfile = \"PROJECT.md\"\n")

	t.Run("project overrides user", func(t *testing.T) {
		cfg, err := LoadWithOptions(LoadOptions{Dir: dir})
		require.NoError(t, err)
		assert.Equal(t, "PROJECT.md", cfg.Changelog.File)
		assert.Equal(t, "plain", cfg.Changelog.Header)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("env overrides project", func(t *testing.T) {
		t.Setenv("CHANGELOGGEN_CHANGELOG__FILE", "ENV.md")
		t.Setenv("CHANGELOGGEN_LOG_LEVEL", "warn")
		t.Setenv("CHANGELOGGEN_TYPES__SEC", "Security")

		cfg, err := LoadWithOptions(LoadOptions{Dir: dir})
		require.NoError(t, err)
		assert.Equal(t, "ENV.md", cfg.Changelog.File)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "Security", cfg.Types["sec"])
	})

	t.Run("skip user config", func(t *testing.T) {
		cfg, err := LoadWithOptions(LoadOptions{Dir: dir, SkipUserConfig: true})
		require.NoError(t, err)
		assert.Equal(t, "default", cfg.Changelog.Header)
	})
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "changelog.toml", "[changelog]\nfile = \"DISCOVERED.md\"\n")
	explicit := writeFile(t, dir, "custom/settings.json", `{"changelog": {"file": "EXPLICIT.md"}}`)

	cfg, err := LoadWithOptions(LoadOptions{Dir: dir, ProjectConfigPath: explicit})
	require.NoError(t, err)
	assert.Equal(t, "EXPLICIT.md", cfg.Changelog.File)

	_, err = LoadWithOptions(LoadOptions{Dir: dir, ProjectConfigPath: filepath.Join(dir, "missing.toml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]struct {
		name     string
		content  string
		contains string
	}{
		"yaml syntax": {
			name:     "changelog.yaml",
			content:  "changelog:\n  file: [unclosed\n",
			contains: "changelog.yaml",
		},
		"toml syntax": {
			name:     "changelog.toml",
			content:  "[changelog\nfile = 1\n",
			contains: "loading project config",
		},
		"invalid repository url": {
			name:     "changelog.toml",
			content:  "[project]\nrepository = \"not a url\"\n",
			contains: "project.repository",
		},
		"invalid webhook url": {
			name:     "changelog.toml",
			content:  "[notifications]\ndiscord_webhook = \"nope\"\n",
			contains: "notifications.discord_webhook",
		},
		"invalid log level": {
			name:     "changelog.toml",
			content:  "log_level = \"loud\"\n",
			contains: "must be one of: debug, info, warn, error",
		},
		"empty changelog file": {
			name:     "changelog.toml",
			content:  "[changelog]\nfile = \"\"\n",
			contains: "changelog.file",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, dir, tt.name, tt.content)

			_, err := LoadWithOptions(LoadOptions{Dir: dir})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_YAMLErrorHasLine(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "changelog.yaml", "changelog:\n  file: a\n bad: indent\n")

	_, err := LoadWithOptions(LoadOptions{Dir: dir})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Positive(t, verr.Line)
}

func TestLoadTypeMap(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]struct {
		name    string
		content string
		want    map[string]string
		wantErr string
	}{
		"json": {
			name:    "map.json",
			content: `{"types": {"feat": "Features", "sec": "Security"}}`,
			want:    map[string]string{"feat": "Features", "sec": "Security"},
		},
		"toml": {
			name:    "map.toml",
			content: "[types]\nfeat = \"Features\"\n",
			want:    map[string]string{"feat": "Features"},
		},
		"yaml": {
			name:    "map.yaml",
			content: "types:\n  fix: Bug Fixes\n",
			want:    map[string]string{"fix": "Bug Fixes"},
		},
		"no types table": {
			name:    "empty.json",
			content: `{"other": 1}`,
			want:    map[string]string{},
		},
		"unsupported extension": {
			name:    "map.ini",
			content: "feat=Features",
			wantErr: "unsupported config extension",
		},
		"invalid json": {
			name:    "broken.json",
			content: `{"types": `,
			wantErr: "broken.json",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name, tt.content)
			got, err := LoadTypeMap(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty path", func(t *testing.T) {
		got, err := LoadTypeMap("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTypeMap(filepath.Join(dir, "missing.json"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestConfiguration_TypeMap(t *testing.T) {
	cfg := &Configuration{Types: map[string]string{"feat": "Features", "docs": "Docs"}}

	got := cfg.TypeMap(map[string]string{"feat": "New", "sec": "Security"})
	assert.Equal(t, notes.TypeMap{"feat": "New", "docs": "Docs", "sec": "Security"}, got)
	assert.Equal(t, "Features", cfg.Types["feat"], "configured types are not modified")
}

func TestEnvTransform(t *testing.T) {
	tests := map[string]string{
		"CHANGELOGGEN_LOG_LEVEL":                   "log_level",
		"CHANGELOGGEN_CHANGELOG__FILE":             "changelog.file",
		"CHANGELOGGEN_NOTIFICATIONS__SLACK_WEBHOOK": "notifications.slack_webhook",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, envTransform(in))
		})
	}
}
