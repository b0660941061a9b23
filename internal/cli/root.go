// Package cli implements the changeloggen command tree with cobra.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ariel-frischer/changeloggen/internal/config"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/ariel-frischer/changeloggen/internal/lifecycle"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Command groups shown in help output.
const (
	GroupChangelog = "changelog"
	GroupNotes     = "notes"
)

var (
	configPath string
	verbose    bool
	logJSON    bool
	noColor    bool
)

// cfg and logger are populated before any subcommand runs.
var (
	cfg    *config.Configuration
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "changeloggen",
	Short: "Maintain CHANGELOG.md and generate release notes from git history",
	Long: `changeloggen keeps a Markdown changelog in a strict, machine-checkable
shape and builds release notes from conventional commits.

Configuration is read from changelog.toml or changelog.yaml in the current
directory (or --config), ~/.config/changeloggen/config.yml, and
CHANGELOGGEN_* environment variables.`,
	Example: `  # Start a changelog
  changeloggen new

  # Preview notes for commits since the last tag
  changeloggen generate --since v1.2.0

  # Cut a release from commits since the latest semver tag
  changeloggen release --bump minor

  # Show a range of releases merged into one
  changeloggen show --range 1.0.0..1.2.0 --converge`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupNotes, Title: "Release Notes Commands:"},
	)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a project config file (.toml, .yaml, .yml or .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// setup loads configuration and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		source := configPath
		if source == "" {
			source = "changeloggen configuration"
		}
		return clierrors.ConfigParseError(source, err)
	}
	cfg = loaded

	logger = newLogger(cmd.ErrOrStderr(), logLevel(cfg.LogLevel, verbose), logJSON)
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", "config", configPath, "changelog", cfg.Changelog.File)
	return nil
}

func newLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// logLevel resolves the configured level; --verbose always means debug.
func logLevel(configured string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(configured) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// timed wraps a RunE function so its duration is logged at debug level.
func timed(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return lifecycle.Run(lifecycle.LogHandler{Logger: logger}, cmd.Name(), func() error {
			return run(cmd, args)
		})
	}
}
