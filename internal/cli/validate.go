package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/ariel-frischer/changeloggen/internal/logfields"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	validateFile   string
	validateStrict bool
	validateWatch  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the changelog is well formed",
	Long: `Parse and validate the changelog.

Checks duplicate versions, release order (newest first), dates, and empty
section names. With --strict, every release must contain at least one note.
A missing file is treated as an empty changelog.

With --watch the file is re-validated every time it changes until the
command is interrupted.`,
	Example: `  changeloggen validate
  changeloggen validate --strict
  changeloggen validate --watch`,
	Args: cobra.NoArgs,
	RunE: timed(runValidate),
}

func init() {
	validateCmd.GroupID = GroupChangelog
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Changelog path (default from config: changelog.file)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Require at least one note per release")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false, "Re-validate whenever the file changes")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path := changelogPath(validateFile)

	if !validateWatch {
		if err := validatePath(path, validateStrict); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
		return nil
	}

	report := func() { reportValidation(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, validateStrict) }
	report()
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes (Ctrl+C to stop)\n", path)
	return watchFile(cmd.Context(), path, report)
}

func validatePath(path string, strict bool) error {
	doc, err := loadOrScaffold(path)
	if err != nil {
		return err
	}
	if err := doc.Validate(strict); err != nil {
		return clierrors.ChangelogInvalid(path, err)
	}
	return nil
}

func reportValidation(out, errOut io.Writer, path string, strict bool) {
	if err := validatePath(path, strict); err != nil {
		clierrors.FprintError(errOut, err)
		return
	}
	fmt.Fprintf(out, "%s is valid\n", path)
}

// watchFile calls onChange after every write, create or rename of path
// until ctx is done. The parent directory is watched so editors that
// replace the file on save are still seen.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.IO, "cannot start file watcher")
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return clierrors.FileNotReadable(path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return clierrors.FileNotReadable(filepath.Dir(target), err)
	}
	logger.Debug("watching changelog", logfields.File(target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debug("changelog changed", logfields.File(target), "op", event.Op.String())
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", logfields.Error(err))
		}
	}
}
