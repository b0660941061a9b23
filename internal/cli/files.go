package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/changeloggen/internal/changelog"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/ariel-frischer/changeloggen/internal/logfields"
)

// changelogPath returns the --file value or the configured changelog file.
func changelogPath(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Changelog.File
}

// loadOrScaffold parses the changelog at path. A missing file yields an
// empty scaffold so commands work before 'new' has been run.
func loadOrScaffold(path string) (*changelog.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("changelog not found, using scaffold", logfields.File(path))
		return changelog.Scaffold(), nil
	}
	if err != nil {
		return nil, clierrors.FileNotReadable(path, err)
	}

	doc, err := changelog.Parse(string(data))
	if err != nil {
		return nil, clierrors.ChangelogInvalid(path, err)
	}
	logger.Debug("changelog loaded", logfields.File(path), logfields.Releases(len(doc.Releases)))
	return doc, nil
}

// writeFile writes content to path, creating parent directories.
func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return clierrors.FileNotWritable(path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	logger.Debug("file written", logfields.File(path))
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
