package cli

import (
	"context"
	"fmt"
	"os"

	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/ariel-frischer/changeloggen/internal/git"
	"github.com/ariel-frischer/changeloggen/internal/logfields"
	"github.com/ariel-frischer/changeloggen/internal/notes"
	"github.com/ariel-frischer/changeloggen/internal/progress"
	"github.com/spf13/cobra"
)

// openRepo opens the repository at path, mapping failures to git errors.
func openRepo(path string) (*git.Repository, error) {
	repo, err := git.Open(path, logger)
	if err != nil {
		return nil, clierrors.GitFailure(err)
	}
	return repo, nil
}

// collectCommits walks history for rng, showing a spinner while it runs
// when stderr is a terminal.
func collectCommits(ctx context.Context, cmd *cobra.Command, repo *git.Repository, rng git.Range) ([]notes.Commit, error) {
	var caps progress.TerminalCapabilities
	if cmd.ErrOrStderr() == os.Stderr {
		caps = progress.DetectTerminalCapabilities(os.Stderr)
	}
	spin := progress.NewSpinner(cmd.ErrOrStderr(), caps)

	spin.Start("Reading git history")
	commits, err := repo.Commits(ctx, rng)
	if err != nil {
		spin.Fail("Reading git history failed")
		return nil, clierrors.GitFailure(err)
	}
	spin.Success(fmt.Sprintf("Collected %d commits", len(commits)))

	logger.Info("collected commits",
		logfields.Commits(len(commits)),
		logfields.Revision(describeRange(rng)))
	return commits, nil
}

func describeRange(rng git.Range) string {
	if rng.Specific != "" {
		return rng.Specific
	}
	until := rng.Until
	if until == "" {
		until = "HEAD"
	}
	if rng.Since == "" {
		return until
	}
	return rng.Since + ".." + until
}
