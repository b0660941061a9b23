// Package git reads commit history and tags for changeloggen using the
// go-git library. It supplies the ordered commit lists that the notes
// pipeline groups into release notes.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ariel-frischer/changeloggen/internal/logfields"
	"github.com/ariel-frischer/changeloggen/internal/notes"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Repository wraps a go-git repository.
type Repository struct {
	repo   *git.Repository
	logger *slog.Logger
}

// Range selects commits for note generation. Since and Until are any
// revision go-git can resolve (tag, branch, hash). Specific selects a
// single commit and takes precedence over Since and Until.
type Range struct {
	Since    string
	Until    string
	Specific string
}

// Open opens the git repository containing path. It uses go-git's
// PlainOpenWithOptions with DetectDotGit enabled to traverse up the
// directory tree to find the repository root. If path is empty, the
// current working directory is used.
func Open(path string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logger.Debug("opening repository", logfields.Repository(path))

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repository{repo: repo, logger: logger}, nil
}

// Commits lists the commits selected by rng, oldest first. Without Since
// the walk covers all history reachable from Until (default HEAD); with
// Since, commits reachable from Since are excluded. Each commit carries
// its summary line and full hash.
func (r *Repository) Commits(ctx context.Context, rng Range) ([]notes.Commit, error) {
	if rng.Specific != "" {
		return r.specificCommit(rng.Specific)
	}

	until := rng.Until
	if until == "" {
		until = "HEAD"
	}
	from, err := r.resolve(until)
	if err != nil {
		return nil, err
	}

	var exclude map[plumbing.Hash]struct{}
	if rng.Since != "" {
		since, err := r.resolve(rng.Since)
		if err != nil {
			return nil, err
		}
		exclude, err = r.reachable(ctx, since)
		if err != nil {
			return nil, err
		}
	}

	iter, err := r.repo.Log(&git.LogOptions{From: from, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", until, err)
	}
	defer iter.Close()

	var commits []notes.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, skip := exclude[c.Hash]; skip {
			return nil
		}
		commits = append(commits, toCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", until, err)
	}

	reverse(commits)
	r.logger.Debug("collected commits",
		logfields.Revision(until), logfields.Commits(len(commits)))
	return commits, nil
}

// Tags returns all tag names in lexicographic order.
func (r *Repository) Tags(ctx context.Context) ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	sort.Strings(tags)
	return tags, nil
}

// LatestSemverTag returns the tag with the highest semantic version,
// ignoring a leading "v" and tags that are not versions. Returns "" when
// no tag qualifies.
func LatestSemverTag(tags []string) string {
	var (
		best    string
		bestVer *semver.Version
	)
	for _, tag := range tags {
		v, err := semver.StrictNewVersion(strings.TrimPrefix(tag, "v"))
		if err != nil {
			continue
		}
		if bestVer == nil || v.GreaterThan(bestVer) {
			best, bestVer = tag, v
		}
	}
	return best
}

func (r *Repository) specificCommit(rev string) ([]notes.Commit, error) {
	hash, err := r.resolve(rev)
	if err != nil {
		return nil, err
	}
	c, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", rev, err)
	}
	return []notes.Commit{toCommit(c)}, nil
}

// resolve turns a revision into a commit hash, peeling annotated tags.
func (r *Repository) resolve(rev string) (plumbing.Hash, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving revision %q: %w", rev, err)
	}
	return *hash, nil
}

// reachable collects every commit reachable from hash.
func (r *Repository) reachable(ctx context.Context, hash plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := r.repo.Log(&git.LogOptions{From: hash})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", hash, err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, fmt.Errorf("walking history from %s: %w", hash, err)
	}
	return seen, nil
}

func toCommit(c *object.Commit) notes.Commit {
	return notes.Commit{
		Message: notes.FirstLine(c.Message),
		Hash:    c.Hash.String(),
	}
}

func reverse(commits []notes.Commit) {
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
}
