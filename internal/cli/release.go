package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/ariel-frischer/changeloggen/internal/changelog"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/ariel-frischer/changeloggen/internal/git"
	"github.com/ariel-frischer/changeloggen/internal/logfields"
	"github.com/ariel-frischer/changeloggen/internal/notes"
	"github.com/ariel-frischer/changeloggen/internal/notify"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var (
	relVersion  string
	relBump     string
	relFile     string
	relHeader   string
	relOverride bool
	relDate     string
	relNotify   bool
	relRepo     string
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Add a release built from commits since the latest tag",
	Long: `Add a release to the changelog.

The version is given with --version, or derived with --bump from the highest
version already in the changelog (0.0.0 when there is none). Notes are built
from the commits made since the highest semver tag in the repository.

An existing release with the same version is only replaced with --override.
With --notify the new release is posted to the configured Slack and Discord
webhooks after the file is written.`,
	Example: `  changeloggen release --version 1.4.0
  changeloggen release --bump minor --header plain
  changeloggen release --bump patch --notify`,
	Args: cobra.NoArgs,
	RunE: timed(runRelease),
}

func init() {
	releaseCmd.GroupID = GroupChangelog
	f := releaseCmd.Flags()
	f.StringVar(&relVersion, "version", "", "Version of the new release")
	f.StringVar(&relBump, "bump", "", "Bump the highest version: major, minor or patch")
	f.StringVarP(&relFile, "file", "f", "", "Changelog path (default from config: changelog.file)")
	f.StringVar(&relHeader, "header", "", "Heading style: default, brackets, plain, version-only or a literal heading (default from config: changelog.header)")
	f.BoolVar(&relOverride, "override", false, "Replace an existing release with the same version")
	f.StringVar(&relDate, "date", "", "Release date as YYYY-MM-DD (default today, UTC)")
	f.BoolVar(&relNotify, "notify", false, "Post the release to configured webhooks")
	f.StringVar(&relRepo, "repo", ".", "Path inside the git repository")
	rootCmd.AddCommand(releaseCmd)
}

func runRelease(cmd *cobra.Command, _ []string) error {
	path := changelogPath(relFile)
	doc, err := loadOrScaffold(path)
	if err != nil {
		return err
	}

	version, err := releaseVersion(doc, relVersion, relBump)
	if err != nil {
		return err
	}

	date, err := releaseDate(relDate, time.Now())
	if err != nil {
		return err
	}

	grouped, err := notesSinceLatestTag(cmd, relRepo)
	if err != nil {
		return err
	}

	header := relHeader
	if header == "" {
		header = cfg.Changelog.Header
	}

	release := changelog.NewRelease(version, date)
	release.Header = changelog.ParseHeaderFormat(header)
	release.Sections = changelog.Sections(grouped)

	if err := doc.UpsertRelease(release, relOverride); err != nil {
		return clierrors.ReleaseExists(err)
	}
	if err := doc.Validate(false); err != nil {
		return clierrors.ChangelogInvalid(path, err)
	}
	if err := writeFile(path, doc.Markdown()); err != nil {
		return err
	}

	logger.Info("release added",
		logfields.Version(version.String()),
		logfields.Notes(release.NoteCount()),
		logfields.File(path))
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)

	if relNotify {
		return announce(cmd.Context(), release)
	}
	return nil
}

// releaseVersion resolves the version from exactly one of --version or --bump.
func releaseVersion(doc *changelog.Document, raw, bump string) (*semver.Version, error) {
	switch {
	case raw != "" && bump == "":
		v, err := changelog.ParseVersion(raw)
		if err != nil {
			return nil, clierrors.InvalidVersion(raw, err)
		}
		return v, nil
	case raw == "" && bump != "":
		v, err := changelog.BumpVersion(doc.HighestVersion(), bump)
		if err != nil {
			return nil, clierrors.InvalidBump(bump)
		}
		return v, nil
	default:
		return nil, clierrors.VersionSourceRequired()
	}
}

func releaseDate(raw string, now time.Time) (string, error) {
	if raw == "" {
		return now.UTC().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", clierrors.NewArgumentError(
			fmt.Sprintf("invalid --date '%s'", raw),
			"Use the YYYY-MM-DD form, e.g. 2024-03-15",
		)
	}
	return raw, nil
}

// notesSinceLatestTag groups the commits made after the highest semver tag.
func notesSinceLatestTag(cmd *cobra.Command, repoPath string) (notes.Grouped, error) {
	repo, err := openRepo(repoPath)
	if err != nil {
		return nil, err
	}
	tags, err := repo.Tags(cmd.Context())
	if err != nil {
		return nil, clierrors.GitFailure(err)
	}

	since := git.LatestSemverTag(tags)
	logger.Debug("latest release tag", logfields.Tag(since))

	commits, err := collectCommits(cmd.Context(), cmd, repo, git.Range{Since: since})
	if err != nil {
		return nil, err
	}
	return notes.Group(commits, cfg.TypeMap(nil)), nil
}

func announce(ctx context.Context, release changelog.Release) error {
	if !cfg.Notifications.Enabled() {
		logger.Warn("--notify given but no webhooks are configured")
		return nil
	}

	n := notify.NewNotifier(cfg.Notifications, logger)
	err := n.Notify(ctx, notify.Announcement{
		Version: release.Version.String(),
		Message: announcement(cfg.Project.Name, release),
	})
	if err != nil {
		return clierrors.NotificationFailed(err)
	}
	return nil
}

// announcement is the webhook message for a new release.
func announcement(project string, release changelog.Release) string {
	title := "Released " + release.Version.String()
	if project != "" {
		title = fmt.Sprintf("%s %s released", project, release.Version.String())
	}
	body := strings.TrimRight(changelog.ReleaseMarkdown(release), "\n")
	return title + "\n\n" + body
}
