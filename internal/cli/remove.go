package cli

import (
	"fmt"

	"github.com/ariel-frischer/changeloggen/internal/changelog"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/ariel-frischer/changeloggen/internal/logfields"
	"github.com/spf13/cobra"
)

var (
	removeVersion string
	removeFile    string
	removeYes     bool
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Delete a release from the changelog",
	Long: `Delete every release with the given version and rewrite the file.

The command refuses to change the file unless --yes is given.`,
	Example: `  changeloggen remove --version 1.2.0 --yes`,
	Args:    cobra.NoArgs,
	RunE:    timed(runRemove),
}

func init() {
	removeCmd.GroupID = GroupChangelog
	removeCmd.Flags().StringVar(&removeVersion, "version", "", "Version to remove (required)")
	removeCmd.Flags().StringVarP(&removeFile, "file", "f", "", "Changelog path (default from config: changelog.file)")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Apply the change")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, _ []string) error {
	if removeVersion == "" {
		return clierrors.NewArgumentErrorWithUsage("--version is required",
			"changeloggen remove --version <x.y.z> --yes")
	}
	if !removeYes {
		return clierrors.RemoveNeedsConfirmation()
	}

	path := changelogPath(removeFile)
	doc, err := loadOrScaffold(path)
	if err != nil {
		return err
	}

	target, err := changelog.ParseVersion(removeVersion)
	if err != nil {
		return clierrors.InvalidVersion(removeVersion, err)
	}

	if !doc.RemoveVersion(target) {
		return clierrors.ReleaseNotFound(&changelog.VersionNotFoundError{
			Version:           target.String(),
			AvailableVersions: doc.ListVersions(),
		})
	}

	if err := writeFile(path, doc.Markdown()); err != nil {
		return err
	}
	logger.Info("release removed", logfields.Version(target.String()), logfields.File(path))
	fmt.Fprintf(cmd.OutOrStdout(), "Removed release %s from %s\n", target, path)
	return nil
}
