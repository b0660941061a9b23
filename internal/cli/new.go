package cli

import (
	"fmt"

	"github.com/ariel-frischer/changeloggen/internal/changelog"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/spf13/cobra"
)

var (
	newFile   string
	newFormat string
	newForce  bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an empty changelog",
	Long: `Create a changelog containing only the "# Changelog" title.

An existing file is never overwritten unless --force is given.`,
	Example: `  changeloggen new
  changeloggen new --file docs/CHANGES.md`,
	Args: cobra.NoArgs,
	RunE: timed(runNew),
}

func init() {
	newCmd.GroupID = GroupChangelog
	newCmd.Flags().StringVarP(&newFile, "file", "f", "", "Changelog path (default from config: changelog.file)")
	newCmd.Flags().StringVar(&newFormat, "format", "markdown", "Output format (only markdown is supported)")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	if newFormat != "markdown" {
		return clierrors.UnsupportedFormat(newFormat)
	}

	path := changelogPath(newFile)
	if fileExists(path) && !newForce {
		return clierrors.ChangelogExists(path)
	}

	if err := writeFile(path, changelog.Scaffold().Markdown()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
