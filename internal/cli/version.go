package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/changeloggen/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for changeloggen",
	Example: `  changeloggen version
  changeloggen version --plain`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionPlain {
			fmt.Fprintln(out, version.String())
			return
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s %s\n", bold("changeloggen"), version.Version)
		fmt.Fprintf(out, "  Commit:     %s\n", version.Commit)
		fmt.Fprintf(out, "  Built:      %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Single-line output for scripts")
	rootCmd.AddCommand(versionCmd)
}
