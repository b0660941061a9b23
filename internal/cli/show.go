package cli

import (
	"fmt"
	"io"

	"github.com/ariel-frischer/changeloggen/internal/changelog"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/spf13/cobra"
)

var (
	showFile     string
	showVersion  string
	showRange    string
	showConverge bool
	showPlain    bool
	showHTML     bool
	showPretty   bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print releases from the changelog",
	Long: `Print all releases, one release (--version) or an inclusive range of
releases (--range a..b, bounds in either order), newest first.

With --converge the selected releases are merged into a single release with
duplicate notes removed. Output is canonical Markdown by default; --html
converts it to HTML and --pretty formats it for the terminal (--plain drops
colors and icons).`,
	Example: `  changeloggen show
  changeloggen show --version 1.2.0
  changeloggen show --range 1.0.0..1.3.0 --converge
  changeloggen show --pretty`,
	Args: cobra.NoArgs,
	RunE: timed(runShow),
}

func init() {
	showCmd.GroupID = GroupChangelog
	f := showCmd.Flags()
	f.StringVarP(&showFile, "file", "f", "", "Changelog path (default from config: changelog.file)")
	f.StringVar(&showVersion, "version", "", "Show only this version")
	f.StringVar(&showRange, "range", "", "Show versions within <a>..<b>")
	f.BoolVar(&showConverge, "converge", false, "Merge the selected releases into one")
	f.BoolVar(&showPlain, "plain", false, "Terminal output without colors or icons (implies --pretty)")
	f.BoolVar(&showHTML, "html", false, "Render as HTML")
	f.BoolVar(&showPretty, "pretty", false, "Format for the terminal")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	if showVersion != "" && showRange != "" {
		return clierrors.InvalidFlagCombination("--version, --range", "Select either one version or a range")
	}
	pretty := showPretty || showPlain
	if showHTML && pretty {
		return clierrors.InvalidFlagCombination("--html, --pretty", "Choose one output format")
	}

	doc, err := loadOrScaffold(changelogPath(showFile))
	if err != nil {
		return err
	}

	selected, err := selectReleases(doc, showVersion, showRange)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return clierrors.NoMatchingReleases()
	}

	view := &changelog.Document{Title: doc.Title, Releases: selected}
	view.SortDescending()
	if showConverge {
		view = changelog.ConvergedDocument(view.Releases)
	}

	return writeView(cmd.OutOrStdout(), view, pretty)
}

// selectReleases applies the --version or --range selection. With
// neither, every release is selected.
func selectReleases(doc *changelog.Document, version, rng string) ([]changelog.Release, error) {
	switch {
	case version != "":
		v, err := changelog.ParseVersion(version)
		if err != nil {
			return nil, clierrors.InvalidVersion(version, err)
		}
		var selected []changelog.Release
		for _, r := range doc.Releases {
			if changelog.SameVersion(r.Version, v) {
				selected = append(selected, r)
			}
		}
		return selected, nil
	case rng != "":
		a, b, err := changelog.ParseRange(rng)
		if err != nil {
			return nil, clierrors.WrapWithMessage(err, clierrors.Argument,
				fmt.Sprintf("invalid --range '%s'", rng),
				"Use --range <a>..<b>, e.g. --range 1.0.0..1.2.0")
		}
		return doc.SelectRange(a, b), nil
	default:
		return append([]changelog.Release(nil), doc.Releases...), nil
	}
}

func writeView(w io.Writer, view *changelog.Document, pretty bool) error {
	switch {
	case showHTML:
		html, err := changelog.RenderHTML(view)
		if err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Runtime, "cannot render HTML")
		}
		_, err = io.WriteString(w, html)
		return err
	case pretty:
		return changelog.FormatTerminal(w, view.Releases, changelog.FormatOptions{Plain: showPlain})
	default:
		return changelog.RenderMarkdown(view, w)
	}
}
