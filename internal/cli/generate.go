package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/changeloggen/internal/config"
	clierrors "github.com/ariel-frischer/changeloggen/internal/errors"
	"github.com/ariel-frischer/changeloggen/internal/git"
	"github.com/ariel-frischer/changeloggen/internal/notes"
	"github.com/spf13/cobra"
)

var (
	genFile      string
	genSince     string
	genUntil     string
	genSpecific  string
	genMilestone string
	genGitHub    bool
	genTemplate  string
	genOutput    string
	genMap       string
	genRepo      string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate release notes from commits",
	Long: `Generate release notes from conventional commits.

Commits are classified by their type (feat, fix, docs, ...) and grouped into
changelog sections. Commits whose message contains "(skip changelog)",
"(ignore changelog)", "!changelog" or "!log" are ignored, and duplicate
notes are dropped.

The type-to-section table can be extended with the 'types' config key or a
--map file (.json, .toml, .yaml or .yml with a top-level 'types' table).
Output is a Markdown fragment unless --template names a Go text/template
file, which is executed with .Sections (each with .Name and .Notes).`,
	Example: `  # Notes for everything since the last release tag
  changeloggen generate --since v1.2.0

  # Notes for one commit
  changeloggen generate --specific 3f2a9c1

  # Render through a template into a file
  changeloggen generate --since v1.2.0 --template notes.tmpl --output NOTES.md`,
	Args: cobra.NoArgs,
	RunE: timed(runGenerate),
}

func init() {
	generateCmd.GroupID = GroupNotes
	f := generateCmd.Flags()
	f.StringVarP(&genFile, "file", "f", "", "Changelog path; must parse if it exists (default from config: changelog.file)")
	f.StringVar(&genSince, "since", "", "Exclude commits reachable from this revision")
	f.StringVar(&genUntil, "until", "", "Walk history from this revision (default HEAD)")
	f.StringVar(&genSpecific, "specific", "", "Use only this commit")
	f.StringVar(&genMilestone, "milestone", "", "GitHub milestone to collect (requires --github)")
	f.BoolVar(&genGitHub, "github", false, "Enable GitHub features such as compare links")
	f.StringVarP(&genTemplate, "template", "t", "", "Go text/template file used to render the notes")
	f.StringVarP(&genOutput, "output", "o", "", "Write notes to this file instead of stdout")
	f.StringVar(&genMap, "map", "", "File with extra commit type to section mappings")
	f.StringVar(&genRepo, "repo", ".", "Path inside the git repository")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if genMilestone != "" {
		if !genGitHub {
			return clierrors.MilestoneNeedsGitHub()
		}
		return clierrors.MilestoneUnsupported()
	}

	if _, err := loadOrScaffold(changelogPath(genFile)); err != nil {
		return err
	}

	extra, err := config.LoadTypeMap(genMap)
	if err != nil {
		return clierrors.ConfigParseError(genMap, err)
	}

	repo, err := openRepo(genRepo)
	if err != nil {
		return err
	}
	commits, err := collectCommits(cmd.Context(), cmd, repo, git.Range{
		Since:    genSince,
		Until:    genUntil,
		Specific: genSpecific,
	})
	if err != nil {
		return err
	}

	grouped := notes.Group(commits, cfg.TypeMap(extra))
	markdown, err := renderNotes(grouped, genTemplate)
	if err != nil {
		return err
	}

	if genGitHub {
		markdown = appendCompareLink(markdown, cfg.Project.Repository, genSince, genUntil)
	}

	if genOutput != "" {
		if err := writeFile(genOutput, markdown); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote generated notes to %s\n", genOutput)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), markdown)
	return nil
}

// renderNotes renders grouped notes as a fragment, or through the
// template file when one is given.
func renderNotes(grouped notes.Grouped, templatePath string) (string, error) {
	if templatePath == "" {
		return notes.RenderFragment(grouped), nil
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		return "", clierrors.FileNotReadable(templatePath, err)
	}

	var buf bytes.Buffer
	if err := notes.RenderTemplate(&buf, grouped, string(data)); err != nil {
		return "", clierrors.TemplateFailure(templatePath, err)
	}
	return buf.String(), nil
}

// appendCompareLink adds a compare URL footer when both a repository and
// a starting revision are known.
func appendCompareLink(markdown, repository, since, until string) string {
	if repository == "" || since == "" {
		return markdown
	}
	if until == "" {
		until = "HEAD"
	}
	link := notes.CompareLink(repository, since, until)
	return strings.TrimRight(markdown, "\n") + "\n\n---\nCompare: " + link + "\n"
}
