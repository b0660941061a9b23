package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/changeloggen/internal/changelog"
	"github.com/fatih/color"
)

// palette holds the styles used for one error report. A zero palette
// prints plain text.
type palette struct {
	heading func(a ...interface{}) string
	detail  func(a ...interface{}) string
	fix     func(a ...interface{}) string
	usage   func(a ...interface{}) string
}

func newPalette(colored bool) palette {
	if !colored {
		plain := fmt.Sprint
		return palette{heading: plain, detail: plain, fix: plain, usage: plain}
	}
	return palette{
		heading: color.New(color.FgRed, color.Bold).SprintFunc(),
		detail:  color.New(color.FgYellow).SprintFunc(),
		fix:     color.New(color.FgGreen, color.Bold).SprintFunc(),
		usage:   color.New(color.FgCyan).SprintFunc(),
	}
}

// PrintError reports err on stderr.
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes a report for err to w. Errors that are not CLIErrors
// are reported as runtime errors. A changelog defect in the chain is shown
// with its line, the expected and found text, and its fix ahead of any
// other remediation. Colors follow color.NoColor.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = Wrap(err, Runtime)
	}
	fmt.Fprint(w, report(cliErr, newPalette(!color.NoColor)))
}

func report(err *CLIError, p palette) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", p.heading(err.Category.String()), err.Message)

	var issue *changelog.ParseIssue
	steps := err.Remediation
	if stderrors.As(err.Err, &issue) {
		fmt.Fprintf(&sb, "\n  %s %d\n", p.detail("line:    "), issue.Line)
		fmt.Fprintf(&sb, "  %s %s\n", p.detail("expected:"), issue.Expected)
		fmt.Fprintf(&sb, "  %s %s\n", p.detail("found:   "), issue.Found)
		steps = append([]string{issue.Fix}, steps...)
	}

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\nUsage: %s\n", p.usage(err.Usage))
	}

	if len(steps) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.fix("To fix this:"))
		for _, step := range steps {
			fmt.Fprintf(&sb, "  - %s\n", step)
		}
	}
	return sb.String()
}
