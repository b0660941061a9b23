package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// SectionStyle defines the color and icon for a changelog section.
type SectionStyle struct {
	Color *color.Color
	Icon  string
}

// sectionStyles maps well-known section names to their terminal styling.
var sectionStyles = map[string]SectionStyle{
	"Added":         {Color: color.New(color.FgGreen), Icon: "✓"},
	"Changed":       {Color: color.New(color.FgBlue), Icon: "~"},
	"Deprecated":    {Color: color.New(color.FgRed), Icon: "⚠"},
	"Removed":       {Color: color.New(color.FgRed), Icon: "✗"},
	"Fixed":         {Color: color.New(color.FgYellow), Icon: "⚡"},
	"Security":      {Color: color.New(color.FgMagenta), Icon: "🔒"},
	"Documentation": {Color: color.New(color.FgCyan), Icon: "📖"},
	"Maintenance":   {Color: color.New(color.FgWhite), Icon: "⚙"},
}

var defaultSectionStyle = SectionStyle{Color: color.New(color.Reset), Icon: "•"}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes releases to w with terminal styling: a bold
// version header per release and color-coded section headings.
func FormatTerminal(w io.Writer, releases []Release, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	for i := range releases {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := formatRelease(w, releases[i], opts, width); err != nil {
			return fmt.Errorf("formatting release %s: %w", releases[i].Version, err)
		}
	}

	return nil
}

func formatRelease(w io.Writer, r Release, opts FormatOptions, width int) error {
	if err := writeReleaseHeader(w, r, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, name := range r.Sections.Names() {
		if err := writeSection(w, name, r.Sections[name], opts, width); err != nil {
			return err
		}
	}
	return nil
}

// writeReleaseHeader writes the version header line.
func writeReleaseHeader(w io.Writer, r Release, opts FormatOptions) error {
	header := fmt.Sprintf("v%s", r.Version)
	switch {
	case r.Header.Kind == HeaderCustom && r.Header.Template == ConvergedHeader:
		header = "Converged"
	case r.Date != "" && r.Header.Kind != HeaderVersionOnly:
		header = fmt.Sprintf("v%s (%s)", r.Version, r.Date)
	}

	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", header)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "## %s\n", bold(header))
	return err
}

// writeSection writes a single section with its notes.
func writeSection(w io.Writer, name string, notes []string, opts FormatOptions, width int) error {
	style := styleFor(name)

	if opts.Plain {
		if _, err := fmt.Fprintf(w, "\n### %s\n", name); err != nil {
			return err
		}
	} else {
		colored := style.Color.SprintFunc()
		if _, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(name)); err != nil {
			return err
		}
	}

	for _, note := range notes {
		if err := writeNote(w, note, style, opts, width); err != nil {
			return err
		}
	}
	return nil
}

// writeNote writes a single note with optional wrapping.
func writeNote(w io.Writer, note string, style SectionStyle, opts FormatOptions, width int) error {
	prefix := "  - "

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, note)
		return err
	}

	wrapped := wrapText(note, width-len(prefix), "    ")
	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

func styleFor(section string) SectionStyle {
	if style, ok := sectionStyles[section]; ok {
		return style
	}
	return defaultSectionStyle
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
