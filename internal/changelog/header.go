package changelog

import (
	"fmt"
	"strings"
)

// HeaderKind selects how a release heading is written.
type HeaderKind int

const (
	// HeaderDefault renders "## [V] - D", or "## [V]" without a date.
	HeaderDefault HeaderKind = iota
	// HeaderPlain renders "## V - D", or "## V" without a date.
	HeaderPlain
	// HeaderVersionOnly renders "## [V]" and never shows the date.
	HeaderVersionOnly
	// HeaderCustom renders a literal template with {version} and {date} tokens.
	HeaderCustom
)

// Template tokens substituted by custom headers.
const (
	VersionToken = "{version}"
	DateToken    = "{date}"
)

// plainUndatedTemplate reproduces a bare "## V" heading on render.
const plainUndatedTemplate = "## " + VersionToken

// ConvergedHeader marks the synthetic release produced by Converge.
const ConvergedHeader = "## [converged]"

// HeaderFormat is the rendering style of a release heading.
// Template is only meaningful for HeaderCustom.
type HeaderFormat struct {
	Kind     HeaderKind
	Template string
}

// DefaultHeader returns the bracketed "## [V] - D" style.
func DefaultHeader() HeaderFormat { return HeaderFormat{Kind: HeaderDefault} }

// PlainHeader returns the unbracketed "## V - D" style.
func PlainHeader() HeaderFormat { return HeaderFormat{Kind: HeaderPlain} }

// VersionOnlyHeader returns the "## [V]" style.
func VersionOnlyHeader() HeaderFormat { return HeaderFormat{Kind: HeaderVersionOnly} }

// CustomHeader returns a literal template header.
func CustomHeader(template string) HeaderFormat {
	return HeaderFormat{Kind: HeaderCustom, Template: template}
}

// ParseHeaderFormat maps a user-facing header name to a HeaderFormat.
// "default" and "brackets" select the bracketed style, "plain" and
// "version-only" their namesakes; any other value is used as a custom template.
func ParseHeaderFormat(name string) HeaderFormat {
	switch name {
	case "default", "brackets":
		return DefaultHeader()
	case "plain":
		return PlainHeader()
	case "version-only":
		return VersionOnlyHeader()
	default:
		return CustomHeader(name)
	}
}

// String returns the name accepted by ParseHeaderFormat.
func (h HeaderFormat) String() string {
	switch h.Kind {
	case HeaderDefault:
		return "default"
	case HeaderPlain:
		return "plain"
	case HeaderVersionOnly:
		return "version-only"
	default:
		return h.Template
	}
}

// HeaderLine renders the release heading without a trailing newline.
func (r Release) HeaderLine() string {
	version := r.Version.String()
	switch r.Header.Kind {
	case HeaderDefault:
		if r.Date != "" {
			return fmt.Sprintf("## [%s] - %s", version, r.Date)
		}
		return fmt.Sprintf("## [%s]", version)
	case HeaderPlain:
		if r.Date != "" {
			return fmt.Sprintf("## %s - %s", version, r.Date)
		}
		return fmt.Sprintf("## %s", version)
	case HeaderVersionOnly:
		return fmt.Sprintf("## [%s]", version)
	default:
		line := strings.ReplaceAll(r.Header.Template, VersionToken, version)
		return strings.ReplaceAll(line, DateToken, r.Date)
	}
}
