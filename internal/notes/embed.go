package notes

import (
	_ "embed"
)

//go:embed templates/default.tmpl
var defaultTemplate string

// DefaultTemplate returns the built-in notes template. It renders the same
// layout as RenderFragment and serves as a starting point for --template files.
func DefaultTemplate() string {
	return defaultTemplate
}
