package changelog

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// RenderHTML converts the canonical markdown rendering of the document to
// HTML. The markdown produced by Markdown is always valid CommonMark, so
// the conversion only fails on writer errors.
func RenderHTML(d *Document) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(d.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("converting changelog to HTML: %w", err)
	}
	return buf.String(), nil
}
