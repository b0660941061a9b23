package changelog

import (
	"io"
	"strings"
	"unicode"
)

// Markdown renders the document to its canonical text form.
// Releases are written in their stored order and never re-sorted;
// sections are written in lexicographic order. The output ends with
// exactly one newline.
//
// The function is pure - given the same document, it produces identical output.
func (d *Document) Markdown() string {
	var b strings.Builder
	b.WriteString(titlePrefix)
	b.WriteString(d.Title)
	b.WriteString("\n\n")

	for _, r := range d.Releases {
		writeRelease(&b, r)
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + "\n"
}

// RenderMarkdown writes the canonical rendering of the document to w.
func RenderMarkdown(d *Document, w io.Writer) error {
	_, err := io.WriteString(w, d.Markdown())
	return err
}

// ReleaseMarkdown renders a single release without a document title.
func ReleaseMarkdown(r Release) string {
	var b strings.Builder
	writeRelease(&b, r)
	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + "\n"
}

// writeRelease writes the heading, a blank line, then each section
// followed by a blank line.
func writeRelease(b *strings.Builder, r Release) {
	b.WriteString(r.HeaderLine())
	b.WriteString("\n\n")

	for _, name := range r.Sections.Names() {
		b.WriteString(sectionPrefix)
		b.WriteString(name)
		b.WriteString("\n")
		for _, note := range r.Sections[name] {
			b.WriteString(notePrefix)
			b.WriteString(note)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}
