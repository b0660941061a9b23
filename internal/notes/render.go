package notes

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"
)

// emptyFragment is rendered when no commit produced a note.
const emptyFragment = "### Other\n- No user-facing changes detected\n"

// TemplateSection is one entry of the data passed to notes templates.
type TemplateSection struct {
	Name  string
	Notes []string
}

// TemplateData is the value templates are executed against.
// Sections are sorted by name.
type TemplateData struct {
	Sections []TemplateSection
}

// NewTemplateData builds template input from grouped notes.
func NewTemplateData(g Grouped) TemplateData {
	data := TemplateData{Sections: make([]TemplateSection, 0, len(g))}
	for _, name := range g.Names() {
		data.Sections = append(data.Sections, TemplateSection{Name: name, Notes: g[name]})
	}
	return data
}

// RenderFragment renders grouped notes as "### Section" blocks separated by
// blank lines, in lexicographic section order. An empty map renders a
// single "Other" placeholder note.
func RenderFragment(g Grouped) string {
	var b strings.Builder
	for _, name := range g.Names() {
		fmt.Fprintf(&b, "### %s\n", name)
		for _, note := range g[name] {
			fmt.Fprintf(&b, "- %s\n", note)
		}
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return emptyFragment
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + "\n"
}

// RenderTemplate executes a text/template over the grouped notes and writes
// the result to w. An empty tmplText selects DefaultTemplate.
func RenderTemplate(w io.Writer, g Grouped, tmplText string) error {
	if tmplText == "" {
		tmplText = DefaultTemplate()
	}

	tmpl, err := template.New("notes").Option("missingkey=error").Parse(tmplText)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, NewTemplateData(g)); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// CompareLink builds a "<repository>/compare/<from>...<to>" URL.
// A trailing slash on repository is ignored.
func CompareLink(repository, from, to string) string {
	return fmt.Sprintf("%s/compare/%s...%s", strings.TrimRight(repository, "/"), from, to)
}
