package changelog

import (
	"github.com/ariel-frischer/changeloggen/internal/notes"
)

// Converge merges the notes of several releases into one synthetic release.
// Sections are concatenated release by release in the given order, then
// deduplicated with the same rules as commit-derived notes, so the earliest
// occurrence of a note wins. The result has no date and is marked with
// ConvergedHeader; its version is a 0.0.0 placeholder.
func Converge(releases []Release) Release {
	combined := notes.Grouped{}
	for _, r := range releases {
		for _, name := range r.Sections.Names() {
			combined[name] = append(combined[name], r.Sections[name]...)
		}
	}

	return Release{
		Version:  ZeroVersion(),
		Header:   CustomHeader(ConvergedHeader),
		Sections: Sections(notes.Dedupe(combined)),
	}
}

// ConvergedDocument wraps the converged release in a scaffold document
// for rendering.
func ConvergedDocument(releases []Release) *Document {
	doc := Scaffold()
	doc.Releases = append(doc.Releases, Converge(releases))
	return doc
}
