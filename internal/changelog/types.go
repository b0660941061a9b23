package changelog

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// DefaultTitle is the title used for freshly scaffolded documents.
const DefaultTitle = "Changelog"

// Document represents the root structure of a CHANGELOG.md file.
// Releases are kept in the order they were parsed or inserted; Validate
// requires them to be sorted with the newest version first.
type Document struct {
	Title    string
	Releases []Release
}

// Release represents a single versioned entry in the changelog.
// Date is optional; the empty string means the release has no date.
type Release struct {
	Version  *semver.Version
	Date     string
	Header   HeaderFormat
	Sections Sections
}

// Sections maps a section name (e.g. "Added") to its notes.
// Notes keep insertion order; sections are always visited in lexicographic
// order through Names so rendering never depends on map iteration.
type Sections map[string][]string

// ParseIssue describes a structural or semantic defect in changelog text.
// All four fields are always populated.
type ParseIssue struct {
	Line     int
	Expected string
	Found    string
	Fix      string
}

// Message composes a single human-readable description of the issue.
func (p *ParseIssue) Message() string {
	return fmt.Sprintf("Invalid changelog at line %d: expected %s, found %s. Fix: %s",
		p.Line, p.Expected, p.Found, p.Fix)
}

func (p *ParseIssue) Error() string {
	return p.Message()
}

// Scaffold returns an empty document titled "Changelog".
func Scaffold() *Document {
	return &Document{
		Title:    DefaultTitle,
		Releases: []Release{},
	}
}

// NewRelease creates a release with the default header and no sections.
func NewRelease(version *semver.Version, date string) Release {
	return Release{
		Version:  version,
		Date:     date,
		Header:   DefaultHeader(),
		Sections: Sections{},
	}
}

// AddNote appends a note to the named section, creating the section if needed.
func (r *Release) AddNote(section, note string) {
	if r.Sections == nil {
		r.Sections = Sections{}
	}
	r.Sections[section] = append(r.Sections[section], note)
}

// NoteCount returns the total number of notes across all sections.
func (r Release) NoteCount() int {
	return r.Sections.Count()
}

// Names returns the section names in lexicographic order.
func (s Sections) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of notes across all sections.
func (s Sections) Count() int {
	count := 0
	for _, notes := range s {
		count += len(notes)
	}
	return count
}

// Clone returns a deep copy of the sections.
func (s Sections) Clone() Sections {
	out := make(Sections, len(s))
	for name, notes := range s {
		out[name] = append([]string{}, notes...)
	}
	return out
}
