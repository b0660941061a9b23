package notes

import (
	"sort"
	"strings"
)

// Section names produced by the built-in kind table.
const (
	SectionAdded         = "Added"
	SectionFixed         = "Fixed"
	SectionChanged       = "Changed"
	SectionDocumentation = "Documentation"
	SectionMaintenance   = "Maintenance"
	SectionOther         = "Other"
)

// defaultSections maps conventional commit kinds to changelog sections.
var defaultSections = map[string]string{
	"feat":     SectionAdded,
	"fix":      SectionFixed,
	"perf":     SectionChanged,
	"refactor": SectionChanged,
	"docs":     SectionDocumentation,
	"test":     SectionMaintenance,
	"chore":    SectionMaintenance,
	"build":    SectionMaintenance,
	"ci":       SectionMaintenance,
}

// TypeMap overrides the section a commit kind is routed to.
type TypeMap map[string]string

// Grouped maps a section name to its ordered notes.
type Grouped map[string][]string

// SectionFor resolves the section for a commit kind. An explicit entry in
// types wins over the built-in table; unknown kinds go to "Other".
func SectionFor(kind string, types TypeMap) string {
	if section, ok := types[kind]; ok {
		return section
	}
	if section, ok := defaultSections[kind]; ok {
		return section
	}
	return SectionOther
}

// Group routes commits to sections in input order and then deduplicates
// each section. Ignored commits and commits with a blank first line
// produce no note.
func Group(commits []Commit, types TypeMap) Grouped {
	grouped := Grouped{}
	for _, c := range commits {
		if ShouldIgnore(c.Message) {
			continue
		}
		line := FirstLine(c.Message)
		if line == "" {
			continue
		}

		section, note := SectionOther, line
		if cls, ok := Classify(c.Message); ok {
			section, note = SectionFor(cls.Kind, types), cls.Description
		}
		grouped[section] = append(grouped[section], note)
	}
	return Dedupe(grouped)
}

// CanonicalKey normalizes a note for duplicate detection: lowercased,
// whitespace runs collapsed to one space, trimmed.
func CanonicalKey(note string) string {
	return strings.ToLower(strings.Join(strings.Fields(note), " "))
}

// Dedupe keeps the first occurrence of every canonical key per section,
// preserving first-seen order. Sections left empty are dropped. The input
// is not modified.
func Dedupe(g Grouped) Grouped {
	out := make(Grouped, len(g))
	for section, notes := range g {
		seen := make(map[string]struct{}, len(notes))
		var kept []string
		for _, note := range notes {
			key := CanonicalKey(note)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, note)
		}
		if len(kept) > 0 {
			out[section] = kept
		}
	}
	return out
}

// Names returns the section names in lexicographic order.
func (g Grouped) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of notes.
func (g Grouped) Count() int {
	n := 0
	for _, notes := range g {
		n += len(notes)
	}
	return n
}
