package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that a Document satisfies the changelog invariants.
// Checks run in order and stop at the first failure:
//  1. the title is not blank
//  2. no two releases share a version
//  3. section names are not blank; in strict mode every release has at
//     least one section and every section at least one note
//  4. releases are sorted descending by SemVer (checked in both modes)
//
// Documents carry no source positions, so issue lines refer to the
// canonical rendering produced by Markdown.
func (d *Document) Validate(strict bool) error {
	if strings.TrimSpace(d.Title) == "" {
		return &ParseIssue{
			Line:     1,
			Expected: "a non-empty title",
			Found:    "empty title",
			Fix:      "use '# Changelog' as the first heading",
		}
	}

	lines := d.headingLines()

	for i := range d.Releases {
		for j := 0; j < i; j++ {
			if SameVersion(d.Releases[j].Version, d.Releases[i].Version) {
				return &ParseIssue{
					Line:     lines[i],
					Expected: "unique release versions",
					Found:    fmt.Sprintf("duplicate %s", d.Releases[i].Version),
					Fix:      "remove duplicates or merge notes into one release",
				}
			}
		}
	}

	for i, release := range d.Releases {
		if err := validateRelease(release, lines[i], strict); err != nil {
			return err
		}
	}

	for i := 1; i < len(d.Releases); i++ {
		if CompareVersions(d.Releases[i-1].Version, d.Releases[i].Version) < 0 {
			return &ParseIssue{
				Line:     lines[i],
				Expected: "releases sorted descending by SemVer",
				Found:    fmt.Sprintf("%s listed after %s", d.Releases[i].Version, d.Releases[i-1].Version),
				Fix:      "sort releases so highest version comes first",
			}
		}
	}

	return nil
}

// validateRelease checks one release's sections. headingLine is the
// release heading's line in the canonical rendering.
func validateRelease(r Release, headingLine int, strict bool) error {
	if strict && len(r.Sections) == 0 {
		return &ParseIssue{
			Line:     headingLine,
			Expected: "at least one section per release in --strict mode",
			Found:    fmt.Sprintf("release %s has no sections", r.Version),
			Fix:      "add a section like '### Added' with notes",
		}
	}

	line := headingLine + 2
	for _, name := range r.Sections.Names() {
		notes := r.Sections[name]
		if strings.TrimSpace(name) == "" {
			return &ParseIssue{
				Line:     line,
				Expected: "non-empty section headings",
				Found:    "empty section heading",
				Fix:      "rename section to something like 'Added'",
			}
		}
		if strict && len(notes) == 0 {
			return &ParseIssue{
				Line:     line,
				Expected: "non-empty section notes in --strict mode",
				Found:    fmt.Sprintf("section '%s' has no notes", name),
				Fix:      "add at least one note under this section",
			}
		}
		line += len(notes) + 2
	}

	return nil
}

// headingLines returns, for each release, the 1-based line of its heading
// in the output of Markdown.
func (d *Document) headingLines() []int {
	lines := make([]int, len(d.Releases))
	line := 3 // title, blank line
	for i, r := range d.Releases {
		lines[i] = line
		line += 2 // heading, blank line
		for _, notes := range r.Sections {
			line += len(notes) + 2 // section heading, notes, blank line
		}
	}
	return lines
}

// IsSorted reports whether releases are in non-increasing SemVer order.
func (d *Document) IsSorted() bool {
	for i := 1; i < len(d.Releases); i++ {
		if CompareVersions(d.Releases[i-1].Version, d.Releases[i].Version) < 0 {
			return false
		}
	}
	return true
}

// IsParseIssue returns true if the error is or wraps a ParseIssue.
func IsParseIssue(err error) bool {
	var issue *ParseIssue
	return errors.As(err, &issue)
}
