// Package notes turns raw commit messages into grouped, deduplicated
// release notes. Commits are filtered, classified as conventional commits,
// routed to a changelog section and deduplicated per section.
package notes

import (
	"strings"
)

// Commit is one entry of repository history as handed to Group.
type Commit struct {
	Message string
	Hash    string
}

// IgnoreMarkers are substrings that exclude a commit from the changelog.
// Matching is case-insensitive against the full message.
var IgnoreMarkers = []string{
	"(skip changelog)",
	"(ignore changelog)",
	"!changelog",
	"!log",
}

// ShouldIgnore reports whether the message carries an ignore marker.
func ShouldIgnore(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range IgnoreMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Classification is the result of parsing a conventional commit line
// of the form "kind(scope)!: description".
type Classification struct {
	Kind        string
	Scope       string
	Breaking    bool
	Description string
}

// Classify parses the first line of message as a conventional commit.
// It returns false when the line has no ':', an empty description or an
// empty kind; callers then use the whole trimmed first line as the note.
func Classify(message string) (Classification, bool) {
	head, rest, ok := strings.Cut(FirstLine(message), ":")
	if !ok {
		return Classification{}, false
	}

	description := strings.TrimSpace(rest)
	if description == "" {
		return Classification{}, false
	}

	head = strings.TrimSpace(head)
	breaking := strings.HasSuffix(head, "!")

	kind, scope, hasScope := strings.Cut(head, "(")
	if hasScope {
		scope = strings.TrimSuffix(strings.TrimSuffix(scope, "!"), ")")
	}
	kind = strings.TrimSpace(kind)
	if strings.HasSuffix(kind, "!") {
		breaking = true
		kind = strings.TrimSuffix(kind, "!")
	}
	if kind == "" {
		return Classification{}, false
	}

	return Classification{
		Kind:        kind,
		Scope:       scope,
		Breaking:    breaking,
		Description: description,
	}, true
}

// FirstLine returns the trimmed first line of a commit message.
func FirstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
