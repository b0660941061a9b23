package changelog

import (
	"io"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Line prefixes recognized by the parser, applied to trimmed lines.
const (
	titlePrefix   = "# "
	releasePrefix = "## "
	sectionPrefix = "### "
	notePrefix    = "- "
)

// Load reads and parses a changelog file from the given path.
// Parse failures are returned as *ParseIssue.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// LoadFromReader reads and parses a changelog from an io.Reader.
func LoadFromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// parser holds the state of a single forward pass over changelog lines.
// section is the name notes are currently appended to; it is reset by
// every release heading.
type parser struct {
	doc      *Document
	release  *Release
	section  string
	hasTitle bool
}

// Parse converts changelog markdown into a Document.
// The first defect aborts the parse and is returned as a *ParseIssue
// carrying the 1-based line number.
func Parse(text string) (*Document, error) {
	p := &parser{doc: &Document{Releases: []Release{}}}

	for i, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if issue := p.consume(i+1, line); issue != nil {
			return nil, issue
		}
	}

	if !p.hasTitle {
		return nil, &ParseIssue{
			Line:     1,
			Expected: "a '# Changelog' title",
			Found:    "empty file",
			Fix:      "create a file starting with '# Changelog'",
		}
	}

	p.flushRelease()
	return p.doc, nil
}

// consume advances the parser by one non-blank, trimmed line.
func (p *parser) consume(lineNo int, line string) *ParseIssue {
	if !p.hasTitle {
		return p.parseTitle(lineNo, line)
	}

	if strings.HasPrefix(line, releasePrefix) {
		return p.startRelease(lineNo, line)
	}

	if p.release == nil {
		return &ParseIssue{
			Line:     lineNo,
			Expected: "a release heading '## [x.y.z] - YYYY-MM-DD'",
			Found:    line,
			Fix:      "add a release heading before sections and notes",
		}
	}

	switch {
	case strings.HasPrefix(line, sectionPrefix):
		return p.startSection(lineNo, line)
	case strings.HasPrefix(line, notePrefix):
		return p.addNote(lineNo, line)
	default:
		return &ParseIssue{
			Line:     lineNo,
			Expected: "a bullet note '- ...' or a section heading '### ...'",
			Found:    line,
			Fix:      "prefix notes with '- ' and group them under '### <Section>'",
		}
	}
}

func (p *parser) parseTitle(lineNo int, line string) *ParseIssue {
	if !strings.HasPrefix(line, titlePrefix) {
		return &ParseIssue{
			Line:     lineNo,
			Expected: "a level-1 heading like '# Changelog'",
			Found:    line,
			Fix:      "replace the first non-empty line with '# Changelog'",
		}
	}
	p.doc.Title = strings.TrimSpace(strings.TrimPrefix(line, titlePrefix))
	p.hasTitle = true
	return nil
}

func (p *parser) startRelease(lineNo int, line string) *ParseIssue {
	version, date, header, issue := parseReleaseHeading(lineNo, line)
	if issue != nil {
		return issue
	}
	p.flushRelease()
	p.release = &Release{
		Version:  version,
		Date:     date,
		Header:   header,
		Sections: Sections{},
	}
	p.section = ""
	return nil
}

func (p *parser) startSection(lineNo int, line string) *ParseIssue {
	name := strings.TrimSpace(strings.TrimPrefix(line, sectionPrefix))
	if name == "" {
		return &ParseIssue{
			Line:     lineNo,
			Expected: "a section title after '###'",
			Found:    line,
			Fix:      "use section headings like '### Added' or '### Fixed'",
		}
	}
	p.section = name
	if _, ok := p.release.Sections[name]; !ok {
		p.release.Sections[name] = []string{}
	}
	return nil
}

func (p *parser) addNote(lineNo int, line string) *ParseIssue {
	if p.section == "" {
		return &ParseIssue{
			Line:     lineNo,
			Expected: "a section heading before notes",
			Found:    line,
			Fix:      "insert a heading like '### Added' above this note",
		}
	}
	note := strings.TrimSpace(strings.TrimPrefix(line, notePrefix))
	if note == "" {
		return &ParseIssue{
			Line:     lineNo,
			Expected: "a non-empty note",
			Found:    line,
			Fix:      "write text after '- '",
		}
	}
	p.release.AddNote(p.section, note)
	return nil
}

func (p *parser) flushRelease() {
	if p.release != nil {
		p.doc.Releases = append(p.doc.Releases, *p.release)
		p.release = nil
	}
}

// parseReleaseHeading extracts version, date and header style from a
// "## ..." line. Bracketed headings yield Default or VersionOnly; bare
// headings yield Plain, or a "## {version}" custom template when undated.
func parseReleaseHeading(lineNo int, line string) (*semver.Version, string, HeaderFormat, *ParseIssue) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, releasePrefix))

	var rawVersion, date string
	var header HeaderFormat

	if strings.HasPrefix(rest, "[") {
		closing := strings.Index(rest, "]")
		if closing < 0 {
			return nil, "", HeaderFormat{}, &ParseIssue{
				Line:     lineNo,
				Expected: "closing ']' in release heading",
				Found:    rest,
				Fix:      "use heading format like '## [1.2.3] - 2026-01-01'",
			}
		}
		rawVersion = rest[1:closing]
		trailing := strings.TrimSpace(rest[closing+1:])
		if after, ok := strings.CutPrefix(trailing, "-"); ok {
			date = strings.TrimSpace(after)
		}
		header = VersionOnlyHeader()
		if date != "" {
			header = DefaultHeader()
		}
	} else {
		left, right, _ := strings.Cut(rest, " - ")
		rawVersion = strings.TrimSpace(left)
		date = strings.TrimSpace(right)
		header = CustomHeader(plainUndatedTemplate)
		if date != "" {
			header = PlainHeader()
		}
	}

	version, err := semver.StrictNewVersion(rawVersion)
	if err != nil {
		return nil, "", HeaderFormat{}, &ParseIssue{
			Line:     lineNo,
			Expected: "a semantic version (x.y.z)",
			Found:    rawVersion,
			Fix:      "replace with a valid version like 1.4.2",
		}
	}

	return version, date, header, nil
}

// splitLines splits text on "\n", dropping a trailing "\r" from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
