package changelog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRelease(t testing.TB, s string) Release {
	t.Helper()
	v, err := ParseVersion(s)
	require.NoError(t, err)
	return NewRelease(v, "")
}

func TestHeaderLine(t *testing.T) {
	tests := map[string]struct {
		header HeaderFormat
		date   string
		want   string
	}{
		"default dated":       {header: DefaultHeader(), date: "2024-01-02", want: "## [1.2.3] - 2024-01-02"},
		"default undated":     {header: DefaultHeader(), want: "## [1.2.3]"},
		"plain dated":         {header: PlainHeader(), date: "2024-01-02", want: "## 1.2.3 - 2024-01-02"},
		"plain undated":       {header: PlainHeader(), want: "## 1.2.3"},
		"version-only dated":  {header: VersionOnlyHeader(), date: "2024-01-02", want: "## [1.2.3]"},
		"version-only plain":  {header: VersionOnlyHeader(), want: "## [1.2.3]"},
		"custom dated":        {header: CustomHeader("## Release {version} ({date})"), date: "2024-01-02", want: "## Release 1.2.3 (2024-01-02)"},
		"custom undated":      {header: CustomHeader("## Release {version} ({date})"), want: "## Release 1.2.3 ()"},
		"custom repeated":     {header: CustomHeader("## {version}/{version}"), want: "## 1.2.3/1.2.3"},
		"converged marker":    {header: CustomHeader(ConvergedHeader), date: "2024-01-02", want: "## [converged]"},
		"custom bare version": {header: CustomHeader("## {version}"), want: "## 1.2.3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := testRelease(t, "1.2.3")
			r.Date = tt.date
			r.Header = tt.header
			assert.Equal(t, tt.want, r.HeaderLine())
		})
	}
}

func TestMarkdown(t *testing.T) {
	tests := map[string]struct {
		doc  func(t *testing.T) *Document
		want string
	}{
		"scaffold": {
			doc:  func(t *testing.T) *Document { return Scaffold() },
			want: "# Changelog\n",
		},
		"sections sorted and releases kept in order": {
			doc: func(t *testing.T) *Document {
				older := testRelease(t, "1.0.0")
				older.Date = "2024-01-01"
				older.AddNote("Fixed", "bug")

				newer := testRelease(t, "1.1.0")
				newer.AddNote("Other", "misc")
				newer.AddNote("Added", "b")
				newer.AddNote("Added", "a")

				// stored order is rendered as is, even when unsorted
				return &Document{Title: "Changelog", Releases: []Release{older, newer}}
			},
			want: "# Changelog\n\n" +
				"## [1.0.0] - 2024-01-01\n\n### Fixed\n- bug\n\n" +
				"## [1.1.0]\n\n### Added\n- b\n- a\n\n### Other\n- misc\n",
		},
		"release without sections": {
			doc: func(t *testing.T) *Document {
				d := Scaffold()
				d.Releases = append(d.Releases, testRelease(t, "0.1.0"))
				return d
			},
			want: "# Changelog\n\n## [0.1.0]\n",
		},
		"empty section": {
			doc: func(t *testing.T) *Document {
				r := testRelease(t, "0.1.0")
				r.Sections["Added"] = []string{}
				return &Document{Title: "Changelog", Releases: []Release{r}}
			},
			want: "# Changelog\n\n## [0.1.0]\n\n### Added\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := tt.doc(t)
			got := doc.Markdown()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, doc.Markdown(), "rendering must be deterministic")

			var buf bytes.Buffer
			require.NoError(t, RenderMarkdown(doc, &buf))
			assert.Equal(t, got, buf.String())
		})
	}
}

func TestReleaseMarkdown(t *testing.T) {
	r := testRelease(t, "2.0.0")
	r.Date = "2024-06-01"
	r.AddNote("Added", "thing")

	assert.Equal(t, "## [2.0.0] - 2024-06-01\n\n### Added\n- thing\n", ReleaseMarkdown(r))
}

func TestParseHeaderFormat(t *testing.T) {
	tests := map[string]struct {
		name     string
		want     HeaderFormat
		wantName string
	}{
		"default":      {name: "default", want: DefaultHeader(), wantName: "default"},
		"brackets":     {name: "brackets", want: DefaultHeader(), wantName: "default"},
		"plain":        {name: "plain", want: PlainHeader(), wantName: "plain"},
		"version-only": {name: "version-only", want: VersionOnlyHeader(), wantName: "version-only"},
		"custom":       {name: "## v{version} ({date})", want: CustomHeader("## v{version} ({date})"), wantName: "## v{version} ({date})"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseHeaderFormat(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantName, got.String())
		})
	}
}
