package changelog

import (
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *semver.Version {
	t.Helper()
	version, err := ParseVersion(s)
	require.NoError(t, err)
	return version
}

func TestUpsertRelease(t *testing.T) {
	tests := map[string]struct {
		existing []string
		insert   string
		override bool
		want     []string
		wantErr  bool
	}{
		"insert into empty": {
			insert: "1.0.0",
			want:   []string{"1.0.0"},
		},
		"insert keeps descending order": {
			existing: []string{"2.0.0", "1.0.0"},
			insert:   "1.5.0",
			want:     []string{"2.0.0", "1.5.0", "1.0.0"},
		},
		"insert resorts unsorted document": {
			existing: []string{"1.0.0", "3.0.0"},
			insert:   "2.0.0",
			want:     []string{"3.0.0", "2.0.0", "1.0.0"},
		},
		"existing without override": {
			existing: []string{"1.0.0"},
			insert:   "1.0.0",
			want:     []string{"1.0.0"},
			wantErr:  true,
		},
		"existing with override": {
			existing: []string{"2.0.0", "1.0.0"},
			insert:   "1.0.0",
			override: true,
			want:     []string{"2.0.0", "1.0.0"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := docWith(t, tt.existing...)
			release := NewRelease(mustParse(t, tt.insert), "2024-09-09")
			release.AddNote("Fixed", "replacement")

			err := d.UpsertRelease(release, tt.override)
			if tt.wantErr {
				var exists *ReleaseExistsError
				require.True(t, errors.As(err, &exists))
				assert.Equal(t, tt.insert, exists.Version)
				assert.Contains(t, err.Error(), "--override")
			} else {
				require.NoError(t, err)
				got, err := d.GetVersion(mustParse(t, tt.insert))
				require.NoError(t, err)
				assert.Equal(t, Sections{"Fixed": {"replacement"}}, got.Sections)
			}
			assert.Equal(t, tt.want, d.ListVersions())
		})
	}
}

func TestRemoveVersion(t *testing.T) {
	d := docWith(t, "3.0.0", "2.0.0", "1.0.0")

	assert.True(t, d.RemoveVersion(mustParse(t, "2.0.0")))
	assert.Equal(t, []string{"3.0.0", "1.0.0"}, d.ListVersions())

	assert.False(t, d.RemoveVersion(mustParse(t, "9.9.9")))
	assert.Equal(t, []string{"3.0.0", "1.0.0"}, d.ListVersions())
}

func TestRemoveVersion_KeepsEarlierReferences(t *testing.T) {
	d := docWith(t, "3.0.0", "2.0.0", "1.0.0")

	first, err := d.GetVersion(mustParse(t, "3.0.0"))
	require.NoError(t, err)
	snapshot := d.Releases

	require.True(t, d.RemoveVersion(mustParse(t, "3.0.0")))

	assert.Equal(t, "3.0.0", first.Version.String())
	assert.Equal(t, []string{"3.0.0", "2.0.0", "1.0.0"},
		(&Document{Releases: snapshot}).ListVersions())
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, d.ListVersions())
}

func TestGetVersion(t *testing.T) {
	d := docWith(t, "1.1.0", "1.0.0")

	t.Run("found", func(t *testing.T) {
		r, err := d.GetVersion(mustParse(t, "1.0.0"))
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", r.Version.String())
	})

	t.Run("not found lists available", func(t *testing.T) {
		_, err := d.GetVersion(mustParse(t, "2.0.0"))
		var notFound *VersionNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, []string{"1.1.0", "1.0.0"}, notFound.AvailableVersions)
		assert.Contains(t, err.Error(), "available: 1.1.0, 1.0.0")
	})

	t.Run("not found in empty document", func(t *testing.T) {
		_, err := Scaffold().GetVersion(mustParse(t, "1.0.0"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no releases")
	})
}

func TestHighestVersion(t *testing.T) {
	assert.Equal(t, "0.0.0", Scaffold().HighestVersion().String())
	assert.Equal(t, "2.0.0", docWith(t, "1.0.0", "2.0.0", "2.0.0-rc.1").HighestVersion().String())
}

func TestSelectRange(t *testing.T) {
	d := docWith(t, "0.1.0", "2.0.0", "1.0.0", "1.5.0", "3.0.0")

	tests := map[string]struct {
		a, b string
		want []string
	}{
		"inclusive bounds":  {a: "1.0.0", b: "2.0.0", want: []string{"2.0.0", "1.5.0", "1.0.0"}},
		"reversed bounds":   {a: "2.0.0", b: "1.0.0", want: []string{"2.0.0", "1.5.0", "1.0.0"}},
		"single version":    {a: "3.0.0", b: "3.0.0", want: []string{"3.0.0"}},
		"nothing in range":  {a: "4.0.0", b: "5.0.0", want: nil},
		"bounds not stored": {a: "0.5.0", b: "1.2.0", want: []string{"1.0.0"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := d.SelectRange(mustParse(t, tt.a), mustParse(t, tt.b))
			var versions []string
			for _, r := range got {
				versions = append(versions, r.Version.String())
			}
			assert.Equal(t, tt.want, versions)
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := map[string]struct {
		raw     string
		a, b    string
		wantErr bool
	}{
		"valid":         {raw: "1.0.0..2.0.0", a: "1.0.0", b: "2.0.0"},
		"prerelease":    {raw: "1.0.0-rc.1..1.0.0", a: "1.0.0-rc.1", b: "1.0.0"},
		"missing dots":  {raw: "1.0.0", wantErr: true},
		"invalid bound": {raw: "1.0..2.0.0", wantErr: true},
		"empty right":   {raw: "1.0.0..", wantErr: true},
		"triple dot":    {raw: "1.0.0...2.0.0", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b, err := ParseRange(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.a, a.String())
			assert.Equal(t, tt.b, b.String())
		})
	}
}

func TestSortDescending(t *testing.T) {
	d := docWith(t, "1.0.0", "10.0.0", "2.0.0", "2.0.0-beta")
	d.SortDescending()
	assert.Equal(t, []string{"10.0.0", "2.0.0", "2.0.0-beta", "1.0.0"}, d.ListVersions())
	require.NoError(t, d.Validate(true))
}
