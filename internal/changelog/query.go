package changelog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("release %s was not found (changelog has no releases)", e.Version)
	}
	return fmt.Sprintf("release %s was not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// ReleaseExistsError is returned by UpsertRelease when the version is
// already present and overriding was not requested.
type ReleaseExistsError struct {
	Version string
}

func (e *ReleaseExistsError) Error() string {
	return fmt.Sprintf("release %s already exists (use --override to replace it)", e.Version)
}

// SortDescending orders releases newest first. The sort is stable so
// releases with equal precedence keep their relative order.
func (d *Document) SortDescending() {
	sort.SliceStable(d.Releases, func(i, j int) bool {
		return CompareVersions(d.Releases[i].Version, d.Releases[j].Version) > 0
	})
}

// UpsertRelease inserts the release, or replaces the release with the same
// version when override is true, then re-sorts releases descending.
// Returns *ReleaseExistsError if the version exists and override is false.
func (d *Document) UpsertRelease(release Release, override bool) error {
	if idx := d.indexOf(release.Version); idx >= 0 {
		if !override {
			return &ReleaseExistsError{Version: release.Version.String()}
		}
		d.Releases[idx] = release
	} else {
		d.Releases = append(d.Releases, release)
	}

	d.SortDescending()
	return nil
}

// RemoveVersion drops every release with the given version.
// Returns true if anything was removed.
func (d *Document) RemoveVersion(version *semver.Version) bool {
	kept := make([]Release, 0, len(d.Releases))
	for _, r := range d.Releases {
		if !SameVersion(r.Version, version) {
			kept = append(kept, r)
		}
	}
	removed := len(kept) != len(d.Releases)
	d.Releases = kept
	return removed
}

// GetVersion retrieves the release with the given version.
// Returns VersionNotFoundError if the version doesn't exist.
func (d *Document) GetVersion(version *semver.Version) (*Release, error) {
	if idx := d.indexOf(version); idx >= 0 {
		return &d.Releases[idx], nil
	}
	return nil, &VersionNotFoundError{
		Version:           version.String(),
		AvailableVersions: d.ListVersions(),
	}
}

// ListVersions returns the version of every release in stored order.
func (d *Document) ListVersions() []string {
	versions := make([]string, len(d.Releases))
	for i, r := range d.Releases {
		versions[i] = r.Version.String()
	}
	return versions
}

// HighestVersion returns the greatest release version, or 0.0.0 when the
// document has no releases.
func (d *Document) HighestVersion() *semver.Version {
	highest := ZeroVersion()
	for _, r := range d.Releases {
		if CompareVersions(r.Version, highest) > 0 {
			highest = r.Version
		}
	}
	return highest
}

// SelectRange returns the releases whose version lies within [a, b]
// (bounds may be given in either order), sorted descending.
func (d *Document) SelectRange(a, b *semver.Version) []Release {
	low, high := a, b
	if CompareVersions(low, high) > 0 {
		low, high = high, low
	}

	var selected []Release
	for _, r := range d.Releases {
		if CompareVersions(r.Version, low) >= 0 && CompareVersions(r.Version, high) <= 0 {
			selected = append(selected, r)
		}
	}
	sortReleases(selected)
	return selected
}

// ParseRange parses a "<a>..<b>" version range.
func ParseRange(raw string) (*semver.Version, *semver.Version, error) {
	left, right, ok := strings.Cut(raw, "..")
	if !ok {
		return nil, nil, fmt.Errorf("range %q must use '<a>..<b>' format", raw)
	}
	a, err := ParseVersion(left)
	if err != nil {
		return nil, nil, err
	}
	b, err := ParseVersion(right)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (d *Document) indexOf(version *semver.Version) int {
	for i := range d.Releases {
		if SameVersion(d.Releases[i].Version, version) {
			return i
		}
	}
	return -1
}

func sortReleases(releases []Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return CompareVersions(releases[i].Version, releases[j].Version) > 0
	})
}
