package changelog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Bump parts accepted by BumpVersion.
const (
	BumpMajor = "major"
	BumpMinor = "minor"
	BumpPatch = "patch"
)

// ParseVersion parses a strict semantic version ("1.2.3", "1.2.3-rc.1+build").
// A leading "v" is rejected; callers that accept tags should strip it first.
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return v, nil
}

// CompareVersions orders versions by SemVer precedence and then by build
// metadata, so two versions differing only in metadata are never equal.
// Returns -1, 0 or 1.
func CompareVersions(a, b *semver.Version) int {
	if c := a.Compare(b); c != 0 {
		return c
	}
	return strings.Compare(a.Metadata(), b.Metadata())
}

// SameVersion reports whether two versions are identical, metadata included.
func SameVersion(a, b *semver.Version) bool {
	return CompareVersions(a, b) == 0
}

// BumpVersion increments the given part and resets the lower parts.
// Pre-release and build metadata are always cleared.
func BumpVersion(v *semver.Version, part string) (*semver.Version, error) {
	switch part {
	case BumpMajor:
		return semver.New(v.Major()+1, 0, 0, "", ""), nil
	case BumpMinor:
		return semver.New(v.Major(), v.Minor()+1, 0, "", ""), nil
	case BumpPatch:
		return semver.New(v.Major(), v.Minor(), v.Patch()+1, "", ""), nil
	default:
		return nil, fmt.Errorf("unknown bump %q (expected: major, minor, patch)", part)
	}
}

// ZeroVersion returns 0.0.0, the base used when a document has no releases.
func ZeroVersion() *semver.Version {
	return semver.New(0, 0, 0, "", "")
}
