// Package version holds the changeloggen build information.
// It has no dependencies and can be imported from any package.
package version

import "fmt"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("changeloggen %s (commit %s, built %s)", Version, Commit, BuildDate)
}
