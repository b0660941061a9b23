// Package changelog provides the markdown changelog document model for changeloggen.
//
// This package implements:
//   - CHANGELOG.md parsing with line-precise ParseIssue errors
//   - Structural validation (unique versions, descending SemVer order, strict mode)
//   - Canonical markdown rendering that round-trips through Parse
//   - Release maintenance (upsert, remove, converge) and version queries
//   - Terminal and HTML presentation of rendered releases
//
// The changelog file is the only persisted artifact. Parse and Markdown are
// inverse operations for every document Parse accepts, so tools can read,
// modify and rewrite the file without disturbing content they did not touch.
package changelog
