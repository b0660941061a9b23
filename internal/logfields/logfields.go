// Package logfields holds the canonical slog attribute keys used across
// changeloggen so log output keeps a stable schema.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyFile       = "file"
	KeyVersion    = "version"
	KeySection    = "section"
	KeyCommits    = "commits"
	KeyNotes      = "notes"
	KeyReleases   = "releases"
	KeyRevision   = "revision"
	KeyRepo       = "repository"
	KeyTag        = "tag"
	KeyWebhook    = "webhook"
	KeyStatusCode = "status_code"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Commits(n int) slog.Attr         { return slog.Int(KeyCommits, n) }
func Notes(n int) slog.Attr           { return slog.Int(KeyNotes, n) }
func Releases(n int) slog.Attr        { return slog.Int(KeyReleases, n) }
func Revision(rev string) slog.Attr   { return slog.String(KeyRevision, rev) }
func Repository(path string) slog.Attr { return slog.String(KeyRepo, path) }
func Tag(name string) slog.Attr       { return slog.String(KeyTag, name) }
func Webhook(name string) slog.Attr   { return slog.String(KeyWebhook, name) }
func StatusCode(code int) slog.Attr   { return slog.Int(KeyStatusCode, code) }

// Duration records d in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

// Error records err's message, or an empty string for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
