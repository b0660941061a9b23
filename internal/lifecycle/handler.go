// Package lifecycle wraps command execution with timing and completion
// reporting, so commands do not repeat that boilerplate.
//
// The package is intentionally minimal: no event bus, no goroutines. Each
// wrapper captures the start time, runs the function, and reports the
// outcome to the handler.
package lifecycle

import (
	"log/slog"
	"time"

	"github.com/ariel-frischer/changeloggen/internal/logfields"
)

// Handler receives the outcome of a command run.
// A nil Handler is allowed and ignored by Run.
type Handler interface {
	// OnCommandComplete is called when a command finishes.
	//   - name: the command name (e.g., "release", "generate")
	//   - success: true if the command returned no error
	//   - duration: how long the command took
	OnCommandComplete(name string, success bool, duration time.Duration)
}

// Run executes fn and reports its outcome to h.
func Run(h Handler, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if h != nil {
		h.OnCommandComplete(name, err == nil, time.Since(start))
	}
	return err
}

// LogHandler reports command completion to a slog logger at debug level.
type LogHandler struct {
	Logger *slog.Logger
}

// OnCommandComplete implements Handler.
func (h LogHandler) OnCommandComplete(name string, success bool, duration time.Duration) {
	if h.Logger == nil {
		return
	}
	h.Logger.Debug("command finished",
		slog.String("command", name),
		slog.Bool("success", success),
		logfields.Duration(duration))
}
