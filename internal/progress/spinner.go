package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerDelay = 100 * time.Millisecond

// Spinner animates while work is in progress. On non-interactive output
// it does nothing except print the final status line.
type Spinner struct {
	w       io.Writer
	symbols ProgressSymbols
	spin    *spinner.Spinner
}

// NewSpinner creates a spinner writing to w. The animation only runs when
// caps reports a TTY.
func NewSpinner(w io.Writer, caps TerminalCapabilities) *Spinner {
	symbols := SelectSymbols(caps)
	s := &Spinner{w: w, symbols: symbols}
	if caps.IsTTY {
		s.spin = spinner.New(spinner.CharSets[symbols.SpinnerSet], spinnerDelay,
			spinner.WithWriter(w), spinner.WithHiddenCursor(true))
	}
	return s
}

// Start begins animating with msg as the suffix.
func (s *Spinner) Start(msg string) {
	if s.spin == nil {
		return
	}
	s.spin.Suffix = " " + msg
	s.spin.Start()
}

// Stop halts the animation without printing a status line.
func (s *Spinner) Stop() {
	if s.spin == nil {
		return
	}
	s.spin.Stop()
}

// Success stops the spinner and prints msg with a checkmark.
func (s *Spinner) Success(msg string) {
	s.Stop()
	fmt.Fprintf(s.w, "%s %s\n", s.symbols.Checkmark, msg)
}

// Fail stops the spinner and prints msg with a failure mark.
func (s *Spinner) Fail(msg string) {
	s.Stop()
	fmt.Fprintf(s.w, "%s %s\n", s.symbols.Failure, msg)
}
