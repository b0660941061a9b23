// Package errors provides structured error handling for the changeloggen CLI.
// It includes categorized errors with actionable remediation guidance and
// the mapping from categories to process exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Prerequisite errors occur when required files or dependencies are missing.
	Prerequisite
	// Runtime errors occur during command execution.
	Runtime
	// Validation errors report a malformed or invalid changelog document.
	Validation
	// Git errors occur while reading repository history.
	Git
	// Template errors occur while parsing or executing a notes template.
	Template
	// Version errors are caused by invalid versions or version conflicts.
	Version
	// Network errors occur while delivering webhook notifications.
	Network
	// IO errors occur while reading or writing files.
	IO
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	case Validation:
		return "Validation Error"
	case Git:
		return "Git Error"
	case Template:
		return "Template Error"
	case Version:
		return "Version Error"
	case Network:
		return "Network Error"
	case IO:
		return "IO Error"
	default:
		return "Error"
	}
}

// Process exit codes per category. Anything uncategorized exits with ExitOther.
const (
	ExitSuccess       = 0
	ExitArgument      = 1
	ExitGit           = 2
	ExitConfiguration = 3
	ExitTemplate      = 4
	ExitVersion       = 5
	ExitNetwork       = 6
	ExitIO            = 7
	ExitValidation    = 8
	ExitOther         = 99
)

// ExitCode returns the process exit code for the category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case Argument:
		return ExitArgument
	case Git:
		return ExitGit
	case Configuration:
		return ExitConfiguration
	case Template:
		return ExitTemplate
	case Version:
		return ExitVersion
	case Network:
		return ExitNetwork
	case IO:
		return ExitIO
	case Validation:
		return ExitValidation
	default:
		return ExitOther
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, Configuration, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// New creates an error of the given category.
func New(category ErrorCategory, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return New(Argument, message, remediation...)
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	err := New(Argument, message, remediation...)
	err.Usage = usage
	return err
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return New(Configuration, message, remediation...)
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return New(Runtime, message, remediation...)
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Err:         err,
	}
}

// IsCLIError checks if an error is or wraps a CLIError.
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError finds the first CLIError in err's chain.
// Returns nil if there is none.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// ExitCode maps an error to a process exit code: 0 for nil, the category's
// code for a CLIError, ExitOther for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr.Category.ExitCode()
	}
	return ExitOther
}
