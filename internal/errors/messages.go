package errors

import "fmt"

// Common error messages for the changeloggen CLI.
// These templates ensure consistent, actionable error messages.

// ChangelogInvalid creates an error for a changelog that fails to parse or validate.
func ChangelogInvalid(path string, err error) *CLIError {
	return WrapWithMessage(err, Validation,
		fmt.Sprintf("validation failed for %s", path),
		"Fix the reported line and run 'changeloggen validate' again",
		"Run 'changeloggen new --force' to start over from an empty changelog",
	)
}

// ChangelogExists creates an error when 'new' would overwrite a file.
func ChangelogExists(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("%s already exists", path),
		"Pass --force to overwrite it",
		"Or choose another path with --file",
	)
}

// UnsupportedFormat creates an error for an unknown changelog format.
func UnsupportedFormat(format string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unsupported format '%s'; only 'markdown' is currently supported", format),
		"changeloggen new --format markdown",
	)
}

// InvalidVersion creates an error for a string that is not a semantic version.
func InvalidVersion(raw string, err error) *CLIError {
	return WrapWithMessage(err, Version,
		fmt.Sprintf("invalid version '%s'", raw),
		"Use the major.minor.patch form, e.g. 1.4.2 or 2.0.0-rc.1",
		"Do not prefix versions with 'v'",
	)
}

// ReleaseExists creates an error when a release is already present.
func ReleaseExists(err error) *CLIError {
	return Wrap(err, Version,
		"Pass --override to replace the existing release",
		"Or choose a different version with --version or --bump",
	)
}

// ReleaseNotFound creates an error when a requested release is missing.
func ReleaseNotFound(err error) *CLIError {
	return Wrap(err, Version,
		"List releases with: changeloggen show",
	)
}

// NoMatchingReleases creates an error when a show selection is empty.
func NoMatchingReleases() *CLIError {
	return NewArgumentError(
		"no matching releases found",
		"List releases with: changeloggen show",
		"Check the bounds passed to --range",
	)
}

// VersionSourceRequired creates an error when neither or both of
// --version and --bump are given.
func VersionSourceRequired() *CLIError {
	return NewArgumentErrorWithUsage(
		"use exactly one of --version or --bump",
		"changeloggen release (--version <x.y.z> | --bump major|minor|patch)",
	)
}

// InvalidBump creates an error for an unknown --bump value.
func InvalidBump(part string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("--bump must be one of: major, minor, patch (got '%s')", part),
		"changeloggen release --bump minor",
	)
}

// InvalidFlagCombination creates an error for incompatible flag combinations.
func InvalidFlagCombination(flags string, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination: %s", flags),
		reason,
		"Use 'changeloggen <command> --help' to see valid options",
	)
}

// RemoveNeedsConfirmation creates an error when remove runs without --yes.
func RemoveNeedsConfirmation() *CLIError {
	return NewArgumentErrorWithUsage(
		"remove requires --yes to apply file changes",
		"changeloggen remove --version <x.y.z> --yes",
	)
}

// MilestoneNeedsGitHub creates an error for --milestone without --github.
func MilestoneNeedsGitHub() *CLIError {
	return NewArgumentErrorWithUsage(
		"--milestone requires --github",
		"changeloggen generate --github --milestone <name>",
	)
}

// MilestoneUnsupported creates an error for milestone mode, which needs
// GitHub API access that changeloggen does not have.
func MilestoneUnsupported() *CLIError {
	return NewRuntimeError(
		"milestone mode requires GitHub API integration, which is not yet enabled",
		"Use --since and --until with tags to select commits instead",
	)
}

// GitFailure wraps an error raised while reading repository history.
func GitFailure(err error) *CLIError {
	return WrapWithMessage(err, Git,
		"git operation failed",
		"Run the command inside a git repository or pass --repo",
		"Check that --since, --until and --specific name existing revisions",
	)
}

// TemplateFailure wraps an error raised while rendering notes with a template.
func TemplateFailure(path string, err error) *CLIError {
	return WrapWithMessage(err, Template,
		fmt.Sprintf("template rendering failed for %s", path),
		"Templates use Go text/template syntax over .Sections (each with .Name and .Notes)",
	)
}

// ConfigParseError creates an error for an invalid config or mapping file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to load configuration from %s", path),
		"Check the file for syntax errors",
		"Supported formats: .yaml, .yml, .toml, .json",
	)
}

// NotificationFailed wraps a webhook delivery failure.
func NotificationFailed(err error) *CLIError {
	return WrapWithMessage(err, Network,
		"release notification failed",
		"The changelog was written; only the notification was not delivered",
		"Check notifications.slack_webhook and notifications.discord_webhook",
	)
}

// FileNotReadable wraps an error reading a file.
func FileNotReadable(path string, err error) *CLIError {
	return WrapWithMessage(err, IO,
		fmt.Sprintf("cannot read file: %s", path),
		"Check that the file exists and is readable",
	)
}

// FileNotWritable wraps an error writing a file.
func FileNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, IO,
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}
