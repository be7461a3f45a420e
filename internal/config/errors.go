package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Config.Apply() so that
// callers can use errors.Is() while still printing a readable message.
var (
	// ErrNoInput is returned when the input list has been emptied.
	ErrNoInput = errors.New("no input specified: provide at least one file")

	// ErrEmptyPattern is returned when the search marker is empty.
	ErrEmptyPattern = errors.New("empty pattern: a literal marker is required")

	// ErrInvalidPattern is returned when the search marker is not valid UTF-8.
	ErrInvalidPattern = errors.New("invalid pattern: must be valid UTF-8")

	// ErrInvalidMargin is returned when the before or after margin is negative.
	ErrInvalidMargin = errors.New("invalid margin: must be non-negative")

	// ErrInvalidJobs is returned when the number of concurrent jobs is not positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownFormat is returned when the configuration file names a
	// report format other than text, json or markdown.
	ErrUnknownFormat = errors.New("unknown report format: must be text, json or markdown")

	// ErrUnknownLogFormat is returned when the log format is neither text
	// nor json.
	ErrUnknownLogFormat = errors.New("unknown log format: must be text or json")
)
