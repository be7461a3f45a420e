package locator

import "errors"

var (
	// ErrEmptyPattern is returned when the marker to search for is empty.
	// An empty literal matches at offset zero of every document, which is
	// never what the caller wants.
	ErrEmptyPattern = errors.New("empty pattern: a literal marker is required")

	// ErrInvalidPattern is returned when the marker is not valid UTF-8.
	// Such a literal could match inside a multibyte character.
	ErrInvalidPattern = errors.New("invalid pattern: must be valid UTF-8")

	// ErrNegativeMargin is returned when a before or after margin is negative.
	ErrNegativeMargin = errors.New("invalid margin: must be non-negative")
)
