package locator

import (
	"strings"
	"unicode/utf8"
)

// Default values target a chat export: the message block class, 500
// characters of leading context and 2000 of trailing.
const (
	// DefaultPattern is the CSS class fragment that marks a message block.
	DefaultPattern = `class="_2ph_ _a6-p"`

	// DefaultBefore is the number of characters kept before the match.
	DefaultBefore = 500

	// DefaultAfter is the number of characters kept after the match.
	DefaultAfter = 2000

	// NotFound is the sentinel reported when the pattern does not occur.
	NotFound = "Not found"
)

// Span is a half-open [Start, End) range of character offsets.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Margins holds the amount of context taken on each side of a match.
type Margins struct {
	// Before is the number of characters kept ahead of the match start.
	Before int

	// After is the number of characters kept past the match end.
	After int
}

// DefaultMargins returns the 500/2000 character margins.
func DefaultMargins() Margins {
	return Margins{Before: DefaultBefore, After: DefaultAfter}
}

// Result is the outcome of a single Locate call.
//
// When Found is false only Length is meaningful.
type Result struct {
	// Found reports whether the pattern occurs in the document.
	Found bool

	// Match is the span of the first occurrence.
	Match Span

	// Window is Match widened by the margins and clamped to [0, Length].
	Window Span

	// Excerpt is the document text covered by Window.
	Excerpt string

	// Length is the document length in characters.
	Length int
}

// Locator searches documents for one literal pattern.
// A Locator holds no per-document state and is safe for concurrent use.
type Locator struct {
	pattern      string
	patternChars int
	margins      Margins
}

// Option configures a Locator.
type Option func(*Locator)

// WithMargins overrides the default before/after context sizes.
func WithMargins(before, after int) Option {
	return func(l *Locator) {
		l.margins = Margins{Before: before, After: after}
	}
}

// New creates a Locator for the given literal pattern.
func New(pattern string, opts ...Option) (*Locator, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if !utf8.ValidString(pattern) {
		return nil, ErrInvalidPattern
	}

	l := &Locator{
		pattern:      pattern,
		patternChars: utf8.RuneCountInString(pattern),
		margins:      DefaultMargins(),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.margins.Before < 0 || l.margins.After < 0 {
		return nil, ErrNegativeMargin
	}

	return l, nil
}

// Pattern returns the literal the Locator searches for.
func (l *Locator) Pattern() string {
	return l.pattern
}

// Margins returns the configured context sizes.
func (l *Locator) Margins() Margins {
	return l.margins
}

// Locate finds the leftmost occurrence of the pattern in content and
// returns the clamped window around it.
func (l *Locator) Locate(content string) Result {
	length := utf8.RuneCountInString(content)

	idx := strings.Index(content, l.pattern)
	if idx < 0 {
		return Result{Length: length}
	}

	start := utf8.RuneCountInString(content[:idx])
	match := Span{Start: start, End: start + l.patternChars}
	window := Window(match, length, l.margins)

	// Walk outwards from the match in bytes, one rune at a time, so the
	// whole document never has to be converted to a rune slice.
	lo := backward(content, idx, match.Start-window.Start)
	hi := forward(content, idx+len(l.pattern), window.End-match.End)

	return Result{
		Found:   true,
		Match:   match,
		Window:  window,
		Excerpt: content[lo:hi],
		Length:  length,
	}
}

// Window widens match by the margins and clamps the result to [0, length].
func Window(match Span, length int, m Margins) Span {
	return Span{
		Start: max(0, match.Start-m.Before),
		End:   min(length, match.End+m.After),
	}
}

// backward moves pos left by n runes and returns the new byte offset.
func backward(s string, pos, n int) int {
	for ; n > 0 && pos > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:pos])
		pos -= size
	}
	return pos
}

// forward moves pos right by n runes and returns the new byte offset.
func forward(s string, pos, n int) int {
	for ; n > 0 && pos < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}
