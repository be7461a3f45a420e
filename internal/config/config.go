package config

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/nao1215/excerpt/internal/document"
	"github.com/nao1215/excerpt/internal/locator"
)

// Default configuration values.
// Running excerpt with no flags and no configuration file reproduces the
// chat export lookup: message_1.html, UTF-8, the message block marker and a
// 500/2000 character window.
const (
	// DefaultInput is the file read when no input is given.
	DefaultInput = "message_1.html"

	// DefaultPattern is the marker searched for.
	DefaultPattern = locator.DefaultPattern

	// DefaultEncoding is the encoding the input is decoded under.
	DefaultEncoding = document.DefaultEncoding

	// DefaultBefore is the number of characters kept before the match.
	DefaultBefore = locator.DefaultBefore

	// DefaultAfter is the number of characters kept after the match.
	DefaultAfter = locator.DefaultAfter

	// DefaultJobs is the number of inputs processed concurrently.
	// Inputs are local files, so a small number is enough to hide I/O latency.
	DefaultJobs = 4

	// DefaultLogFormat is the format of the diagnostic log on stderr.
	DefaultLogFormat = LogFormatText

	// AppName is the application name used for XDG directory paths.
	AppName = "excerpt"
)

// Config holds all configuration options for excerpt.
// It is populated from defaults, then the configuration file, then CLI
// flags, and passed down explicitly rather than kept in global state.
type Config struct {
	// Inputs are the files to search, in output order.
	Inputs []string

	// Pattern is the literal marker to search for.
	Pattern string

	// Encoding is the WHATWG label of the input encoding.
	Encoding string

	// Before is the number of characters of context kept before the match.
	Before int

	// After is the number of characters of context kept after the match.
	After int

	// Jobs is the number of inputs processed concurrently.
	Jobs int

	// Verbose enables debug logging on stderr.
	Verbose bool

	// LogFormat is LogFormatText or LogFormatJSON.
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the default search locations are used.
	ConfigFilePath string

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty the report goes to stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Inputs:    []string{DefaultInput},
		Pattern:   DefaultPattern,
		Encoding:  DefaultEncoding,
		Before:    DefaultBefore,
		After:     DefaultAfter,
		Jobs:      DefaultJobs,
		LogFormat: DefaultLogFormat,
	}
}

// XDGConfigDir returns the XDG config directory for excerpt.
// On Linux: ~/.config/excerpt
// On macOS: ~/Library/Application Support/excerpt
// On Windows: %APPDATA%\excerpt
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Apply overlays the values set in a configuration file onto c.
// Fields left unset in the file keep their current value.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}

	if len(f.Inputs) > 0 {
		c.Inputs = append([]string(nil), f.Inputs...)
	}
	if f.Pattern != "" {
		c.Pattern = f.Pattern
	}
	if f.Encoding != "" {
		c.Encoding = f.Encoding
	}
	if f.Before != nil {
		c.Before = *f.Before
	}
	if f.After != nil {
		c.After = *f.After
	}
	if f.Jobs != 0 {
		c.Jobs = f.Jobs
	}

	switch f.Format {
	case "":
	case FormatText:
		c.JSONReport, c.MarkdownReport = false, false
	case FormatJSON:
		c.JSONReport, c.MarkdownReport = true, false
	case FormatMarkdown:
		c.JSONReport, c.MarkdownReport = false, true
	default:
		return ErrUnknownFormat
	}

	return nil
}

// Validate checks if the configuration is valid.
// It returns the first problem found; fixing one often makes the others moot.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if c.Pattern == "" {
		return ErrEmptyPattern
	}

	if !utf8.ValidString(c.Pattern) {
		return ErrInvalidPattern
	}

	if c.Before < 0 || c.After < 0 {
		return ErrInvalidMargin
	}

	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return ErrUnknownLogFormat
	}

	return nil
}
