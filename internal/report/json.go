package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/excerpt/internal/locator"
	"github.com/nao1215/excerpt/internal/pipeline"
)

// JSONWriter outputs outcomes as a JSON array.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Entry is the JSON form of one outcome.
//
// Match and Window are omitted when the pattern was not found; Status then
// carries the "Not found" sentinel so consumers can key on one field.
type Entry struct {
	// Path is the input file.
	Path string `json:"path"`

	// Encoding is the encoding the file was decoded under.
	Encoding string `json:"encoding"`

	// Found reports whether the pattern occurs in the file.
	Found bool `json:"found"`

	// Status is "ok" or "Not found".
	Status string `json:"status"`

	// Length is the document length in characters.
	Length int `json:"length"`

	// Match is the span of the first occurrence.
	Match *locator.Span `json:"match,omitempty"`

	// Window is the clamped span covered by Excerpt.
	Window *locator.Span `json:"window,omitempty"`

	// Excerpt is the text around the match.
	Excerpt string `json:"excerpt,omitempty"`
}

// statusOK is the Status of an entry whose pattern was found.
const statusOK = "ok"

// NewEntry converts an outcome into its JSON form.
func NewEntry(o pipeline.Outcome) Entry {
	e := Entry{
		Path:     o.Path,
		Encoding: o.Encoding,
		Found:    o.Result.Found,
		Status:   locator.NotFound,
		Length:   o.Result.Length,
	}
	if o.Result.Found {
		match, window := o.Result.Match, o.Result.Window
		e.Status = statusOK
		e.Match = &match
		e.Window = &window
		e.Excerpt = o.Result.Excerpt
	}
	return e
}

// Write outputs the outcomes as a JSON array followed by a newline.
func (w *JSONWriter) Write(outcomes []pipeline.Outcome) (int, error) {
	entries := make([]Entry, len(outcomes))
	for i, o := range outcomes {
		entries[i] = NewEntry(o)
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(entries, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(entries)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
