package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// contentKeys lists attribute keys whose values are document text.
var contentKeys = map[string]bool{
	"excerpt": true,
	"content": true,
	"text":    true,
	"body":    true,
	"message": true,
	"snippet": true,
}

// maskFormat is the placeholder written instead of document text.
const maskFormat = "[redacted: %d chars]"

// Mask returns the placeholder for a text of the given value.
func Mask(value string) string {
	return fmt.Sprintf(maskFormat, utf8.RuneCountInString(value))
}

// ContentHandler wraps an slog.Handler and masks attributes that carry
// document text before passing records on.
type ContentHandler struct {
	handler slog.Handler
}

// NewContentHandler creates a new ContentHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewContentHandler(handler slog.Handler) *ContentHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &ContentHandler{handler: handler}
}

// Enabled reports whether the underlying handler handles records at level.
func (h *ContentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *ContentHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *ContentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.maskAttr(a)
	}
	return &ContentHandler{handler: h.handler.WithAttrs(masked)}
}

// WithGroup returns a new handler with the given group name.
func (h *ContentHandler) WithGroup(name string) slog.Handler {
	return &ContentHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursing into groups.
func (h *ContentHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		masked := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			masked[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	if !contentKeys[strings.ToLower(a.Key)] {
		return a
	}

	return slog.String(a.Key, Mask(a.Value.String()))
}

// NewLogger creates a text slog.Logger that masks document content.
// Verbose selects Debug level; otherwise only warnings and errors are shown.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewContentHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger is NewLogger with JSON output, for log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewContentHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
