// Package log provides the slog logger used by excerpt.
//
// Inputs are chat exports, so the text excerpt is private by nature. The
// ContentHandler wraps any slog.Handler and replaces attributes that carry
// document text with a short placeholder recording only the text length.
// Offsets, paths and counts pass through untouched, which keeps debug
// output useful without leaking message content into logs.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("match located", "path", path, "excerpt", res.Excerpt)
//	// path=message_1.html excerpt="[redacted: 2519 chars]"
package log
