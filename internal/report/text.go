package report

import (
	"io"
	"strings"

	"github.com/nao1215/excerpt/internal/locator"
	"github.com/nao1215/excerpt/internal/pipeline"
)

// TextWriter prints the raw excerpt followed by a newline, or the
// "Not found" sentinel. For a single input nothing else is written, so the
// output is byte-for-byte the excerpt. With several inputs each block is
// preceded by a "==> path <==" header and separated by a blank line.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the outcomes as plain text.
func (w *TextWriter) Write(outcomes []pipeline.Outcome) (int, error) {
	var sb strings.Builder

	multi := len(outcomes) > 1
	for i, o := range outcomes {
		if multi {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("==> ")
			sb.WriteString(o.Path)
			sb.WriteString(" <==\n")
		}

		if o.Result.Found {
			sb.WriteString(o.Result.Excerpt)
		} else {
			sb.WriteString(locator.NotFound)
		}
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}
