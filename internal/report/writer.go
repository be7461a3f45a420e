package report

import (
	"io"

	"github.com/nao1215/excerpt/internal/pipeline"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the outcomes, one block per input, in order.
	// Returns the number of bytes written and any error encountered.
	Write(outcomes []pipeline.Outcome) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
