package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/excerpt/internal/document"
	"github.com/nao1215/excerpt/internal/locator"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of inputs processed at once when no
// WithConcurrency option is given.
const DefaultConcurrency = 4

// Outcome is the located result for one input file.
type Outcome struct {
	// Path is the input file.
	Path string

	// Encoding is the canonical name of the encoding the file was decoded under.
	Encoding string

	// Result is the locator result for the file content.
	Result locator.Result
}

// loadFunc loads a document; replaced in tests.
type loadFunc func(path, encoding string) (*document.Document, error)

// Runner applies a Locator to a list of input files.
type Runner struct {
	locator     *locator.Locator
	encoding    string
	concurrency int
	logger      *slog.Logger
	load        loadFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets the maximum number of inputs processed at once.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithEncoding sets the encoding label inputs are decoded under.
func WithEncoding(label string) Option {
	return func(r *Runner) {
		r.encoding = label
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner around loc.
func New(loc *locator.Locator, opts ...Option) *Runner {
	r := &Runner{
		locator:     loc,
		encoding:    document.DefaultEncoding,
		concurrency: DefaultConcurrency,
		load:        document.Load,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run loads and searches every input and returns one Outcome per input,
// in input order. Any load error aborts the run.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Outcome, error) {
	r.logger.Debug("starting run",
		"inputs", len(inputs),
		"concurrency", r.concurrency,
		"pattern", r.locator.Pattern(),
	)
	startTime := time.Now()

	// Each goroutine writes only its own slot, so no lock is needed.
	outcomes := make([]Outcome, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, path := range inputs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			doc, err := r.load(path, r.encoding)
			if err != nil {
				return err
			}

			res := r.locator.Locate(doc.Content)
			outcomes[i] = Outcome{
				Path:     doc.Path,
				Encoding: doc.Encoding,
				Result:   res,
			}

			r.logger.Debug("input processed",
				"path", doc.Path,
				"found", res.Found,
				"match_start", res.Match.Start,
				"window_start", res.Window.Start,
				"window_end", res.Window.End,
				"window_len", res.Window.Len(),
				"excerpt", res.Excerpt,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Debug("run complete",
		"inputs", len(inputs),
		"elapsed", time.Since(startTime),
	)

	return outcomes, nil
}
