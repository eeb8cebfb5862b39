package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
)

// Runner reads stroke entries and reports their translations.
type Runner struct {
	// Dictionary answers the lookups. Required.
	Dictionary ports.Dictionary

	// Handler is the strategy for output. If nil, a TextHandler on stdout is used.
	Handler OutputHandler

	// Input is the line source. If nil, os.Stdin is used.
	Input io.Reader

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Signals stops the loop on SIGINT/SIGTERM.
	Signals bool
}

// Stats summarizes a completed run.
type Stats struct {
	Lines      int
	Translated int
	Declined   int
	Rejected   int
}

// resolver is implemented by dictionaries that can name the member that answered.
type resolver interface {
	Resolve(ctx context.Context, strokes []string) (string, string, error)
}

type lineResult struct {
	text string
	err  error
}

// NewRunner creates a Runner for the dictionary.
func NewRunner(dict ports.Dictionary, opts ...Option) *Runner {
	r := &Runner{
		Dictionary: dict,
		Input:      os.Stdin,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the loop until the input is exhausted or ctx is done.
// A cancelled context is not an error; lookup failures other than
// ErrNotApplicable are.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	if r.Dictionary == nil {
		return stats, fmt.Errorf("runner requires a dictionary")
	}
	handler := r.resolveHandler()
	logger := r.resolveLogger()

	if r.Signals {
		signals := NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	lines := r.pump(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Runner stopped", "reason", ctx.Err())
			return stats, nil
		case line, ok := <-lines:
			if !ok {
				return stats, nil
			}
			if line.err != nil {
				return stats, fmt.Errorf("input error: %w", line.err)
			}

			entry, err := SanitizeStroke(line.text)
			if err != nil {
				stats.Rejected++
				logger.Warn("Rejected input line", "err", err)
				if err := handler.SystemOutput(ctx, err.Error()); err != nil {
					return stats, fmt.Errorf("output error: %w", err)
				}
				continue
			}
			if entry == "" {
				continue
			}

			stats.Lines++
			res, err := r.lookup(ctx, entry, stats.Lines)
			if err != nil {
				return stats, err
			}
			if res.Applicable {
				stats.Translated++
			} else {
				stats.Declined++
			}

			if err := handler.Emit(ctx, res); err != nil {
				return stats, fmt.Errorf("output error: %w", err)
			}
		}
	}
}

func (r *Runner) lookup(ctx context.Context, entry string, n int) (Result, error) {
	res := Result{
		Line:    n,
		Input:   entry,
		Strokes: SplitStrokes(entry),
	}

	var (
		out  string
		name string
		err  error
	)
	if rv, ok := r.Dictionary.(resolver); ok {
		name, out, err = rv.Resolve(ctx, res.Strokes)
	} else {
		out, err = r.Dictionary.Lookup(ctx, res.Strokes)
	}

	switch {
	case err == nil:
		res.Applicable = true
		res.Output = out
		res.Dictionary = name
	case errors.Is(err, domain.ErrNotApplicable):
		res.Error = err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		res.Error = err.Error()
	default:
		return res, fmt.Errorf("lookup %q: %w", entry, err)
	}
	return res, nil
}

// pump reads lines in the background so Run can honour cancellation
// while a read is blocked.
func (r *Runner) pump(ctx context.Context) <-chan lineResult {
	input := r.Input
	if input == nil {
		input = os.Stdin
	}

	out := make(chan lineResult, DefaultInputBufferSize)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
		for scanner.Scan() {
			select {
			case out <- lineResult{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case out <- lineResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return out
}

func (r *Runner) resolveHandler() OutputHandler {
	if r.Handler != nil {
		return r.Handler
	}
	return NewTextHandler(os.Stdout)
}

func (r *Runner) resolveLogger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
