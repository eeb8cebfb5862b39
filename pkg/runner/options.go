package runner

import (
	"io"
	"log/slog"
)

// DefaultInputBufferSize is the number of lines buffered between the reader and the lookup loop.
const DefaultInputBufferSize = 64

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInput sets the stroke source.
func WithInput(input io.Reader) Option {
	return func(r *Runner) {
		r.Input = input
	}
}

// WithHandler configures a custom OutputHandler.
func WithHandler(handler OutputHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithSignals makes Run stop on SIGINT/SIGTERM.
func WithSignals(enabled bool) Option {
	return func(r *Runner) {
		r.Signals = enabled
	}
}
