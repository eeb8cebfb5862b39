package runner

import "context"

// Result is the outcome of one input line.
type Result struct {
	Line       int      `json:"line"`
	Input      string   `json:"input"`
	Strokes    []string `json:"strokes"`
	Dictionary string   `json:"dictionary,omitempty"`
	Output     string   `json:"output,omitempty"`
	Applicable bool     `json:"applicable"`
	Error      string   `json:"error,omitempty"`
}

// OutputHandler defines the strategy for presenting results.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type OutputHandler interface {
	// Emit presents the result of one lookup.
	Emit(ctx context.Context, res Result) error

	// SystemOutput presents a meta-message (e.g. a rejected input line).
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms an output command before it is written.
// This allows terminal styling without coupling the runner to a TUI library.
type ContentRenderer func(string) (string, error)
