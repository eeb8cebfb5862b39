package runner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// DefaultFallback is printed for entries no dictionary accepts.
const DefaultFallback = "-"

// TextHandler writes one plain line per result.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer
	Fallback string
	Verbose  bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerFallback sets the marker printed for unmatched entries.
func WithTextHandlerFallback(fallback string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Fallback = fallback
	}
}

// WithTextHandlerVerbose prefixes each line with its input entry.
func WithTextHandlerVerbose(verbose bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Verbose = verbose
	}
}

// NewTextHandler creates a handler for standard text output.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:   w,
		Fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Emit(ctx context.Context, res Result) error {
	output := h.Fallback
	if res.Applicable {
		output = res.Output
		if h.Renderer != nil {
			if rendered, err := h.Renderer(output); err == nil {
				output = rendered
			}
		}
	}

	var err error
	if h.Verbose {
		_, err = fmt.Fprintf(h.Writer, "%s\t%s\n", res.Input, output)
	} else {
		_, err = fmt.Fprintln(h.Writer, output)
	}
	return err
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}
