package ports

import (
	"context"

	"github.com/aretw0/stenomods/pkg/domain"
)

// Dictionary is the host-facing lookup contract.
// Lookup returns the translation for the strokes, or an error wrapping
// domain.ErrNotApplicable when the strokes are outside the dictionary.
type Dictionary interface {
	Lookup(ctx context.Context, strokes []string) (string, error)

	// LongestKey is the maximum number of strokes a single entry spans.
	LongestKey() int
}

// Explainer is implemented by dictionaries that expose the intermediate
// values of a lookup (used by the explain command and adapters).
type Explainer interface {
	Dictionary
	Explain(ctx context.Context, strokes []string) (*domain.Resolution, error)
}
