package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
)

// ErrDictionaryNotFound is returned when a named dictionary is not registered.
var ErrDictionaryNotFound = errors.New("dictionary not found")

// Registry manages the available dictionaries.
// Lookup walks them in registration order, the way a steno host falls back
// to its next dictionary when one reports ErrNotApplicable.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]ports.Dictionary
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]ports.Dictionary),
	}
}

// Register adds a dictionary to the registry.
// If a dictionary with the same name exists, it is replaced in place.
func (r *Registry) Register(name string, dict ports.Dictionary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = dict
}

// Get returns the named dictionary.
func (r *Registry) Get(name string) (ports.Dictionary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dict, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, name)
	}
	return dict, nil
}

// Names returns the registered names in lookup order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered dictionaries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Lookup returns the first translation produced by a registered dictionary.
// Dictionaries reporting ErrNotApplicable are skipped; any other error stops
// the walk. When every dictionary declines the result is ErrNotApplicable.
func (r *Registry) Lookup(ctx context.Context, strokes []string) (string, error) {
	_, out, err := r.Resolve(ctx, strokes)
	return out, err
}

// Resolve is Lookup that also reports which dictionary answered.
func (r *Registry) Resolve(ctx context.Context, strokes []string) (string, string, error) {
	for _, name := range r.Names() {
		if err := ctx.Err(); err != nil {
			return "", "", err
		}

		dict, err := r.Get(name)
		if err != nil {
			continue
		}

		out, err := dict.Lookup(ctx, strokes)
		if err == nil {
			return name, out, nil
		}
		if !domain.IsNotApplicable(err) {
			return name, "", fmt.Errorf("dictionary %s: %w", name, err)
		}
	}
	return "", "", domain.NotApplicable("no dictionary matched %v", strokes)
}

// LongestKey returns the largest LongestKey of the registered dictionaries.
func (r *Registry) LongestKey() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	longest := 0
	for _, dict := range r.entries {
		if n := dict.LongestKey(); n > longest {
			longest = n
		}
	}
	return longest
}
