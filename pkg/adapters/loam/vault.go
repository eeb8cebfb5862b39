package loam

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/loam"

	"github.com/aretw0/stenomods/pkg/adapters/memory"
)

// WatchPattern selects the documents a vault reloads on.
const WatchPattern = "**/*.{md,json,yaml,yml}"

// DocumentMetadata is the header of a dictionary document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type DocumentMetadata struct {
	Name    string            `json:"name" mapstructure:"name"`
	Entries map[string]string `json:"entries" mapstructure:"entries"`
}

// Vault merges every document of a Loam repository into one dictionary.
// Documents without entries are ignored.
type Vault struct {
	Repo   *loam.TypedRepository[DocumentMetadata]
	name   string
	logger *slog.Logger

	mu      sync.RWMutex
	dict    *memory.Dictionary
	sources []string
}

// New creates a vault over an initialized repository. Call Reload before use.
func New(name string, repo *loam.TypedRepository[DocumentMetadata], logger *slog.Logger) *Vault {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	empty, _ := memory.NewFromEntries(name, nil)
	return &Vault{
		Repo:   repo,
		name:   name,
		logger: logger,
		dict:   empty,
	}
}

// Open initializes the repository at path and loads it.
func Open(ctx context.Context, name, path string, logger *slog.Logger) (*Vault, error) {
	repo, err := loam.Init(path, loam.WithVersioning(false), loam.WithForceTemp(false))
	if err != nil {
		return nil, fmt.Errorf("failed to open vault %s: %w", path, err)
	}
	v := New(name, loam.NewTypedRepository[DocumentMetadata](repo), logger)
	if err := v.Reload(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// Reload rebuilds the dictionary from the documents.
// A stroke defined with different translations in two documents is an error
// and leaves the previous dictionary in place.
func (v *Vault) Reload(ctx context.Context) error {
	docs, err := v.Repo.List(ctx)
	if err != nil {
		return fmt.Errorf("loam list failed: %w", err)
	}

	merged := make(map[string]string)
	owner := make(map[string]string)
	var sources []string

	for _, doc := range docs {
		if len(doc.Data.Entries) == 0 {
			continue
		}
		sources = append(sources, doc.ID)
		for stroke, text := range doc.Data.Entries {
			if prev, ok := owner[stroke]; ok && merged[stroke] != text {
				return fmt.Errorf("collision detected: stroke %q is defined in both '%s' and '%s'", stroke, prev, doc.ID)
			}
			owner[stroke] = doc.ID
			merged[stroke] = text
		}
	}

	dict, err := memory.NewFromEntries(v.name, merged)
	if err != nil {
		return err
	}
	sort.Strings(sources)

	v.mu.Lock()
	v.dict = dict
	v.sources = sources
	v.mu.Unlock()

	v.logger.Debug("Vault loaded", "name", v.name, "documents", len(sources), "entries", dict.Len())
	return nil
}

// Watch reloads the vault whenever a document changes and reports the
// changed document IDs. Failed reloads are logged and skipped.
func (v *Vault) Watch(ctx context.Context) (<-chan string, error) {
	events, err := v.Repo.Watch(ctx, WatchPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				if err := v.Reload(ctx); err != nil {
					v.logger.Warn("Vault reload failed", "name", v.name, "document", evt.ID, "err", err)
					continue
				}
				select {
				case ch <- evt.ID:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Name returns the dictionary name.
func (v *Vault) Name() string {
	return v.name
}

// Lookup returns the translation of the strokes.
func (v *Vault) Lookup(ctx context.Context, strokes []string) (string, error) {
	return v.current().Lookup(ctx, strokes)
}

// LongestKey returns the stroke count of the longest entry.
func (v *Vault) LongestKey() int {
	return v.current().LongestKey()
}

// Len returns the number of merged entries.
func (v *Vault) Len() int {
	return v.current().Len()
}

// Sources lists the documents that contributed entries.
func (v *Vault) Sources() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]string(nil), v.sources...)
}

func (v *Vault) current() *memory.Dictionary {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.dict
}

// Keys returns all stroke keys in deterministic order.
func (v *Vault) Keys() []string {
	return v.current().Keys()
}
