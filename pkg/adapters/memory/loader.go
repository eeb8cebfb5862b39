package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/stenomods/pkg/domain"
)

// StrokeSeparator joins the strokes of a multi-stroke entry key ("KAT/-S").
const StrokeSeparator = "/"

// Dictionary implements ports.Dictionary over a literal stroke map.
// It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	name    string
	entries map[string]string
	longest int
}

// NewFromEntries creates a dictionary from a map of stroke keys to translations.
// Keys with several strokes use StrokeSeparator between them.
func NewFromEntries(name string, entries map[string]string) (*Dictionary, error) {
	d := &Dictionary{
		name:    name,
		entries: make(map[string]string, len(entries)),
	}
	for key, value := range entries {
		strokes := splitKey(key)
		if len(strokes) == 0 {
			return nil, fmt.Errorf("dictionary %s: empty stroke key", name)
		}
		for _, s := range strokes {
			if s == "" {
				return nil, fmt.Errorf("dictionary %s: malformed stroke key %q", name, key)
			}
		}
		d.entries[strings.Join(strokes, StrokeSeparator)] = value
		if len(strokes) > d.longest {
			d.longest = len(strokes)
		}
	}
	return d, nil
}

// LoadFile reads a dictionary file (YAML or JSON, chosen by extension).
// The file is a flat object mapping stroke keys to translations.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	var entries map[string]string
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewFromEntries(name, entries)
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	return d.name
}

// Lookup returns the literal translation of the strokes.
func (d *Dictionary) Lookup(_ context.Context, strokes []string) (string, error) {
	if len(strokes) == 0 || len(strokes) > d.longest {
		return "", domain.NotApplicable("dictionary %s: %d strokes", d.name, len(strokes))
	}
	out, ok := d.entries[strings.Join(strokes, StrokeSeparator)]
	if !ok {
		return "", domain.NotApplicable("dictionary %s: no entry for %s", d.name, strings.Join(strokes, StrokeSeparator))
	}
	return out, nil
}

// LongestKey returns the stroke count of the longest entry.
func (d *Dictionary) LongestKey() int {
	return d.longest
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Keys returns all stroke keys in deterministic order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func splitKey(key string) []string {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	parts := strings.Split(key, StrokeSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Entries returns a copy of the stroke map.
func (d *Dictionary) Entries() map[string]string {
	out := make(map[string]string, len(d.entries))
	for k, v := range d.entries {
		out[k] = v
	}
	return out
}
