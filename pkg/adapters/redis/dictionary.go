package redis

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/stenomods/pkg/adapters/memory"
	"github.com/aretw0/stenomods/pkg/domain"
)

// DefaultPrefix namespaces the dictionary hashes.
const DefaultPrefix = "stenomods:dict:"

// Dictionary implements ports.Dictionary over a Redis hash.
// Each field is a stroke key ("KAT/-S") and its value the translation.
type Dictionary struct {
	client  *backend.Client
	name    string
	prefix  string
	longest atomic.Int64
}

type Option func(*Dictionary)

// WithPrefix sets the key prefix of the hash.
func WithPrefix(prefix string) Option {
	return func(d *Dictionary) {
		d.prefix = prefix
	}
}

// WithLongestKey sets the longest entry without scanning the hash.
func WithLongestKey(n int) Option {
	return func(d *Dictionary) {
		d.longest.Store(int64(n))
	}
}

// New creates a dictionary backed by a new Redis client.
func New(address, password string, db int, name string, opts ...Option) *Dictionary {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, name, opts...)
}

// NewFromClient creates a dictionary from an existing client.
func NewFromClient(client *backend.Client, name string, opts ...Option) *Dictionary {
	d := &Dictionary{
		client: client,
		name:   name,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Key returns the hash holding the entries.
func (d *Dictionary) Key() string {
	return d.prefix + d.name
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	return d.name
}

// Lookup reads the translation of the strokes.
func (d *Dictionary) Lookup(ctx context.Context, strokes []string) (string, error) {
	if len(strokes) == 0 || len(strokes) > d.LongestKey() {
		return "", domain.NotApplicable("dictionary %s: %d strokes", d.name, len(strokes))
	}

	field := strings.Join(strokes, memory.StrokeSeparator)
	val, err := d.client.HGet(ctx, d.Key(), field).Result()
	if err != nil {
		if err == backend.Nil {
			return "", domain.NotApplicable("dictionary %s: no entry for %s", d.name, field)
		}
		return "", fmt.Errorf("failed to read from redis: %w", err)
	}
	return val, nil
}

// LongestKey returns the stroke count of the longest entry seen by Sync or Import.
func (d *Dictionary) LongestKey() int {
	return int(d.longest.Load())
}

// Sync scans the hash fields to refresh LongestKey and returns the entry count.
func (d *Dictionary) Sync(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		count   int
		longest int
	)
	for {
		fields, next, err := d.client.HScan(ctx, d.Key(), cursor, "*", 512).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to scan redis: %w", err)
		}
		// HSCAN returns field, value pairs.
		for i := 0; i < len(fields); i += 2 {
			count++
			if n := strings.Count(fields[i], memory.StrokeSeparator) + 1; n > longest {
				longest = n
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	d.longest.Store(int64(longest))
	return count, nil
}

// Import writes every entry of src into the hash.
// With replace set, existing entries are dropped first.
func (d *Dictionary) Import(ctx context.Context, src *memory.Dictionary, replace bool) error {
	entries := src.Entries()
	values := make([]any, 0, len(entries)*2)
	for k, v := range entries {
		values = append(values, k, v)
	}

	pipe := d.client.TxPipeline()
	if replace {
		pipe.Del(ctx, d.Key())
	}
	if len(values) > 0 {
		pipe.HSet(ctx, d.Key(), values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to import into redis: %w", err)
	}

	if replace {
		d.longest.Store(int64(src.LongestKey()))
	} else if int64(src.LongestKey()) > d.longest.Load() {
		d.longest.Store(int64(src.LongestKey()))
	}
	return nil
}

// Close releases the client.
func (d *Dictionary) Close() error {
	return d.client.Close()
}
