package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/viant/sqlite-color/colorstore"
	"github.com/viant/sqlite-color/colorutil"
)

const (
	// Unknown is the sentinel name returned (and cached) for keys that
	// have no stored record. Negative results are cached so repeated
	// lookups of an absent key do not hit storage.
	Unknown = "Unknown"

	// DefaultCacheSize bounds the exact-lookup memoization cache.
	DefaultCacheSize = 2048

	// DefaultThreshold is the similarity-scan distance bound used when
	// callers have no stronger preference.
	DefaultThreshold = 50

	// MaxComponent is the upper bound of the color component domain.
	MaxComponent = 999
)

// ErrEmptyName is returned by AddColor when the name is empty.
var ErrEmptyName = errors.New("resolver: color name must not be empty")

// Resolver wraps a colorstore.Store with a bounded memoization cache for
// exact lookups. It owns cache invalidation: every mutation purges the
// whole cache after the store write commits. Similarity queries always go
// to the live store.
//
// A Resolver is safe for concurrent use. Reads share the thread-safe LRU;
// mutation paths serialize so no reader observes a purge interleaved with
// a partially applied store write.
type Resolver struct {
	store  colorstore.Store
	cache  *lru.Cache[colorstore.Key, string]
	mu     sync.Mutex // serializes mutations with cache purge
	logger *slog.Logger
}

// New creates a Resolver over the given store.
func New(store colorstore.Store, opts ...Option) (*Resolver, error) {
	if store == nil {
		return nil, fmt.Errorf("resolver: store is nil")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cache, err := lru.New[colorstore.Key, string](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("resolver: cache size %d: %w", o.cacheSize, err)
	}
	return &Resolver{store: store, cache: cache, logger: o.logger}, nil
}

// Resolve returns the name stored at (r, g, b), or the Unknown sentinel
// when no record exists. Components outside [0, 999] are rejected with a
// *colorutil.RangeError before any storage access. Results, including
// Unknown, are cached; repeated lookups of the same key do not touch the
// store until the next mutation purges the cache.
func (rv *Resolver) Resolve(ctx context.Context, r, g, b int) (string, error) {
	if err := validateKey(r, g, b); err != nil {
		return "", err
	}
	key := colorstore.Key{R: r, G: g, B: b}
	if name, ok := rv.cache.Get(key); ok {
		rv.logger.DebugContext(ctx, "resolve cache hit", "key", colorstore.FormatKey(key), "name", name)
		return name, nil
	}

	name, err := rv.store.Get(ctx, key)
	switch {
	case errors.Is(err, colorstore.ErrNotFound):
		name = Unknown
	case err != nil:
		rv.logger.ErrorContext(ctx, "resolve store lookup failed", "key", colorstore.FormatKey(key), "error", err)
		return "", err
	}
	rv.cache.Add(key, name)
	rv.logger.DebugContext(ctx, "resolve cache miss", "key", colorstore.FormatKey(key), "name", name)
	return name, nil
}

// AddColor inserts or replaces the record at (r, g, b) and purges the
// cache. The cache is untouched when the store write fails.
func (rv *Resolver) AddColor(ctx context.Context, r, g, b int, name string) error {
	if err := validateKey(r, g, b); err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	key := colorstore.Key{R: r, G: g, B: b}

	rv.mu.Lock()
	defer rv.mu.Unlock()
	if err := rv.store.Upsert(ctx, key, name); err != nil {
		rv.logger.ErrorContext(ctx, "add color failed", "key", colorstore.FormatKey(key), "error", err)
		return err
	}
	rv.cache.Purge()
	rv.logger.DebugContext(ctx, "added color", "key", colorstore.FormatKey(key), "name", name)
	return nil
}

// ImportColors bulk-upserts a mapping of "r,g,b" keys to names, then
// purges the cache. A malformed key fails the whole import with a
// *colorstore.MalformedRecordError before any store write; a store
// failure propagates with the cache left untouched (BulkUpsert is
// transactional, so no partial application occurs).
func (rv *Resolver) ImportColors(ctx context.Context, colors map[string]string) error {
	records, err := colorstore.ParseRecords(colors)
	if err != nil {
		return err
	}

	rv.mu.Lock()
	defer rv.mu.Unlock()
	if err := rv.store.BulkUpsert(ctx, records); err != nil {
		rv.logger.ErrorContext(ctx, "import colors failed", "count", len(records), "error", err)
		return err
	}
	rv.cache.Purge()
	rv.logger.DebugContext(ctx, "imported colors", "count", len(records))
	return nil
}

// FindSimilar returns all records within threshold Manhattan distance of
// (r, g, b), ascending by distance. It always queries the live store;
// similarity results are never cached. A negative threshold yields an
// empty result.
func (rv *Resolver) FindSimilar(ctx context.Context, r, g, b, threshold int) ([]colorstore.Match, error) {
	if err := validateKey(r, g, b); err != nil {
		return nil, err
	}
	if threshold < 0 {
		return nil, nil
	}
	return rv.store.ScanSimilar(ctx, colorstore.Key{R: r, G: g, B: b}, threshold)
}

func validateKey(r, g, b int) error {
	for _, c := range []struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if c.value < 0 || c.value > MaxComponent {
			return &colorutil.RangeError{Component: c.name, Value: c.value, Min: 0, Max: MaxComponent}
		}
	}
	return nil
}
