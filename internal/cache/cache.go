// Package cache memoizes source snapshots for the lifetime of a process.
// It uses patrickmn/go-cache without expiration, and singleflight so that
// concurrent first callers for a key share one load.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

// Cache holds loaded snapshots keyed by source identity.
type Cache struct {
	store  *gocache.Cache
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
	loads  atomic.Int64
}

// New creates an empty cache. Entries never expire; they are removed only by
// Delete or Clear.
func New() *Cache {
	return &Cache{
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

// Key builds a cache key from a source kind and the parts that identify it,
// such as a file path and sheet name.
func Key(kind string, parts ...string) string {
	return kind + ":" + strings.Join(parts, "|")
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set stores a value in the cache.
func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, gocache.NoExpiration)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// DeletePrefix removes every key starting with prefix and returns how many
// were removed.
func (c *Cache) DeletePrefix(prefix string) int {
	n := 0
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
			n++
		}
	}
	return n
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}

// ItemCount returns the number of items in the cache.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}

// Stats returns cache statistics.
type Stats struct {
	ItemCount int   `json:"item_count" yaml:"item_count"`
	Hits      int64 `json:"hits" yaml:"hits"`
	Misses    int64 `json:"misses" yaml:"misses"`
	Loads     int64 `json:"loads" yaml:"loads"`
}

// GetStats returns current cache statistics.
func (c *Cache) GetStats() Stats {
	return Stats{
		ItemCount: c.store.ItemCount(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Loads:     c.loads.Load(),
	}
}

// Load returns the value cached under key, calling load to produce it on a
// miss. Concurrent misses for the same key share one call. Errors are not
// cached. A nil cache calls load every time.
func Load[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	if v, ok := c.lookup(key); ok {
		return cast[T](key, v)
	}
	c.misses.Add(1)

	v, err, shared := c.group.Do(key, func() (any, error) {
		// A caller that lost the race to an earlier flight finds the value here.
		if v, ok := c.store.Get(key); ok {
			return v, nil
		}
		c.loads.Add(1)
		logging.Ctx(ctx).Debug().Str("key", key).Msg("Loading snapshot")
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store.Set(key, v, gocache.NoExpiration)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if shared {
		logging.Ctx(ctx).Trace().Str("key", key).Msg("Shared in-flight snapshot load")
	}
	return cast[T](key, v)
}

func (c *Cache) lookup(key string) (any, bool) {
	v, ok := c.store.Get(key)
	if ok {
		c.hits.Add(1)
	}
	return v, ok
}

func cast[T any](key string, v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache entry %s holds %T, not %T", key, v, zero)
	}
	return t, nil
}
