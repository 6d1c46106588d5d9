package cache

import "context"

type contextKey struct{}

// WithCache returns a context carrying c.
func WithCache(ctx context.Context, c *Cache) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the cache carried by ctx, or nil.
func FromContext(ctx context.Context) *Cache {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(contextKey{}).(*Cache)
	return c
}
