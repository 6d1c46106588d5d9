package pangan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cache"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/sources/geojson"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/sources/tabular"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Loader = (*client)(nil)

// Snapshot is one immutable load of both sources. Geometry is nil when the
// boundary source was unusable.
type Snapshot struct {
	ID         uuid.UUID           `json:"id" yaml:"id"`
	LoadedAt   time.Time           `json:"loaded_at" yaml:"loaded_at"`
	Attributes *tabular.Dataset    `json:"attributes" yaml:"attributes"`
	Geometry   *geojson.Collection `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}

// HasGeometry reports whether boundaries are available.
func (s *Snapshot) HasGeometry() bool {
	return s != nil && s.Geometry.Len() > 0
}

func (c *client) attributesKey() string {
	return cache.Key(tabular.SourceName, c.attributes.Path(), c.attributes.Sheet())
}

func (c *client) geometryKey() string {
	return cache.Key(geojson.SourceName, c.geometry.Origin())
}

func (c *client) snapshotKey() string {
	return cache.Key("snapshot", c.attributesKey(), c.geometryKey())
}

// Snapshot loads both sources, concurrently when neither is cached yet.
func (c *client) Snapshot(ctx context.Context) (*Snapshot, error) {
	ev := &events{}
	snap, err := c.lockedSnapshot(c.context(ctx), ev)
	ev.fire(c.hooks)
	return snap, err
}

func (c *client) lockedSnapshot(ctx context.Context, ev *events) (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Load(ctx, c.cache, c.snapshotKey(), func(ctx context.Context) (*Snapshot, error) {
		snap := &Snapshot{ID: uuid.New()}
		ctx = logging.WithSnapshot(ctx, snap.ID.String())

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			ds, err := c.loadAttributes(gctx, ev)
			snap.Attributes = ds
			return err
		})
		g.Go(func() error {
			col, err := c.loadGeometry(gctx, ev)
			snap.Geometry = col
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		snap.LoadedAt = time.Now()

		logging.Ctx(ctx).Info().
			Int("records", len(snap.Attributes.Records)).
			Bool("synthetic", snap.Attributes.Synthetic).
			Int("features", snap.Geometry.Len()).
			Msg("Loaded snapshot")
		ev.loaded(snap)
		return snap, nil
	})
}

// Attributes returns the attribute dataset.
func (c *client) Attributes(ctx context.Context) (*tabular.Dataset, error) {
	ev := &events{}
	ctx = c.context(ctx)
	c.mu.RLock()
	ds, err := c.loadAttributes(ctx, ev)
	c.mu.RUnlock()
	ev.fire(c.hooks)
	return ds, err
}

// Geometry returns the boundary collection, nil without error when the
// source is unusable.
func (c *client) Geometry(ctx context.Context) (*geojson.Collection, error) {
	ev := &events{}
	ctx = c.context(ctx)
	c.mu.RLock()
	col, err := c.loadGeometry(ctx, ev)
	c.mu.RUnlock()
	ev.fire(c.hooks)
	return col, err
}

// Bust drops the snapshots of this client's sources.
func (c *client) Bust() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Delete(c.snapshotKey())
	c.cache.Delete(c.attributesKey())
	c.cache.Delete(c.geometryKey())
	c.options.logger().Debug().Msg("Dropped cached snapshots")
}

// loadAttributes caches the dataset, synthetic or not. Only context errors
// are returned.
func (c *client) loadAttributes(ctx context.Context, ev *events) (*tabular.Dataset, error) {
	return cache.Load(ctx, c.cache, c.attributesKey(), func(ctx context.Context) (*tabular.Dataset, error) {
		return c.attributes.LoadOrSynthetic(ctx, func(err error) {
			ev.fallback(tabular.SourceName, err)
		})
	})
}

// loadGeometry caches the collection, including a nil one for an unusable
// source. Only context errors are returned.
func (c *client) loadGeometry(ctx context.Context, ev *events) (*geojson.Collection, error) {
	return cache.Load(ctx, c.cache, c.geometryKey(), func(ctx context.Context) (*geojson.Collection, error) {
		return c.geometry.LoadOrNil(ctx, func(err error) {
			ev.fallback(geojson.SourceName, err)
		})
	})
}
