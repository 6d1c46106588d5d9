// Package pangan is the entry point for the provincial food-security data
// engine. It loads the clustering workbook and the provincial boundary
// collection, joins them on canonical province keys and explains each cluster
// with a symbolic profile.
//
// Both sources are loaded at most once per Client and memoized until Bust is
// called. Loading never fails: a missing attribute file is replaced with
// synthetic records and an unreachable boundary source leaves the client in
// tabular-only mode.
//
// Example usage:
//
//	pg, err := pangan.New(
//	    pangan.WithAttributePath("Hasil_Clustering_Final.xlsx"),
//	    pangan.WithGeometryTimeout(10 * time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Warn when the workbook is replaced with synthetic data
//	pg.OnFallback(func(source string, err error) {
//	    log.Printf("%s unavailable: %v", source, err)
//	})
//
//	joined, err := pg.Join(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d of %d provinces matched\n", joined.Stats.Matched, joined.Stats.Features)
//
//	table, err := pg.Profile(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range table.Rows {
//	    fmt.Println(row.Type, row.Cluster, row.Members)
//	}
package pangan

import (
	"context"
	"sync"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cache"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/sources/geojson"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/sources/tabular"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/join"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/profile"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages the province datasets and the views derived from them.
type Client interface {
	Loader
	Views
	Persistence
	Hooks
}

// Loader gives access to the memoized source snapshots.
type Loader interface {
	// Snapshot loads both sources, concurrently on first use.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Attributes returns the attribute dataset, synthetic when the source is unusable.
	Attributes(ctx context.Context) (*tabular.Dataset, error)

	// Geometry returns the boundary collection, nil when the source is unusable.
	Geometry(ctx context.Context) (*geojson.Collection, error)

	// Bust drops the memoized snapshots so the next call reloads them.
	Bust()
}

// Views derives the joined and symbolic artifacts.
type Views interface {
	// Records returns the attribute records, filtered to one cluster label
	// when label is not empty.
	Records(ctx context.Context, label string) ([]regions.Record, error)

	// Region finds one record by any spelling of its province name.
	Region(ctx context.Context, name string) (*regions.Record, error)

	// Join left-joins the boundaries to the records. With no geometry the
	// result has no rows and every record is unmatched.
	Join(ctx context.Context) (*join.Result, error)

	// Profile builds the symbolic table.
	Profile(ctx context.Context) (*profile.Table, error)

	// Averages compares clusters on the raw values of one dimension.
	Averages(ctx context.Context, dimension indicators.Dimension, outliers ...string) (*profile.AverageProfile, error)

	// Distribution spreads one indicator over the cluster labels.
	Distribution(ctx context.Context, code indicators.Code) (*profile.DistributionView, error)

	// Legend lists the members of each cluster label.
	Legend(ctx context.Context) (regions.Legend, error)
}

// client is the Client implementation.
type client struct {
	mu      sync.RWMutex
	options *options
	cache   *cache.Cache
	hooks   *hooks

	synonyms   *canonical.Table
	attributes *tabular.Source
	geometry   *geojson.Source
	joiner     *join.Joiner
	profiler   *profile.Profiler
}

// New creates a Client with the given options.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	table, err := o.synonymTable()
	if err != nil {
		return nil, err
	}

	c := &client{
		options:  o,
		cache:    o.cache,
		hooks:    newHooks(),
		synonyms: table,
		attributes: tabular.New(
			tabular.WithPath(o.attributesPath),
			tabular.WithSheet(o.attributesSheet),
			tabular.WithTable(table),
		),
		geometry: geojson.New(
			geojson.WithURL(o.geometryURL),
			geojson.WithPath(o.geometryPath),
			geojson.WithTimeout(o.geometryTimeout),
			geojson.WithClient(o.transport()),
			geojson.WithTable(table),
		),
		joiner:   join.New(),
		profiler: profile.New(profile.WithBand(o.band), profile.WithTable(table)),
	}
	if c.cache == nil {
		c.cache = cache.New()
	}

	logger := o.logger()
	logger.Debug().
		Str("attributes", c.attributes.Path()).
		Str("geometry", c.geometry.Origin()).
		Int("synonyms", table.Len()).
		Msg("Created client")

	return c, nil
}

// context attaches the client's logger and cache to ctx.
func (c *client) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.options.log != nil {
		ctx = logging.WithLogger(ctx, c.options.log)
	}
	return cache.WithCache(ctx, c.cache)
}
