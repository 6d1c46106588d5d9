package pangan

import (
	"context"
	"strings"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/join"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/profile"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Compile-time interface check to ensure proper implementation.
var _ Views = (*client)(nil)

// Records returns the attribute records of one cluster label, or all of them.
func (c *client) Records(ctx context.Context, label string) ([]regions.Record, error) {
	ds, err := c.Attributes(ctx)
	if err != nil {
		return nil, err
	}
	return regions.Filter(ds.Records, label), nil
}

// Region finds the record whose canonical key matches name.
func (c *client) Region(ctx context.Context, name string) (*regions.Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("name", name, "region name is required")
	}
	ds, err := c.Attributes(ctx)
	if err != nil {
		return nil, err
	}

	key := c.synonyms.Canonicalize(name)
	for i := range ds.Records {
		if ds.Records[i].Key == key {
			r := ds.Records[i]
			return &r, nil
		}
	}
	return nil, errors.NewNotFoundError("region", name)
}

// Join left-joins the boundary features to the attribute records.
func (c *client) Join(ctx context.Context) (*join.Result, error) {
	snap, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var features []regions.Feature
	if snap.Geometry != nil {
		features = snap.Geometry.Features
	}
	result := c.joiner.Join(features, snap.Attributes.Records)

	ctx = logging.WithOperation(c.context(ctx), "join")
	logger := logging.Ctx(ctx)
	for _, key := range result.DuplicateKeys {
		logging.Ctx(logging.WithRegion(ctx, key)).Warn().Msg("Several features share one canonical key")
	}
	for _, key := range result.UnmatchedFeatures {
		logging.Ctx(logging.WithRegion(ctx, key)).Debug().Msg("Feature has no attribute record")
	}
	for _, w := range result.Warnings {
		logger.Debug().Msg(w)
	}
	logger.Info().
		Int("features", result.Stats.Features).
		Int("matched", result.Stats.Matched).
		Int("unmatched", result.Stats.Unmatched).
		Msg("Joined features to records")

	if snap.HasGeometry() && result.LowMatch(c.options.lowMatchLimit) {
		logger.Warn().
			Int("matched", result.Stats.Matched).
			Int("threshold", c.options.lowMatchLimit).
			Msg("Few features matched, check the province names")
		c.hooks.lowMatch(result)
	}
	return result, nil
}

// Profile builds the symbolic table of the attribute records.
func (c *client) Profile(ctx context.Context) (*profile.Table, error) {
	ds, err := c.Attributes(ctx)
	if err != nil {
		return nil, err
	}
	table := c.profiler.Profile(ds.Records)

	logging.Ctx(logging.WithOperation(c.context(ctx), "profile")).Debug().
		Int("rows", len(table.Rows)).
		Int("indicators", len(table.Indicators)).
		Bool("synthetic", ds.Synthetic).
		Msg("Built symbolic table")
	return table, nil
}

// Averages compares the clusters on one dimension.
func (c *client) Averages(ctx context.Context, dimension indicators.Dimension, outliers ...string) (*profile.AverageProfile, error) {
	dim, err := indicators.ParseDimension(string(dimension))
	if err != nil {
		return nil, err
	}
	ds, err := c.Attributes(ctx)
	if err != nil {
		return nil, err
	}

	ap := c.profiler.Averages(ds.Records, dim, outliers...)

	logging.Ctx(logging.WithOperation(c.context(ctx), "averages")).Debug().
		Str("dimension", dim.Short()).
		Int("series", len(ap.Series)).
		Msg("Computed cluster averages")
	return ap, nil
}

// Distribution spreads one indicator over the cluster labels.
func (c *client) Distribution(ctx context.Context, code indicators.Code) (*profile.DistributionView, error) {
	ind, err := indicators.Lookup(string(code))
	if err != nil {
		return nil, err
	}
	ds, err := c.Attributes(ctx)
	if err != nil {
		return nil, err
	}
	return profile.Distribution(ds.Records, ind.Code), nil
}

// Legend groups the record names by cluster label.
func (c *client) Legend(ctx context.Context) (regions.Legend, error) {
	ds, err := c.Attributes(ctx)
	if err != nil {
		return regions.Legend{}, err
	}
	return regions.NewLegend(ds.Records), nil
}
