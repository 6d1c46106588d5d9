package pangan

import (
	"context"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/save"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence writes the derived views.
type Persistence interface {
	// Save writes the records, the join, the symbolic table and the
	// indicator catalog, by default as an xlsx workbook.
	Save(ctx context.Context, opts ...save.Option) error
}

// Save builds every view from the current snapshot and writes them.
func (c *client) Save(ctx context.Context, opts ...save.Option) error {
	snap, err := c.Snapshot(ctx)
	if err != nil {
		return errors.WrapResource("load", "snapshot", "", err)
	}

	views := save.Views{
		Records:    snap.Attributes.Records,
		Indicators: snap.Attributes.Indicators,
		Profile:    c.profiler.Profile(snap.Attributes.Records),
	}
	if snap.HasGeometry() {
		if views.Join, err = c.Join(ctx); err != nil {
			return errors.WrapResource("join", "snapshot", snap.ID.String(), err)
		}
	}

	if err := save.Save(views, opts...); err != nil {
		return err
	}
	c.options.logger().Info().
		Str("snapshot", snap.ID.String()).
		Int("records", len(views.Records)).
		Msg("Saved views")
	return nil
}
