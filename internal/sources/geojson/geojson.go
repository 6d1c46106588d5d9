// Package geojson loads provincial boundary polygons from a GeoJSON
// FeatureCollection fetched over HTTP or read from disk, and detects which
// feature property carries the province name.
package geojson

import (
	"context"
	"os"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/transport"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// SourceName identifies the geometry source in errors and logs.
const SourceName = "geometry"

// Collection is the result of one geometry load.
type Collection struct {
	Features  []regions.Feature `json:"features" yaml:"features"`
	NameField string            `json:"name_field" yaml:"name_field"`
	Fields    []Field           `json:"fields" yaml:"fields"`
	Origin    string            `json:"origin" yaml:"origin"`
}

// Len returns the number of features, or 0 for a nil collection.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Features)
}

// Source reads a boundary collection.
type Source struct {
	url      string
	path     string
	timeout  time.Duration
	client   *transport.Client
	table    *canonical.Table
	priority []string
}

// Option configures a Source.
type Option func(*Source)

// WithURL sets the remote collection URL.
func WithURL(url string) Option {
	return func(s *Source) {
		s.url = url
	}
}

// WithPath sets a local collection file. A path takes precedence over a URL.
func WithPath(path string) Option {
	return func(s *Source) {
		s.path = path
	}
}

// WithTimeout sets the timeout of the single remote fetch.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClient sets the transport client used for remote fetches.
func WithClient(c *transport.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// WithTable sets the synonym table used to compute region keys.
func WithTable(table *canonical.Table) Option {
	return func(s *Source) {
		if table != nil {
			s.table = table
		}
	}
}

// WithNamePriority replaces the name field priority list.
func WithNamePriority(fields ...string) Option {
	return func(s *Source) {
		if len(fields) > 0 {
			s.priority = fields
		}
	}
}

// New creates a new geometry source.
func New(opts ...Option) *Source {
	s := &Source{
		url:      constants.DefaultGeometryURL,
		timeout:  constants.GeometryFetchTimeout,
		table:    canonical.Default(),
		priority: NameFieldPriority,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = transport.New(transport.WithTimeout(s.timeout))
	}
	return s
}

// Origin returns the path when set, otherwise the URL.
func (s *Source) Origin() string {
	if s.path != "" {
		return s.path
	}
	return s.url
}

// Fetch obtains and parses the collection.
func (s *Source) Fetch(ctx context.Context) (*Collection, error) {
	ctx = logging.WithSource(ctx, SourceName)
	logger := logging.Ctx(ctx)
	origin := s.Origin()

	var (
		data []byte
		err  error
	)
	if s.path != "" {
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, errors.WrapSource(SourceName, s.path, err)
		}
	} else {
		data, err = s.client.Fetch(ctx, SourceName, s.url)
		if err != nil {
			return nil, err
		}
	}

	c, err := s.Parse(data)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = origin
		}
		return nil, err
	}
	c.Origin = origin

	logger.Info().
		Str("origin", origin).
		Int("features", len(c.Features)).
		Str("name_field", c.NameField).
		Msg("Loaded geometry features")
	return c, nil
}

// LoadOrNil fetches the collection, returning nil when the source cannot be
// used. The cause is logged at warn level and passed to onFallback when it is
// not nil. Only context errors are returned.
func (s *Source) LoadOrNil(ctx context.Context, onFallback func(error)) (*Collection, error) {
	c, err := s.Fetch(ctx)
	if err == nil {
		return c, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	logging.Ctx(ctx).Warn().
		Err(err).
		Str("origin", s.Origin()).
		Msg("Geometry source unavailable, continuing without geometry")
	if onFallback != nil {
		onFallback(err)
	}
	return nil, nil
}

// Parse decodes a FeatureCollection document and resolves its name field.
func (s *Source) Parse(data []byte) (*Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.NewParseError("geojson", "", "invalid feature collection", err)
	}

	order, err := propertyOrder(data)
	if err != nil {
		return nil, errors.NewParseError("geojson", "", "invalid feature properties", err)
	}

	fields := describeFields(order, fc.Features)
	name, ok := DetectNameField(fields, s.priority)
	if !ok {
		return nil, errors.NewNotFoundError("name field", "in geometry properties")
	}

	c := &Collection{
		NameField: name,
		Fields:    fields,
		Features:  make([]regions.Feature, 0, len(fc.Features)),
	}
	for _, f := range fc.Features {
		raw := f.Properties[name]
		c.Features = append(c.Features, regions.Feature{
			Name:       displayValue(raw),
			Key:        s.table.CanonicalizeValue(raw),
			Geometry:   f.Geometry,
			Properties: map[string]any(f.Properties),
		})
	}
	return c, nil
}
