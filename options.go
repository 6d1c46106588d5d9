package pangan

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cache"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/transport"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

// options holds the client configuration.
type options struct {
	attributesPath  string
	attributesSheet string

	geometryURL     string
	geometryPath    string
	geometryTimeout time.Duration
	geometryToken   string

	synonyms      *canonical.Table
	synonymsFile  string
	lowMatchLimit int
	band          float64

	cache *cache.Cache
	log   *zerolog.Logger
}

// Option is a function that configures a Client.
type Option func(*options) error

func defaults() *options {
	return &options{
		attributesPath:  constants.DefaultAttributesPath,
		geometryURL:     constants.DefaultGeometryURL,
		geometryTimeout: constants.GeometryFetchTimeout,
		lowMatchLimit:   constants.LowMatchThreshold,
		band:            constants.NeutralBand,
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// synonymTable returns the configured table merged over the built-in one.
func (o *options) synonymTable() (*canonical.Table, error) {
	table := canonical.Default()
	if o.synonymsFile != "" {
		extra, err := canonical.LoadTable(o.synonymsFile)
		if err != nil {
			return nil, err
		}
		if table, err = table.Merge(extra); err != nil {
			return nil, err
		}
	}
	if o.synonyms != nil {
		var err error
		if table, err = table.Merge(o.synonyms); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// transport returns the client used for the geometry fetch.
func (o *options) transport() *transport.Client {
	var auth transport.Authenticator = &transport.NoAuth{}
	if o.geometryToken != "" {
		auth = &transport.BearerAuth{}
	}
	return transport.New(
		transport.WithTimeout(o.geometryTimeout),
		transport.WithAuth(auth, o.geometryToken),
	)
}

func (o *options) logger() *zerolog.Logger {
	if o.log != nil {
		return o.log
	}
	return logging.Default()
}

// WithAttributePath sets the clustering workbook or CSV export to load.
func WithAttributePath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return errors.NewValidationError("attributes_path", path, "path is required")
		}
		o.attributesPath = path
		return nil
	}
}

// WithAttributeSheet selects the worksheet holding the records.
func WithAttributeSheet(sheet string) Option {
	return func(o *options) error {
		o.attributesSheet = sheet
		return nil
	}
}

// WithGeometryURL sets the remote boundary collection.
func WithGeometryURL(url string) Option {
	return func(o *options) error {
		if url == "" {
			return errors.NewValidationError("geometry_url", url, "url is required")
		}
		o.geometryURL = url
		return nil
	}
}

// WithGeometryPath reads boundaries from a local file instead of the URL.
func WithGeometryPath(path string) Option {
	return func(o *options) error {
		o.geometryPath = path
		return nil
	}
}

// WithGeometryToken sends token as a Bearer credential when fetching the
// geometry URL. An empty token sends none.
func WithGeometryToken(token string) Option {
	return func(o *options) error {
		o.geometryToken = token
		return nil
	}
}

// WithGeometryTimeout bounds the single boundary fetch.
func WithGeometryTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return errors.NewValidationError("geometry_timeout", d, "timeout must be positive")
		}
		o.geometryTimeout = d
		return nil
	}
}

// WithSynonyms merges extra aliases over the built-in synonym table.
func WithSynonyms(table *canonical.Table) Option {
	return func(o *options) error {
		o.synonyms = table
		return nil
	}
}

// WithSynonymsFile merges a YAML synonym file over the built-in table.
func WithSynonymsFile(path string) Option {
	return func(o *options) error {
		o.synonymsFile = path
		return nil
	}
}

// WithLowMatchThreshold sets the matched-feature count below which a join is
// reported as suspicious.
func WithLowMatchThreshold(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return errors.NewValidationError("low_match_threshold", n, "threshold cannot be negative")
		}
		o.lowMatchLimit = n
		return nil
	}
}

// WithNeutralBand sets the half-width of the neutral band in standard deviations.
func WithNeutralBand(band float64) Option {
	return func(o *options) error {
		if band <= 0 {
			return errors.NewValidationError("neutral_band", band, "band must be positive")
		}
		o.band = band
		return nil
	}
}

// WithCache shares a snapshot cache between clients.
func WithCache(c *cache.Cache) Option {
	return func(o *options) error {
		o.cache = c
		return nil
	}
}

// WithLogger sets the logger carried into every load.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) error {
		o.log = l
		return nil
	}
}
