// Package app provides the application context and dependency management
// for the pangan CLI. It centralizes configuration, logging and the lazily
// created client shared by every command.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	pangan "github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/alerts"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/output"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/sources/tabular"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/join"
)

// App represents the pangan application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Notices about degraded data go here
	stderr io.Writer

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client pangan.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stderr:  os.Stderr,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, detecting one from
// the terminal when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Client returns the client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (pangan.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := pangan.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}
	a.registerHooks(c)

	a.client = c
	return c, nil
}

// registerHooks turns fallbacks and weak joins into user-facing notices.
func (a *App) registerHooks(c pangan.Client) {
	w := alerts.NewWriter(a.stderr, a.OutputFormat(), a.config.NoColor)

	c.OnFallback(func(source string, err error) {
		msg := "Attribute data unavailable, showing synthetic demonstration records"
		if source != tabular.SourceName {
			msg = "Province boundaries unavailable, the map is empty"
		}
		if werr := w.Write(alerts.NewWarning(msg).WithError(err)); werr != nil {
			a.logger.Debug().Err(werr).Msg("Failed to write alert")
		}
	})

	c.OnLowMatch(func(res *join.Result) {
		alert := alerts.NewWarning(fmt.Sprintf("Only %d of %d provinces matched a boundary", res.Stats.Matched, res.Stats.Features)).
			WithDetails("Check that the province names in the attribute file follow the usual spelling")
		if err := w.Write(alert); err != nil {
			a.logger.Debug().Err(err).Msg("Failed to write alert")
		}
	})
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []pangan.Option {
	opts := []pangan.Option{pangan.WithLogger(a.logger)}

	if a.config.AttributesPath != "" {
		opts = append(opts, pangan.WithAttributePath(a.config.AttributesPath))
	}
	if a.config.AttributesSheet != "" {
		opts = append(opts, pangan.WithAttributeSheet(a.config.AttributesSheet))
	}
	if a.config.GeometryPath != "" {
		opts = append(opts, pangan.WithGeometryPath(a.config.GeometryPath))
	} else if a.config.GeometryURL != "" {
		opts = append(opts, pangan.WithGeometryURL(a.config.GeometryURL))
	}
	if a.config.GeometryTimeout > 0 {
		opts = append(opts, pangan.WithGeometryTimeout(a.config.GeometryTimeout))
	}
	if a.config.GeometryToken != "" {
		opts = append(opts, pangan.WithGeometryToken(a.config.GeometryToken))
	}
	if a.config.SynonymsFile != "" {
		opts = append(opts, pangan.WithSynonymsFile(a.config.SynonymsFile))
	}
	if a.config.LowMatchThreshold > 0 {
		opts = append(opts, pangan.WithLowMatchThreshold(a.config.LowMatchThreshold))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c pangan.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}

// WithStderr redirects user-facing notices.
func WithStderr(w io.Writer) Option {
	return func(a *App) error {
		a.stderr = w
		return nil
	}
}
