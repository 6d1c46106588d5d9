// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on one small contract
// instead of the concrete app.
package appcontext

import (
	"github.com/rs/zerolog"

	pangan "github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan"
)

// Interface defines what commands need from the application.
// The App struct from cmd/pangan/app implements it; tests use Mock.
type Interface interface {
	// Client returns the shared data client, creating it lazily.
	// Its snapshots are memoized for the lifetime of the process.
	Client() (pangan.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, ...).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
