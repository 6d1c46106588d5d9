// Package logging carries zerolog loggers for the loaders, the join and the
// CLI. Lines are tagged with the source, snapshot, region and operation they
// concern, so a fallback or a skipped row can be traced back to its input.
//
//	ctx = logging.WithSource(ctx, "geometry")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Geometry source unavailable")
//
// Console output is used when stderr is a terminal and JSON otherwise.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables read by the default logger.
const (
	EnvLevel  = "PANGAN_LOG_LEVEL"
	EnvFormat = "PANGAN_LOG_FORMAT"
)

var defaultLogger = NewLoggerFromConfig(ConfigFromEnv())

// Default returns the process-wide logger used when no logger is attached
// to a context or passed as an option.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Configure replaces the process-wide logger with one built from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// ConfigFromEnv starts from DefaultConfig and applies PANGAN_LOG_LEVEL and
// PANGAN_LOG_FORMAT. DEBUG set to anything selects the debug level when no
// level is given.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	switch {
	case os.Getenv(EnvLevel) != "":
		cfg.Level = os.Getenv(EnvLevel)
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}
	if f := os.Getenv(EnvFormat); f != "" {
		cfg.Format = f
	}
	return cfg
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
