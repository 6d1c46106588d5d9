package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey struct{}

// Field names shared by every package that logs.
const (
	FieldSource    = "source"
	FieldSnapshot  = "snapshot"
	FieldRegion    = "region"
	FieldOperation = "operation"
)

// WithLogger attaches logger to ctx. A nil logger attaches the default one.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// Ctx returns the logger attached to ctx, or the default logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithSource tags lines with the data source being read
// ("attributes", "geometry").
func WithSource(ctx context.Context, source string) context.Context {
	return with(ctx, FieldSource, source)
}

// WithSnapshot tags lines with the id of the snapshot being assembled.
func WithSnapshot(ctx context.Context, id string) context.Context {
	return with(ctx, FieldSnapshot, id)
}

// WithRegion tags lines with a province name or canonical key.
func WithRegion(ctx context.Context, region string) context.Context {
	return with(ctx, FieldRegion, region)
}

// WithOperation tags lines with the view being computed.
func WithOperation(ctx context.Context, operation string) context.Context {
	return with(ctx, FieldOperation, operation)
}

func with(ctx context.Context, key, value string) context.Context {
	logger := Ctx(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &logger)
}
