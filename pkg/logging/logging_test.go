package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

func TestConfigure(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	path := filepath.Join(t.TempDir(), "pangan.log")
	logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: path})

	logging.Default().Info().Msg("hidden")
	logging.Ctx(context.Background()).Warn().Msg("shown")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "shown")
}

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithSource(ctx, "geometry")
	ctx = logging.WithSnapshot(ctx, "5f0c")
	ctx = logging.WithRegion(ctx, "NUSA TENGGARA BARAT")
	ctx = logging.WithOperation(ctx, "join")

	logging.Ctx(ctx).Warn().Msg("geometry unavailable")

	tl.AssertContains(t, `"source":"geometry"`)
	tl.AssertContains(t, `"snapshot":"5f0c"`)
	tl.AssertContains(t, `"region":"NUSA TENGGARA BARAT"`)
	tl.AssertContains(t, `"operation":"join"`)
	tl.AssertContains(t, "geometry unavailable")
	tl.AssertNotContains(t, `"level":"info"`)
}

func TestCtxDefaults(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	assert.Equal(t, logging.Default(), logging.Ctx(nil))
	assert.Equal(t, logging.Default(), logging.Ctx(context.Background()))

	ctx := logging.WithLogger(context.Background(), nil)
	assert.Equal(t, logging.Default(), logging.Ctx(ctx))

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	assert.Same(t, &l, logging.Ctx(logging.WithLogger(context.Background(), &l)))
}

func TestNewLoggerFromConfig(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	read := func(t *testing.T, path string) string {
		t.Helper()
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(content)
	}

	t.Run("debug adds caller", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debug.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Format: "json", Output: path})
		logger.Debug().Msg("debug line")

		out := read(t, path)
		assert.Contains(t, out, "debug line")
		assert.Contains(t, out, `"caller"`)
	})

	t.Run("console format uses short levels", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "console.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:   "info",
			Format:  "console",
			Output:  path,
			NoColor: true,
		})
		logger.Info().Str("region", "ACEH").Msg("console test")

		out := read(t, path)
		assert.Contains(t, out, "console test")
		assert.Contains(t, out, "INF")
		assert.Contains(t, out, "region=ACEH")
	})

	t.Run("warning alias filters info", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "warn.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "warning", Format: "json", Output: path})
		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		out := read(t, path)
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})

	t.Run("off disables output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "off.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "off", Format: "json", Output: path})
		logger.Error().Msg("hidden")
		assert.Empty(t, read(t, path))
	})

	t.Run("nil config falls back to defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_ = logging.NewLoggerFromConfig(nil)
		})
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(logging.EnvLevel, "")
	t.Setenv(logging.EnvFormat, "")
	t.Setenv("DEBUG", "")

	cfg := logging.ConfigFromEnv()
	assert.Equal(t, logging.DefaultConfig().Level, cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)

	t.Setenv("DEBUG", "1")
	assert.Equal(t, "debug", logging.ConfigFromEnv().Level)

	t.Setenv(logging.EnvLevel, "error")
	t.Setenv(logging.EnvFormat, "json")
	cfg = logging.ConfigFromEnv()
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}
