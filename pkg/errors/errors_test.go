package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "region",
			ID:       "ATLANTIS",
		}
		assert.Equal(t, "region ATLANTIS not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("indicator", "X99")
		wrapped := fmt.Errorf("lookup: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("synonyms", "ACEH", "canonical value is not a fixed point")
		assert.Equal(t, "validation failed for field synonyms: canonical value is not a fixed point", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty table"}
		assert.Equal(t, "validation failed: empty table", err.Error())
	})
}

func TestSourceError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := pkgerrors.NewSourceError("geometry", "https://example.test/prov.geojson", 503, nil)
		assert.Contains(t, err.Error(), "geometry")
		assert.Contains(t, err.Error(), "503")
		assert.True(t, pkgerrors.IsSourceUnavailable(err))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		err := pkgerrors.WrapSource("attributes", "missing.xlsx", os.ErrNotExist)
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.True(t, pkgerrors.IsSourceUnavailable(err))
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapSource("attributes", "x", nil))
	})
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *pkgerrors.ParseError
		expected string
	}{
		{
			name:     "with position",
			err:      &pkgerrors.ParseError{Format: "csv", File: "data.csv", Line: 3, Column: 2, Message: "bad quote"},
			expected: "parse error in csv at data.csv:3:2: bad quote",
		},
		{
			name:     "with file",
			err:      &pkgerrors.ParseError{Format: "geojson", File: "prov.geojson", Message: "not a collection"},
			expected: "parse error in geojson file prov.geojson: not a collection",
		},
		{
			name:     "bare",
			err:      &pkgerrors.ParseError{Format: "yaml", Message: "mapping expected"},
			expected: "yaml parse error: mapping expected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, pkgerrors.IsSourceUnavailable(tt.err))
		})
	}
}

func TestIOAndResourceErrors(t *testing.T) {
	ioErr := pkgerrors.WrapIO("open", "Hasil_Clustering_Final.xlsx", os.ErrNotExist)
	require.Error(t, ioErr)
	assert.Contains(t, ioErr.Error(), "open of Hasil_Clustering_Final.xlsx")
	assert.True(t, errors.Is(ioErr, os.ErrNotExist))

	resErr := pkgerrors.WrapResource("export", "workbook", "out.xlsx", ioErr)
	require.Error(t, resErr)
	assert.Contains(t, resErr.Error(), "failed to export workbook out.xlsx")
	assert.True(t, errors.Is(resErr, os.ErrNotExist))

	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("load", "attributes", "", nil))
}

func TestConfigError(t *testing.T) {
	base := errors.New("unknown format")
	err := pkgerrors.NewConfigError("output", "format must be table, json or yaml", base)
	assert.Equal(t, "configuration error in output: format must be table, json or yaml", err.Error())
	assert.True(t, errors.Is(err, base))

	bare := &pkgerrors.ConfigError{Message: "missing path"}
	assert.Equal(t, "configuration error: missing path", bare.Error())
}

func TestTimeoutAndCanceled(t *testing.T) {
	assert.True(t, pkgerrors.IsTimeout(fmt.Errorf("fetch: %w", pkgerrors.ErrTimeout)))
	assert.True(t, pkgerrors.IsCanceled(fmt.Errorf("fetch: %w", pkgerrors.ErrCanceled)))
	assert.False(t, pkgerrors.IsTimeout(pkgerrors.ErrCanceled))
}
