package spatial

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/cmdtest"
)

func TestJoinCommand(t *testing.T) {
	app := cmdtest.NewMock(cmdtest.NewClient(t), "table")

	out, _, err := cmdtest.Run(NewCommand(app))
	require.NoError(t, err)
	assert.Contains(t, out, "Aceh")
	assert.Contains(t, out, "No Data")
}

func TestJoinCommandSummary(t *testing.T) {
	app := cmdtest.NewMock(cmdtest.NewClient(t), "json")

	out, _, err := cmdtest.Run(NewCommand(app), "--summary")
	require.NoError(t, err)

	var stats map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats["features"])
	assert.Equal(t, 2, stats["matched"])
	assert.Equal(t, 1, stats["unmatched"])
}

func TestJoinCommandGeoJSON(t *testing.T) {
	app := cmdtest.NewMock(cmdtest.NewClient(t), "geojson")

	out, _, err := cmdtest.Run(NewCommand(app))
	require.NoError(t, err)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "Aceh", fc.Features[0].Properties["display_name"])
	assert.Equal(t, "BALI", fc.Features[2].Properties["display_name"])
}
