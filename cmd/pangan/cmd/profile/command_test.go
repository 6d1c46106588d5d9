package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/cmdtest"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

func TestProfileCommand(t *testing.T) {
	app := cmdtest.NewMock(cmdtest.NewClient(t), "table")

	out, _, err := cmdtest.Run(NewCommand(app))
	require.NoError(t, err)
	assert.Contains(t, out, "Symbolic cluster profile")
	assert.Contains(t, out, "Aceh, Sumatera Barat")
	assert.Contains(t, out, "Province: Papua")
	assert.Contains(t, out, "Legend")
}

func TestProfileCommandMarkdown(t *testing.T) {
	app := cmdtest.NewMock(cmdtest.NewClient(t), "markdown")

	out, _, err := cmdtest.Run(NewCommand(app))
	require.NoError(t, err)
	assert.Contains(t, out, "# Symbolic cluster profile")
	assert.Contains(t, out, "## Legend")
}

func TestAveragesCommand(t *testing.T) {
	app := cmdtest.NewMock(cmdtest.NewClient(t), "json")

	out, _, err := cmdtest.Run(NewAveragesCommand(app), "availability", "--outlier", "papua")
	require.NoError(t, err)

	var ap struct {
		Dimension string `json:"dimension"`
		Series    []struct {
			Label   string             `json:"label"`
			Outlier bool               `json:"outlier"`
			Values  map[string]float64 `json:"values"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &ap))
	assert.Equal(t, "Ketersediaan (Availability)", ap.Dimension)
	require.Len(t, ap.Series, 2)
	assert.InDelta(t, 115.0, ap.Series[0].Values["X2"], 1e-9)
	assert.True(t, ap.Series[1].Outlier)
	assert.Equal(t, "Papua", ap.Series[1].Label)

	_, _, err = cmdtest.Run(NewAveragesCommand(app), "weather")
	assert.True(t, errors.IsValidationError(err))
}

func TestDistributionCommand(t *testing.T) {
	app := cmdtest.NewMock(cmdtest.NewClient(t), "table")

	out, _, err := cmdtest.Run(NewDistributionCommand(app), "x7")
	require.NoError(t, err)
	assert.Contains(t, out, "Sumatera Barat")
	assert.Contains(t, out, "Noise (Outlier)")

	_, _, err = cmdtest.Run(NewDistributionCommand(app), "X99")
	assert.Error(t, err)
}
