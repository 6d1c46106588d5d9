package indicators

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/cmdtest"
	pkgindicators "github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
)

func mock(format string) *appcontext.Mock {
	return &appcontext.Mock{OutputFormatFunc: func() string { return format }}
}

func TestIndicatorsCommand(t *testing.T) {
	out, _, err := cmdtest.Run(NewCommand(mock("json")))
	require.NoError(t, err)

	var all []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, pkgindicators.Len())
	assert.Equal(t, "X1", all[0]["code"])
}

func TestIndicatorsCommandOne(t *testing.T) {
	out, _, err := cmdtest.Run(NewCommand(mock("wide")), "x9")
	require.NoError(t, err)
	assert.Contains(t, out, "Akses Air Minum Layak")

	_, _, err = cmdtest.Run(NewCommand(mock("table")), "X42")
	assert.Error(t, err)
}

func TestIndicatorsCommandDimension(t *testing.T) {
	out, _, err := cmdtest.Run(NewCommand(mock("json")), "-d", "stability")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, len(pkgindicators.InDimension(pkgindicators.Stability)))

	_, _, err = cmdtest.Run(NewCommand(mock("json")), "-d", "weather")
	assert.Error(t, err)
}

func TestIndicatorsCommandMarkdown(t *testing.T) {
	out, _, err := cmdtest.Run(NewCommand(mock("markdown")))
	require.NoError(t, err)
	assert.Equal(t, len(pkgindicators.Dimensions()), strings.Count(out, "\n## "))
	assert.Contains(t, out, "## "+pkgindicators.Utilization.String())
}
