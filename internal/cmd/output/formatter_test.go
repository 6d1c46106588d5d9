package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/table"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

func sample() Data {
	return Data{
		Headers:         []string{"Province", "Cluster"},
		Rows:            [][]string{{"Aceh", "Cluster 0"}, {"Papua", "Noise (Outlier)"}},
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignRight},
	}
}

type collector struct{}

func (collector) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.Point{95.3, 5.5})
	f.Properties["display_name"] = "Aceh"
	fc.Append(f)
	return fc
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, sample()))
	out := buf.String()
	assert.Contains(t, out, "Aceh")
	assert.Contains(t, out, "Noise (Outlier)")
}

func TestTableFormatterDocument(t *testing.T) {
	doc := Document{
		Title: "Symbolic cluster profile",
		Sections: []Section{
			{Data: sample()},
			{Heading: "Legend", Text: "two rows", Data: sample()},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, doc))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Symbolic cluster profile\n\n"))
	assert.Contains(t, out, "Legend\ntwo rows\n")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"matched": 2}))
	assert.JSONEq(t, `{"matched": 2}`, buf.String())
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Title: "Indicators", Sections: []Section{{Heading: "Stability", Data: sample()}}}
	require.NoError(t, NewFormatter(FormatMarkdown).Format(&buf, doc))
	out := buf.String()
	assert.Contains(t, out, "# Indicators")
	assert.Contains(t, out, "## Stability")
	assert.Contains(t, out, "| Aceh")

	err := NewFormatter(FormatMarkdown).Format(&buf, 42)
	assert.True(t, errors.IsValidationError(err))
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string]any{"labels": []string{"Cluster 0"}}))
	assert.Equal(t, "labels:\n- Cluster 0\n", buf.String())
}

func TestGeoJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatGeoJSON).Format(&buf, collector{}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "FeatureCollection", got["type"])

	err := NewFormatter(FormatGeoJSON).Format(&buf, sample())
	assert.True(t, errors.IsValidationError(err))
}

func TestRender(t *testing.T) {
	raw := map[string]string{"name": "Aceh"}
	tab := func(wide bool) any {
		d := sample()
		if wide {
			d.Headers = append(d.Headers, "Extra")
			d.Rows[0] = append(d.Rows[0], "wide-only")
		}
		return d
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, raw, tab))
	assert.JSONEq(t, `{"name":"Aceh"}`, buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, FormatWide, raw, tab))
	assert.Contains(t, buf.String(), "wide-only")

	buf.Reset()
	require.NoError(t, Render(&buf, FormatTable, raw, tab))
	assert.NotContains(t, buf.String(), "wide-only")

	assert.Error(t, Render(&buf, Format("csv"), raw, tab))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" Markdown ")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("csv")
	assert.True(t, errors.IsValidationError(err))

	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}
