package output

import (
	"io"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

// TableFunc converts a view to Data or a Document for tabular formats.
type TableFunc func(wide bool) any

// Render writes raw in format. Table, wide and markdown use tab; JSON and
// YAML marshal raw; GeoJSON requires raw to be a FeatureCollector.
func Render(w io.Writer, format Format, raw any, tab TableFunc) error {
	switch format {
	case FormatJSON, FormatYAML, FormatGeoJSON:
		return NewFormatter(format).Format(w, raw)
	case FormatMarkdown:
		return NewFormatter(format).Format(w, tab(true))
	case FormatTable, FormatWide, "":
		return NewFormatter(format).Format(w, tab(format == FormatWide))
	default:
		return errors.NewValidationError("format", string(format),
			"must be one of: table, wide, json, yaml, markdown, geojson")
	}
}
