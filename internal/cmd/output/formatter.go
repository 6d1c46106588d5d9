// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	md "github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/paulmach/orb/geojson"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/table"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = constants.FormatTable
	// FormatWide represents wide table output format.
	FormatWide Format = constants.FormatWide
	// FormatJSON represents JSON output format.
	FormatJSON Format = constants.FormatJSON
	// FormatYAML represents YAML output format.
	FormatYAML Format = constants.FormatYAML
	// FormatMarkdown represents markdown report output format.
	FormatMarkdown Format = constants.FormatMarkdown
	// FormatGeoJSON represents GeoJSON FeatureCollection output format.
	FormatGeoJSON Format = constants.FormatGeoJSON
)

// Data represents data formatted for table output.
type Data = table.Data

// Document is a titled sequence of tables.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one table of a Document, with optional lead text.
type Section struct {
	Heading string
	Text    string
	Data    Data
}

// FeatureCollector is implemented by values that render as GeoJSON.
type FeatureCollector interface {
	FeatureCollection() *geojson.FeatureCollection
}

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	case FormatGeoJSON:
		return FormatterFunc(formatGeoJSON)
	case FormatTable, FormatWide:
		return &TableFormatter{Wide: format == FormatWide}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct {
	Wide bool
}

// Format outputs data in table format. Values that are neither Data nor a
// Document are written as JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return f.formatTable(w, v)
	case Document:
		return f.formatDocument(w, v)
	default:
		jsonFormatter := &JSONFormatter{Indent: "  "}
		return jsonFormatter.Format(w, data)
	}
}

func (f *TableFormatter) formatDocument(w io.Writer, doc Document) error {
	if doc.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", doc.Title); err != nil {
			return err
		}
	}
	for i, s := range doc.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if s.Heading != "" {
			if _, err := fmt.Fprintln(w, s.Heading); err != nil {
				return err
			}
		}
		if s.Text != "" {
			if _, err := fmt.Fprintln(w, s.Text); err != nil {
				return err
			}
		}
		if err := f.formatTable(w, s.Data); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) formatTable(w io.Writer, data Data) error {
	config := tablewriter.Config{}

	if len(data.ColumnAlignment) > 0 {
		twAlign := make([]tw.Align, len(data.ColumnAlignment))
		for i, align := range data.ColumnAlignment {
			switch align {
			case table.AlignLeft:
				twAlign[i] = tw.AlignLeft
			case table.AlignCenter:
				twAlign[i] = tw.AlignCenter
			case table.AlignRight:
				twAlign[i] = tw.AlignRight
			default:
				twAlign[i] = tw.Skip
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: twAlign}
		config.Row.Alignment = tw.CellAlignment{PerColumn: twAlign}
	}

	tbl := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		tbl.Header(headers...)
	}

	for _, row := range data.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := tbl.Append(rowData...); err != nil {
			return err
		}
	}

	return tbl.Render()
}

// MarkdownFormatter outputs GitHub-flavored markdown tables.
type MarkdownFormatter struct{}

// Format writes Data or a Document as markdown.
func (f *MarkdownFormatter) Format(w io.Writer, data any) error {
	var doc Document
	switch v := data.(type) {
	case Data:
		doc = Document{Sections: []Section{{Data: v}}}
	case Document:
		doc = v
	default:
		return errors.NewValidationError("format", constants.FormatMarkdown,
			fmt.Sprintf("%T cannot be rendered as markdown", data))
	}

	m := md.NewMarkdown(w)
	if doc.Title != "" {
		m.H1(doc.Title)
	}
	for _, s := range doc.Sections {
		if s.Heading != "" {
			m.H2(s.Heading)
		}
		if s.Text != "" {
			m.PlainText(s.Text).LF()
		}
		m.Table(md.TableSet{
			Header: s.Data.Headers,
			Rows:   s.Data.Rows,
		})
	}
	return m.Build()
}

func formatGeoJSON(w io.Writer, data any) error {
	fc, ok := data.(FeatureCollector)
	if !ok {
		return errors.NewValidationError("format", constants.FormatGeoJSON,
			fmt.Sprintf("%T has no features", data))
	}
	out, err := json.Marshal(fc.FeatureCollection())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, FormatMarkdown, FormatGeoJSON, "":
		return format, nil
	default:
		return "", errors.NewValidationError("format", s,
			"must be one of: table, wide, json, yaml, markdown, geojson")
	}
}
