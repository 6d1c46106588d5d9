// Package save writes the province views to a file or writer, as an Excel
// workbook with one sheet per view or as a single JSON document.
package save

import (
	"io"
	"slices"
)

// Format is the output encoding.
type Format int

// Format constants.
const (
	FormatXLSX Format = iota
	FormatJSON
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatXLSX, FormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// Sheet names, in workbook order.
const (
	SheetRegions    = "regions"
	SheetJoined     = "joined"
	SheetSymbolic   = "symbolic"
	SheetIndicators = "indicators"
)

// Sheets returns every sheet name in workbook order.
func Sheets() []string {
	return []string{SheetRegions, SheetJoined, SheetSymbolic, SheetIndicators}
}

// Options is the configuration for save.
type Options struct {
	path   string
	writer io.Writer
	format Format
	sheets []string
}

// Path returns the path for the save options.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the format for the save options.
func (s *Options) Format() Format {
	return s.format
}

// Includes reports whether sheet is selected.
func (s *Options) Includes(sheet string) bool {
	return slices.Contains(s.sheets, sheet)
}

// Defaults returns the default save options: every sheet, xlsx.
func Defaults() *Options {
	return &Options{
		format: FormatXLSX,
		sheets: Sheets(),
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs. A writer takes precedence over a path.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}

// WithSheets restricts the output to the named sheets. Unknown names are ignored.
func WithSheets(names ...string) Option {
	return func(s *Options) {
		if len(names) == 0 {
			return
		}
		var keep []string
		for _, sheet := range Sheets() {
			if slices.Contains(names, sheet) {
				keep = append(keep, sheet)
			}
		}
		s.sheets = keep
	}
}
