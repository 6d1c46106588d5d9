// Package tabular loads per-province indicator records with their cluster
// assignment from the clustering workbook (.xlsx) or a CSV export of it.
//
// A source that is missing, unreadable or has no usable rows can be replaced
// with Synthetic data through LoadOrSynthetic, so downstream views always
// have records to work with.
package tabular

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// SourceName identifies the attribute source in errors and logs.
const SourceName = "attributes"

// Dataset is the result of one attribute load.
type Dataset struct {
	Records    []regions.Record  `json:"records" yaml:"records"`
	Indicators []indicators.Code `json:"indicators" yaml:"indicators"`
	Path       string            `json:"path,omitempty" yaml:"path,omitempty"`
	Sheet      string            `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	Synthetic  bool              `json:"synthetic" yaml:"synthetic"`
	Skipped    int               `json:"skipped" yaml:"skipped"`
}

// Source reads an attribute file.
type Source struct {
	path  string
	sheet string
	table *canonical.Table
}

// Option configures a Source.
type Option func(*Source)

// WithPath sets the attribute file path.
func WithPath(path string) Option {
	return func(s *Source) {
		s.path = path
	}
}

// WithSheet selects a worksheet by name. The first sheet is used otherwise.
func WithSheet(sheet string) Option {
	return func(s *Source) {
		s.sheet = sheet
	}
}

// WithTable sets the synonym table used to compute region keys.
func WithTable(table *canonical.Table) Option {
	return func(s *Source) {
		if table != nil {
			s.table = table
		}
	}
}

// New creates a new attribute source.
func New(opts ...Option) *Source {
	s := &Source{
		path:  constants.DefaultAttributesPath,
		table: canonical.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the configured file path.
func (s *Source) Path() string { return s.path }

// Sheet returns the configured sheet name.
func (s *Source) Sheet() string { return s.sheet }

// Fetch reads and parses the attribute file.
func (s *Source) Fetch(ctx context.Context) (*Dataset, error) {
	ctx = logging.WithSource(ctx, SourceName)
	logger := logging.Ctx(ctx)

	if _, err := os.Stat(s.path); err != nil {
		return nil, errors.WrapSource(SourceName, s.path, err)
	}

	var (
		rows  [][]string
		sheet string
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".xlsx", ".xlsm":
		rows, sheet, err = readXLSX(s.path, s.sheet)
	case ".csv", ".txt":
		rows, err = readCSV(s.path)
	default:
		return nil, errors.NewSourceError(SourceName, s.path, 0,
			fmt.Errorf("unsupported file extension %q", ext))
	}
	if err != nil {
		return nil, err
	}

	ds, err := parseRows(ctx, rows, s.table)
	if err != nil {
		return nil, errors.WrapSource(SourceName, s.path, err)
	}
	ds.Path = s.path
	ds.Sheet = sheet

	logger.Info().
		Str("path", s.path).
		Int("records", len(ds.Records)).
		Int("indicators", len(ds.Indicators)).
		Int("skipped", ds.Skipped).
		Msg("Loaded attribute records")
	return ds, nil
}

// LoadOrSynthetic fetches the source and substitutes Synthetic data when the
// source cannot be used. The cause is logged at warn level and passed to
// onFallback when it is not nil. Only context errors are returned.
func (s *Source) LoadOrSynthetic(ctx context.Context, onFallback func(error)) (*Dataset, error) {
	ds, err := s.Fetch(ctx)
	if err == nil {
		return ds, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	logging.Ctx(ctx).Warn().
		Err(err).
		Str("path", s.path).
		Msg("Attribute source unavailable, using synthetic records")
	if onFallback != nil {
		onFallback(err)
	}
	return SyntheticWith(s.table), nil
}
