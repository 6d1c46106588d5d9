package tabular

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Header names recognized for the region name and cluster columns, in
// priority order.
var (
	NameColumns    = []string{"Provinsi", "Province", "Region", "Nama", "Name"}
	ClusterColumns = []string{"Cluster", "Klaster", "cluster_id"}
)

// layout maps header positions to meaning.
type layout struct {
	name       int
	cluster    int
	indicators map[int]indicators.Code
}

func detectLayout(header []string) (layout, error) {
	l := layout{
		name:       findColumn(header, NameColumns),
		cluster:    findColumn(header, ClusterColumns),
		indicators: make(map[int]indicators.Code),
	}
	if l.name < 0 {
		return l, errors.NewValidationError("header", header,
			fmt.Sprintf("no region name column (want one of %s)", strings.Join(NameColumns, ", ")))
	}
	if l.cluster < 0 {
		return l, errors.NewValidationError("header", header,
			fmt.Sprintf("no cluster column (want one of %s)", strings.Join(ClusterColumns, ", ")))
	}

	seen := make(map[indicators.Code]bool)
	for i, h := range header {
		if i == l.name || i == l.cluster {
			continue
		}
		ind, ok := indicators.ByName(h)
		if !ok || seen[ind.Code] {
			continue
		}
		seen[ind.Code] = true
		l.indicators[i] = ind.Code
	}
	return l, nil
}

func findColumn(header []string, candidates []string) int {
	for _, want := range candidates {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
	}
	return -1
}

// parseRows converts the header row and data rows into a Dataset.
func parseRows(ctx context.Context, rows [][]string, table *canonical.Table) (*Dataset, error) {
	logger := logging.Ctx(ctx)

	if len(rows) == 0 {
		return nil, errors.NewValidationError("rows", 0, "source is empty")
	}
	l, err := detectLayout(rows[0])
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	present := make(map[indicators.Code]bool)

	for n, row := range rows[1:] {
		line := n + 2
		name := strings.TrimSpace(cell(row, l.name))
		if name == "" {
			if !blank(row) {
				logger.Debug().Int("row", line).Msg("Skipping row without region name")
				ds.Skipped++
			}
			continue
		}

		clusterID, ok := parseCluster(cell(row, l.cluster))
		if !ok {
			logging.Ctx(logging.WithRegion(ctx, name)).Warn().
				Int("row", line).
				Str("cluster", cell(row, l.cluster)).
				Msg("Skipping row with non-integer cluster")
			ds.Skipped++
			continue
		}

		rec := regions.Record{
			Name:      name,
			Key:       table.Canonicalize(name),
			ClusterID: clusterID,
			Values:    make(map[indicators.Code]float64, len(l.indicators)),
		}
		for i, code := range l.indicators {
			if v, ok := parseNumber(cell(row, i)); ok {
				rec.Values[code] = v
				present[code] = true
			}
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, errors.NewValidationError("rows", len(rows)-1, "no usable rows")
	}

	for code := range present {
		ds.Indicators = append(ds.Indicators, code)
	}
	indicators.Sort(ds.Indicators)
	return ds, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseNumber accepts finite decimal numbers. A lone comma is read as the
// decimal separator.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseCluster accepts integers, including integral floats such as "1.0"
// written by spreadsheet tools.
func parseCluster(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		return id, true
	}
	v, ok := parseNumber(s)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}
