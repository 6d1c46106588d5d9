package table

import (
	"fmt"
	"strconv"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/join"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/profile"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// RecordsToTableData lists records with their cluster. The wide form adds a
// column per indicator in codes.
func RecordsToTableData(records []regions.Record, codes []indicators.Code, wide bool) Data {
	headers := []string{"Province", "Key", "Cluster"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft}
	if wide {
		for _, code := range codes {
			headers = append(headers, string(code))
			align = append(align, AlignRight)
		}
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{r.Name, r.Key, r.ClusterLabel()}
		if wide {
			for _, code := range codes {
				row = append(row, valueCell(r, code))
			}
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// RegionToTableData shows one record as indicator/value pairs.
func RegionToTableData(r regions.Record) Data {
	rows := [][]string{
		{"Province", r.Name, ""},
		{"Key", r.Key, ""},
		{"Cluster", r.ClusterLabel(), ""},
	}
	for _, ind := range indicators.All() {
		v, ok := r.Value(ind.Code)
		if !ok {
			continue
		}
		rows = append(rows, []string{ind.Label(), FormatValue(v), ind.Unit})
	}
	return Data{
		Headers:         []string{"Property", "Value", "Unit"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}

// JoinToTableData lists one row per feature. The wide form adds the raw
// feature name and the source of the display name.
func JoinToTableData(res *join.Result, wide bool) Data {
	headers := []string{"Key", "Province", "Cluster"}
	if wide {
		headers = append(headers, "Feature Name", "Name Source", "Indicators")
	}

	rows := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		cells := []string{row.Key, row.DisplayName, row.ClusterLabel}
		if wide {
			n := 0
			if row.Record != nil {
				n = len(row.Record.Values)
			}
			cells = append(cells, row.Name, orMissing(row.DisplaySource), strconv.Itoa(n))
		}
		rows = append(rows, cells)
	}
	return Data{Headers: headers, Rows: rows}
}

// JoinStatsToTableData summarizes a join.
func JoinStatsToTableData(res *join.Result) Data {
	records := make([]string, 0, len(res.UnmatchedRecords))
	for _, r := range res.UnmatchedRecords {
		records = append(records, r.Name)
	}
	return Data{
		Headers: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Features", strconv.Itoa(res.Stats.Features)},
			{"Matched", strconv.Itoa(res.Stats.Matched)},
			{"Unmatched features", JoinNames(res.UnmatchedFeatures)},
			{"Records without geometry", JoinNames(records)},
			{"Duplicate keys", JoinNames(res.DuplicateKeys)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// ProfileToTableData renders the symbolic table with one column per
// dimension. The wide form adds a column per indicator.
func ProfileToTableData(t *profile.Table, wide bool) Data {
	headers := []string{"Cluster", "Type"}
	for _, d := range t.Dimensions {
		headers = append(headers, d.String())
	}
	if wide {
		for _, code := range t.Indicators {
			headers = append(headers, string(code))
		}
	}
	headers = append(headers, "Members")

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := []string{row.Cluster, row.Type}
		for _, d := range t.Dimensions {
			cells = append(cells, row.Dimension(d).Symbol())
		}
		if wide {
			for _, code := range t.Indicators {
				l, ok := row.Labels[code]
				if !ok {
					cells = append(cells, Missing)
					continue
				}
				cells = append(cells, fmt.Sprintf("%s %s", l.Symbol(), FormatScore(row.Scores[code])))
			}
		}
		cells = append(cells, JoinNames(row.Members))
		rows = append(rows, cells)
	}
	return Data{Headers: headers, Rows: rows}
}

// LabelLegendToTableData explains the label symbols.
func LabelLegendToTableData(band float64) Data {
	return Data{
		Headers: []string{"Symbol", "Label", "Meaning"},
		Rows: [][]string{
			{profile.Favorable.Symbol(), profile.Favorable.String(),
				fmt.Sprintf("at least %s std better than the national mean", FormatScore(band))},
			{profile.Neutral.Symbol(), profile.Neutral.String(),
				fmt.Sprintf("within %s std of the national mean", FormatScore(band))},
			{profile.Unfavorable.Symbol(), profile.Unfavorable.String(),
				fmt.Sprintf("at least %s std worse than the national mean", FormatScore(band))},
		},
	}
}

// AveragesToTableData lists one row per series and one column per indicator.
func AveragesToTableData(ap *profile.AverageProfile) Data {
	headers := []string{"Series"}
	align := []Align{AlignLeft}
	for _, code := range ap.Indicators {
		headers = append(headers, indicators.MustByCode(code).Label())
		align = append(align, AlignRight)
	}

	rows := make([][]string, 0, len(ap.Series))
	for _, s := range ap.Series {
		label := s.Label
		if s.Outlier {
			label += " (outlier)"
		}
		cells := []string{label}
		for _, code := range ap.Indicators {
			v, ok := s.Values[code]
			if !ok {
				cells = append(cells, Missing)
				continue
			}
			cells = append(cells, FormatValue(v))
		}
		rows = append(rows, cells)
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// DistributionToTableData lists every point under its cluster label.
func DistributionToTableData(dv *profile.DistributionView) Data {
	var rows [][]string
	for _, g := range dv.Groups {
		for _, p := range g.Points {
			rows = append(rows, []string{g.Label, p.Name, FormatValue(p.Value)})
		}
	}
	return Data{
		Headers:         []string{"Cluster", "Province", indicators.MustByCode(dv.Indicator).Label()},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight},
	}
}

// IndicatorsToTableData lists catalog entries. The wide form adds the
// definition text.
func IndicatorsToTableData(inds []indicators.Indicator, wide bool) Data {
	headers := []string{"Code", "Name", "Unit", "Polarity", "Dimension"}
	if wide {
		headers = append(headers, "Definition")
	}

	rows := make([][]string, 0, len(inds))
	for _, ind := range inds {
		cells := []string{string(ind.Code), ind.Name, ind.Unit, ind.Polarity.String(), ind.Dimension.String()}
		if wide {
			cells = append(cells, ind.Definition)
		}
		rows = append(rows, cells)
	}
	return Data{Headers: headers, Rows: rows}
}

// LegendToTableData lists the members of each cluster label.
func LegendToTableData(l regions.Legend) Data {
	rows := make([][]string, 0, len(l.Labels))
	for _, label := range l.Labels {
		members := l.Members[label]
		rows = append(rows, []string{label, strconv.Itoa(len(members)), JoinNames(members)})
	}
	return Data{
		Headers:         []string{"Cluster", "Count", "Members"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}

func valueCell(r regions.Record, code indicators.Code) string {
	v, ok := r.Value(code)
	if !ok {
		return Missing
	}
	return FormatValue(v)
}

func orMissing(s string) string {
	if s == "" {
		return Missing
	}
	return s
}
