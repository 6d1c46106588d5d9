// Package profile turns cluster assignments and indicator values into a
// qualitative profile of each cluster.
//
// Every indicator is standardized across all regions. A cluster's score for
// an indicator is the mean of its members' z-scores; noise regions are
// profiled individually. Scores are read as Favorable, Neutral or Unfavorable
// with the indicator's polarity, and the labels of each thematic dimension are
// combined by majority vote.
package profile

import (
	"fmt"
	"slices"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Row types.
const (
	TypeGroup          = "Group"
	typeProvinceFormat = "Province: %s"
)

// DimensionLabel is the vote of one dimension.
type DimensionLabel struct {
	Dimension indicators.Dimension `json:"dimension" yaml:"dimension"`
	Label     Label                `json:"label" yaml:"label"`
}

// Row is one line of the symbolic table: a cluster, or a single noise region.
type Row struct {
	Cluster    string                      `json:"cluster" yaml:"cluster"`
	ClusterID  int                         `json:"cluster_id" yaml:"cluster_id"`
	Type       string                      `json:"type" yaml:"type"`
	Dimensions []DimensionLabel            `json:"dimensions" yaml:"dimensions"`
	Members    []string                    `json:"members" yaml:"members"`
	Scores     map[indicators.Code]float64 `json:"scores" yaml:"scores"`
	Labels     map[indicators.Code]Label   `json:"labels" yaml:"labels"`
}

// IsNoise reports whether the row profiles a single noise region.
func (r Row) IsNoise() bool {
	return r.ClusterID == constants.NoiseClusterID
}

// Dimension returns the label of d, Neutral when d is not on the row.
func (r Row) Dimension(d indicators.Dimension) Label {
	for _, dl := range r.Dimensions {
		if dl.Dimension == d {
			return dl.Label
		}
	}
	return Neutral
}

// Table is the symbolic profile of a dataset.
type Table struct {
	Rows       []Row                       `json:"rows" yaml:"rows"`
	Indicators []indicators.Code           `json:"indicators" yaml:"indicators"`
	Dimensions []indicators.Dimension      `json:"dimensions" yaml:"dimensions"`
	Moments    map[indicators.Code]Moments `json:"moments" yaml:"moments"`
}

// Profiler builds symbolic tables.
type Profiler struct {
	band     float64
	synonyms *canonical.Table
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithBand sets the half-width of the neutral band in standard deviations.
func WithBand(band float64) Option {
	return func(p *Profiler) {
		if band > 0 {
			p.band = band
		}
	}
}

// WithTable sets the synonym table used to match outlier names in Averages.
func WithTable(t *canonical.Table) Option {
	return func(p *Profiler) {
		if t != nil {
			p.synonyms = t
		}
	}
}

// New creates a Profiler.
func New(opts ...Option) *Profiler {
	p := &Profiler{band: constants.NeutralBand, synonyms: canonical.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile builds the symbolic table of records with the default band.
func Profile(records []regions.Record) *Table {
	return New().Profile(records)
}

// Profile builds the symbolic table: one Group row per cluster in ascending
// id order, then one row per noise record in input order.
func (p *Profiler) Profile(records []regions.Record) *Table {
	std := Standardize(records)
	t := &Table{
		Indicators: std.Indicators,
		Dimensions: indicators.Dimensions(),
		Moments:    std.Moments,
	}

	for _, id := range regions.ClusterIDs(records) {
		var (
			members []string
			scores  []map[indicators.Code]float64
		)
		for i, r := range records {
			if r.ClusterID == id {
				members = append(members, r.Name)
				scores = append(scores, std.Scores[i])
			}
		}
		slices.Sort(members)

		row := p.row(regions.ClusterLabel(id), id, TypeGroup, members, meanScores(scores, std.Indicators), std.Indicators)
		t.Rows = append(t.Rows, row)
	}

	for i, r := range records {
		if !r.IsNoise() {
			continue
		}
		row := p.row(regions.NoiseLabel, r.ClusterID, fmt.Sprintf(typeProvinceFormat, r.Name),
			[]string{r.Name}, copyScores(std.Scores[i]), std.Indicators)
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (p *Profiler) row(cluster string, id int, typ string, members []string, scores map[indicators.Code]float64, present []indicators.Code) Row {
	row := Row{
		Cluster:   cluster,
		ClusterID: id,
		Type:      typ,
		Members:   members,
		Scores:    scores,
		Labels:    make(map[indicators.Code]Label, len(present)),
	}
	for _, code := range present {
		ind := indicators.MustByCode(code)
		z, ok := scores[code]
		if !ok {
			row.Labels[code] = Neutral
			continue
		}
		row.Labels[code] = ClassifyBand(z, ind.Polarity, p.band)
	}
	row.Dimensions = dimensionVotes(row.Labels)
	return row
}

// dimensionVotes votes each catalog dimension over the labels present.
func dimensionVotes(labels map[indicators.Code]Label) []DimensionLabel {
	dims := indicators.Dimensions()
	out := make([]DimensionLabel, 0, len(dims))
	for _, d := range dims {
		var votes []Label
		for _, ind := range indicators.InDimension(d) {
			if l, ok := labels[ind.Code]; ok {
				votes = append(votes, l)
			}
		}
		out = append(out, DimensionLabel{Dimension: d, Label: Vote(votes)})
	}
	return out
}

func meanScores(scores []map[indicators.Code]float64, codes []indicators.Code) map[indicators.Code]float64 {
	out := make(map[indicators.Code]float64, len(codes))
	for _, code := range codes {
		var sum float64
		var n int
		for _, s := range scores {
			if z, ok := s[code]; ok {
				sum += z
				n++
			}
		}
		if n > 0 {
			out[code] = sum / float64(n)
		}
	}
	return out
}

func copyScores(s map[indicators.Code]float64) map[indicators.Code]float64 {
	out := make(map[indicators.Code]float64, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
