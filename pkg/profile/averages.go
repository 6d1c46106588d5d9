package profile

import (
	"strings"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Series is one bar group of an average profile: a cluster mean or a single
// outlier's own values.
type Series struct {
	Label   string                      `json:"label" yaml:"label"`
	Outlier bool                        `json:"outlier" yaml:"outlier"`
	Values  map[indicators.Code]float64 `json:"values" yaml:"values"`
}

// AverageProfile compares clusters on the raw values of one dimension.
type AverageProfile struct {
	Dimension  indicators.Dimension `json:"dimension" yaml:"dimension"`
	Indicators []indicators.Code    `json:"indicators" yaml:"indicators"`
	Series     []Series             `json:"series" yaml:"series"`
}

// Averages is Profiler.Averages with the built-in synonym table.
func Averages(records []regions.Record, dimension indicators.Dimension, outliers ...string) *AverageProfile {
	return New().Averages(records, dimension, outliers...)
}

// Averages returns the raw mean of each indicator of dimension per cluster,
// in ascending cluster order, followed by the own values of the noise
// records named in outliers. Outlier names are canonicalized with the
// profiler's synonym table; names that are not noise records are ignored.
func (p *Profiler) Averages(records []regions.Record, dimension indicators.Dimension, outliers ...string) *AverageProfile {
	present := make(map[indicators.Code]bool)
	for _, code := range presentCodes(records) {
		present[code] = true
	}

	ap := &AverageProfile{Dimension: dimension}
	for _, ind := range indicators.InDimension(dimension) {
		if present[ind.Code] {
			ap.Indicators = append(ap.Indicators, ind.Code)
		}
	}

	for _, id := range regions.ClusterIDs(records) {
		s := Series{Label: regions.ClusterLabel(id), Values: make(map[indicators.Code]float64)}
		for _, code := range ap.Indicators {
			var sum float64
			var n int
			for _, r := range records {
				if r.ClusterID != id {
					continue
				}
				if v, ok := r.Values[code]; ok {
					sum += v
					n++
				}
			}
			if n > 0 {
				s.Values[code] = sum / float64(n)
			}
		}
		ap.Series = append(ap.Series, s)
	}

	want := make(map[string]bool, len(outliers))
	for _, name := range outliers {
		if strings.TrimSpace(name) != "" {
			want[p.synonyms.Canonicalize(name)] = true
		}
	}
	for _, r := range records {
		if !r.IsNoise() || !want[r.Key] {
			continue
		}
		s := Series{Label: r.Name, Outlier: true, Values: make(map[indicators.Code]float64)}
		for _, code := range ap.Indicators {
			if v, ok := r.Values[code]; ok {
				s.Values[code] = v
			}
		}
		ap.Series = append(ap.Series, s)
	}
	return ap
}

// Point is one province's raw value of an indicator.
type Point struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Group holds the values of one cluster label.
type Group struct {
	Label  string  `json:"label" yaml:"label"`
	Points []Point `json:"points" yaml:"points"`
}

// DistributionView is the spread of one indicator across cluster labels.
type DistributionView struct {
	Indicator indicators.Code `json:"indicator" yaml:"indicator"`
	Groups    []Group         `json:"groups" yaml:"groups"`
}

// Distribution groups the raw values of code by cluster label. Groups follow
// regions.ClusterLabels order; points keep input order. Records lacking the
// value are left out.
func Distribution(records []regions.Record, code indicators.Code) *DistributionView {
	dv := &DistributionView{Indicator: code}
	for _, label := range regions.ClusterLabels(records) {
		g := Group{Label: label}
		for _, r := range records {
			if r.ClusterLabel() != label {
				continue
			}
			if v, ok := r.Values[code]; ok {
				g.Points = append(g.Points, Point{Name: r.Name, Value: v})
			}
		}
		if len(g.Points) > 0 {
			dv.Groups = append(dv.Groups, g)
		}
	}
	return dv
}
