package profile

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Moments are the population statistics of one indicator.
type Moments struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Std  float64 `json:"std" yaml:"std"`
	N    int     `json:"n" yaml:"n"`
}

// Standardized holds per-record z-scores, index-aligned with the input records.
type Standardized struct {
	Scores     []map[indicators.Code]float64
	Moments    map[indicators.Code]Moments
	Indicators []indicators.Code
}

// Standardize converts each indicator present in records to z-scores using
// the population standard deviation. Records lacking a value are left out of
// that indicator's statistics and get no score for it. An indicator with zero
// variance scores 0 everywhere.
func Standardize(records []regions.Record) *Standardized {
	s := &Standardized{
		Scores:  make([]map[indicators.Code]float64, len(records)),
		Moments: make(map[indicators.Code]Moments),
	}
	for i := range records {
		s.Scores[i] = make(map[indicators.Code]float64)
	}

	for _, code := range presentCodes(records) {
		var (
			xs  []float64
			idx []int
		)
		for i, r := range records {
			if v, ok := r.Values[code]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
				xs = append(xs, v)
				idx = append(idx, i)
			}
		}
		if len(xs) == 0 {
			continue
		}

		m := moments(xs)
		s.Moments[code] = m
		s.Indicators = append(s.Indicators, code)
		for j, i := range idx {
			if m.Std == 0 {
				s.Scores[i][code] = 0
				continue
			}
			s.Scores[i][code] = (xs[j] - m.Mean) / m.Std
		}
	}
	return s
}

func moments(xs []float64) Moments {
	if constant(xs) {
		return Moments{Mean: xs[0], Std: 0, N: len(xs)}
	}
	mean, variance := stat.PopMeanVariance(xs, nil)
	std := math.Sqrt(variance)
	if math.IsNaN(std) || math.IsInf(std, 0) {
		std = 0
	}
	return Moments{Mean: mean, Std: std, N: len(xs)}
}

// constant reports whether every value is identical. Checked exactly so that
// rounding in the variance cannot turn a flat column into huge z-scores.
func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

func presentCodes(records []regions.Record) []indicators.Code {
	seen := make(map[indicators.Code]bool)
	var codes []indicators.Code
	for _, r := range records {
		for code := range r.Values {
			if _, ok := indicators.ByCode(code); !ok || seen[code] {
				continue
			}
			seen[code] = true
			codes = append(codes, code)
		}
	}
	indicators.Sort(codes)
	return codes
}
