// Package join attaches attribute records to boundary features on their
// canonical region key.
//
// The join is a left join from features: every feature yields exactly one
// row, in input order, whether or not a record matched. Records without a
// feature are reported but do not appear in the spatial output.
package join

import (
	"fmt"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/authority"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Stats summarizes a join.
type Stats struct {
	Features   int `json:"features" yaml:"features"`
	Matched    int `json:"matched" yaml:"matched"`
	Unmatched  int `json:"unmatched" yaml:"unmatched"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
}

// Result is the outcome of Join.
type Result struct {
	Rows []regions.Joined `json:"rows" yaml:"rows"`

	// DuplicateKeys lists keys carried by more than one feature. Every such
	// feature keeps its own row.
	DuplicateKeys []string `json:"duplicate_keys,omitempty" yaml:"duplicate_keys,omitempty"`

	// UnmatchedFeatures lists the keys of features with no record, in input order.
	UnmatchedFeatures []string `json:"unmatched_features,omitempty" yaml:"unmatched_features,omitempty"`

	// UnmatchedRecords holds records with no feature. They remain part of the
	// tabular views.
	UnmatchedRecords []regions.Record `json:"unmatched_records,omitempty" yaml:"unmatched_records,omitempty"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Stats    Stats    `json:"stats" yaml:"stats"`
}

// LowMatch reports whether fewer than threshold features matched. A
// non-positive threshold uses the default.
func (r *Result) LowMatch(threshold int) bool {
	if threshold <= 0 {
		threshold = constants.LowMatchThreshold
	}
	return r.Stats.Matched < threshold
}

// Joiner performs joins with a configurable field authority.
type Joiner struct {
	authority authority.Authority
}

// Option configures a Joiner.
type Option func(*Joiner)

// WithAuthority sets the field authority used for display names.
func WithAuthority(a authority.Authority) Option {
	return func(j *Joiner) {
		if a != nil {
			j.authority = a
		}
	}
}

// New creates a Joiner.
func New(opts ...Option) *Joiner {
	j := &Joiner{authority: authority.New()}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Join joins features to records with the default authority.
func Join(features []regions.Feature, records []regions.Record) *Result {
	return New().Join(features, records)
}

// Join left-joins features to records on Key.
func (j *Joiner) Join(features []regions.Feature, records []regions.Record) *Result {
	res := &Result{Rows: make([]regions.Joined, 0, len(features))}

	byKey := make(map[string]int, len(records))
	for i, rec := range records {
		if prev, ok := byKey[rec.Key]; ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"duplicate attribute key %q: keeping %q, ignoring %q",
				rec.Key, records[prev].Name, rec.Name))
			continue
		}
		byKey[rec.Key] = i
	}

	featureCount := make(map[string]int, len(features))
	used := make(map[string]bool, len(byKey))

	for _, f := range features {
		featureCount[f.Key]++
		if featureCount[f.Key] == 2 {
			res.DuplicateKeys = append(res.DuplicateKeys, f.Key)
			res.Warnings = append(res.Warnings, fmt.Sprintf("duplicate geometry key %q", f.Key))
		}

		row := regions.Joined{Feature: f, ClusterLabel: regions.NoDataLabel}
		values := map[authority.Source]string{authority.Geometry: f.Name}

		if i, ok := byKey[f.Key]; ok && f.Key != "" {
			rec := records[i]
			row.Record = &rec
			row.ClusterLabel = rec.ClusterLabel()
			values[authority.Attributes] = rec.Name
			used[f.Key] = true
			res.Stats.Matched++
		} else {
			res.UnmatchedFeatures = append(res.UnmatchedFeatures, f.Key)
			res.Stats.Unmatched++
		}

		if name, src, ok := j.authority.Resolve(authority.DisplayName, values); ok {
			row.DisplayName = name
			row.DisplaySource = src.String()
		}
		res.Rows = append(res.Rows, row)
	}

	for i, rec := range records {
		if byKey[rec.Key] != i {
			continue // duplicate, already reported
		}
		if !used[rec.Key] {
			res.UnmatchedRecords = append(res.UnmatchedRecords, rec)
		}
	}

	res.Stats.Features = len(features)
	res.Stats.Duplicates = len(res.DuplicateKeys)
	return res
}
