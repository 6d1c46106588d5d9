// Package regions holds the data model shared by the loaders, the joiner and
// the profiler: indicator records from the attribute source, geometry
// features from the boundary source, and the rows produced by joining them.
package regions

import (
	"fmt"
	"slices"
	"strings"

	"github.com/paulmach/orb"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
)

// Labels used for cluster membership.
const (
	NoiseLabel  = "Noise (Outlier)"
	NoDataLabel = "No Data"
)

// ClusterLabel renders a cluster id as "Cluster {id}", or NoiseLabel for the
// noise id.
func ClusterLabel(id int) string {
	if id == constants.NoiseClusterID {
		return NoiseLabel
	}
	return fmt.Sprintf("Cluster %d", id)
}

// Record is one row of the attribute source.
type Record struct {
	Name      string                      `json:"name" yaml:"name"`
	Key       string                      `json:"key" yaml:"key"`
	ClusterID int                         `json:"cluster_id" yaml:"cluster_id"`
	Values    map[indicators.Code]float64 `json:"values" yaml:"values"`
}

// ClusterLabel returns the record's cluster label.
func (r Record) ClusterLabel() string {
	return ClusterLabel(r.ClusterID)
}

// IsNoise reports whether the record was left unclustered.
func (r Record) IsNoise() bool {
	return r.ClusterID == constants.NoiseClusterID
}

// Value returns the value of an indicator and whether it is present.
func (r Record) Value(code indicators.Code) (float64, bool) {
	v, ok := r.Values[code]
	return v, ok
}

// Codes returns the indicator codes present on the record in catalog order.
func (r Record) Codes() []indicators.Code {
	codes := make([]indicators.Code, 0, len(r.Values))
	for code := range r.Values {
		codes = append(codes, code)
	}
	indicators.Sort(codes)
	return codes
}

// Feature is one boundary polygon of the geometry source.
type Feature struct {
	Name       string         `json:"name" yaml:"name"`
	Key        string         `json:"key" yaml:"key"`
	Geometry   orb.Geometry   `json:"-" yaml:"-"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Joined is one output row of the geometry to attribute join. Record is nil
// when the feature had no matching attribute row.
type Joined struct {
	Feature
	Record        *Record `json:"record,omitempty" yaml:"record,omitempty"`
	DisplayName   string  `json:"display_name" yaml:"display_name"`
	DisplaySource string  `json:"display_source" yaml:"display_source"`
	ClusterLabel  string  `json:"cluster_label" yaml:"cluster_label"`
}

// Matched reports whether an attribute record was joined to the feature.
func (j Joined) Matched() bool {
	return j.Record != nil
}

// Filter returns the records whose cluster label equals label,
// case-insensitively. An empty label returns every record.
func Filter(records []Record, label string) []Record {
	if strings.TrimSpace(label) == "" {
		return slices.Clone(records)
	}
	var out []Record
	for _, r := range records {
		if strings.EqualFold(r.ClusterLabel(), strings.TrimSpace(label)) {
			out = append(out, r)
		}
	}
	return out
}

// ClusterLabels returns the distinct cluster labels of records: clusters in
// ascending id order, followed by NoiseLabel when any record is noise.
func ClusterLabels(records []Record) []string {
	ids := ClusterIDs(records)
	labels := make([]string, 0, len(ids)+1)
	noise := false
	for _, r := range records {
		if r.IsNoise() {
			noise = true
			break
		}
	}
	for _, id := range ids {
		labels = append(labels, ClusterLabel(id))
	}
	if noise {
		labels = append(labels, NoiseLabel)
	}
	return labels
}

// ClusterIDs returns the distinct non-noise cluster ids in ascending order.
func ClusterIDs(records []Record) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, r := range records {
		if r.IsNoise() {
			continue
		}
		if _, ok := seen[r.ClusterID]; ok {
			continue
		}
		seen[r.ClusterID] = struct{}{}
		ids = append(ids, r.ClusterID)
	}
	slices.Sort(ids)
	return ids
}

// Legend maps each cluster label to the names of its members, in input order.
type Legend struct {
	Labels  []string            `json:"labels" yaml:"labels"`
	Members map[string][]string `json:"members" yaml:"members"`
}

// NewLegend groups record names under their cluster labels.
func NewLegend(records []Record) Legend {
	legend := Legend{
		Labels:  ClusterLabels(records),
		Members: make(map[string][]string),
	}
	for _, r := range records {
		label := r.ClusterLabel()
		legend.Members[label] = append(legend.Members[label], r.Name)
	}
	return legend
}
