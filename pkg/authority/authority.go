// Package authority decides which source wins when the attribute and geometry
// sources both supply a value for the same joined field.
package authority

import (
	"path/filepath"
	"strings"
)

// Source identifies where a field value came from.
type Source string

// Sources of joined fields.
const (
	Attributes Source = "attributes"
	Geometry   Source = "geometry"
)

// String returns the source name.
func (s Source) String() string { return string(s) }

// Field names with configured authorities.
const (
	DisplayName = "display_name"
	ClusterID   = "cluster_id"
	Indicators  = "indicators.*"
	Geom        = "geometry"
)

// Authority determines which source is authoritative for each field
type Authority interface {
	// Find returns the highest priority authority for a field
	Find(fieldPath string) *Field

	// List returns all authorities
	List() []Field

	// Resolve picks the value of the most authoritative source that supplied a
	// non-empty value
	Resolve(fieldPath string, values map[Source]string) (string, Source, bool)
}

// Field defines source priority for a specific field
type Field struct {
	Path     string `json:"path" yaml:"path"`         // e.g., "display_name", "indicators.*"
	Source   Source `json:"source" yaml:"source"`     // Which source is authoritative
	Priority int    `json:"priority" yaml:"priority"` // Priority (higher = more authoritative)
}

type authorities struct {
	fields []Field
}

// New creates an Authority with the default join field priorities.
func New() Authority {
	return &authorities{fields: defaultAuthorities()}
}

// NewWith creates an Authority from explicit field priorities.
func NewWith(fields []Field) Authority {
	return &authorities{fields: append([]Field(nil), fields...)}
}

// Find returns the authority configuration for a specific field
func (a *authorities) Find(fieldPath string) *Field {
	return ByField(fieldPath, a.fields)
}

// List returns all authorities
func (a *authorities) List() []Field {
	return append([]Field(nil), a.fields...)
}

// Resolve walks the sources configured for fieldPath from highest to lowest
// priority and returns the first non-blank value.
func (a *authorities) Resolve(fieldPath string, values map[Source]string) (string, Source, bool) {
	candidates := make([]Field, 0, len(a.fields))
	for _, f := range a.fields {
		if MatchesPattern(fieldPath, f.Path) {
			candidates = append(candidates, f)
		}
	}

	for len(candidates) > 0 {
		best := ByField(fieldPath, candidates)
		if v := strings.TrimSpace(values[best.Source]); v != "" {
			return v, best.Source, true
		}
		candidates = FilterOut(candidates, best.Source)
	}
	return "", "", false
}

// ByField returns the highest priority authority for a given field path
func ByField(fieldPath string, authorities []Field) *Field {
	var bestMatch *Field
	var bestPriority int
	var bestMatchLength int

	for i, auth := range authorities {
		if MatchesPattern(fieldPath, auth.Path) {
			// Prioritize by: 1) priority, 2) pattern specificity (length), 3) order
			patternLength := len(auth.Path)
			if bestMatch == nil || auth.Priority > bestPriority ||
				(auth.Priority == bestPriority && patternLength > bestMatchLength) {
				bestMatch = &authorities[i]
				bestPriority = auth.Priority
				bestMatchLength = patternLength
			}
		}
	}

	return bestMatch
}

// MatchesPattern checks if a field path matches a pattern (supports * wildcards)
func MatchesPattern(fieldPath, pattern string) bool {
	if fieldPath == pattern {
		return true
	}

	if prefix, ok := strings.CutSuffix(pattern, "*"); ok && !strings.ContainsAny(prefix, "*?[") {
		return strings.HasPrefix(fieldPath, prefix)
	}

	matched, err := filepath.Match(pattern, fieldPath)
	if err != nil {
		return false
	}
	return matched
}

// FilterBySource returns only the authorities for a specific source
func FilterBySource(authorities []Field, source Source) []Field {
	var filtered []Field
	for _, auth := range authorities {
		if auth.Source == source {
			filtered = append(filtered, auth)
		}
	}
	return filtered
}

// FilterOut returns the authorities that do not belong to source
func FilterOut(authorities []Field, source Source) []Field {
	var filtered []Field
	for _, auth := range authorities {
		if auth.Source != source {
			filtered = append(filtered, auth)
		}
	}
	return filtered
}

func defaultAuthorities() []Field {
	return []Field{
		// The attribute workbook carries the curated province spelling; the
		// boundary file's name is only a fallback.
		{Path: DisplayName, Source: Attributes, Priority: 100},
		{Path: DisplayName, Source: Geometry, Priority: 50},

		// Clustering output exists only on the attribute side.
		{Path: ClusterID, Source: Attributes, Priority: 100},
		{Path: Indicators, Source: Attributes, Priority: 100},

		{Path: Geom, Source: Geometry, Priority: 100},
	}
}
