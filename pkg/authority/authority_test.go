package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		path, pattern string
		want          bool
	}{
		{"display_name", "display_name", true},
		{"indicators.X1", "indicators.*", true},
		{"indicators", "indicators.*", false},
		{"cluster_id", "cluster_?d", true},
		{"geometry", "[", false},
		{"display_name", "geometry", false},
	}
	for _, tt := range tests {
		t.Run(tt.path+"~"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesPattern(tt.path, tt.pattern))
		})
	}
}

func TestFind(t *testing.T) {
	a := New()

	f := a.Find(DisplayName)
	require.NotNil(t, f)
	assert.Equal(t, Attributes, f.Source)
	assert.Equal(t, 100, f.Priority)

	f = a.Find("indicators.X7")
	require.NotNil(t, f)
	assert.Equal(t, Attributes, f.Source)

	assert.Nil(t, a.Find("unknown"))
}

func TestResolveDisplayName(t *testing.T) {
	a := New()

	tests := []struct {
		name       string
		values     map[Source]string
		want       string
		wantSource Source
		wantOK     bool
	}{
		{
			name:       "attribute name wins",
			values:     map[Source]string{Attributes: "Aceh", Geometry: "DI. ACEH"},
			want:       "Aceh",
			wantSource: Attributes,
			wantOK:     true,
		},
		{
			name:       "blank attribute falls back to geometry",
			values:     map[Source]string{Attributes: "  ", Geometry: "DI. ACEH"},
			want:       "DI. ACEH",
			wantSource: Geometry,
			wantOK:     true,
		},
		{
			name:       "geometry only",
			values:     map[Source]string{Geometry: "PAPUA"},
			want:       "PAPUA",
			wantSource: Geometry,
			wantOK:     true,
		},
		{
			name:   "nothing",
			values: map[Source]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, src, ok := a.Resolve(DisplayName, tt.values)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, src)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestResolveIgnoresUnconfiguredSource(t *testing.T) {
	// Cluster ids never come from the geometry side.
	_, _, ok := New().Resolve(ClusterID, map[Source]string{Geometry: "3"})
	assert.False(t, ok)
}

func TestNewWith(t *testing.T) {
	a := NewWith([]Field{
		{Path: DisplayName, Source: Geometry, Priority: 100},
		{Path: DisplayName, Source: Attributes, Priority: 10},
	})
	got, src, ok := a.Resolve(DisplayName, map[Source]string{Attributes: "Aceh", Geometry: "DI. ACEH"})
	assert.True(t, ok)
	assert.Equal(t, "DI. ACEH", got)
	assert.Equal(t, Geometry, src)
	assert.Len(t, a.List(), 2)
}

func TestByFieldSpecificity(t *testing.T) {
	fields := []Field{
		{Path: "indicators.*", Source: Attributes, Priority: 80},
		{Path: "indicators.X1", Source: Geometry, Priority: 80},
	}
	best := ByField("indicators.X1", fields)
	require.NotNil(t, best)
	assert.Equal(t, Geometry, best.Source)

	assert.Len(t, FilterBySource(fields, Attributes), 1)
	assert.Len(t, FilterOut(fields, Attributes), 1)
}
