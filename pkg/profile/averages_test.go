package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/profile"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

func dataset() []regions.Record {
	return []regions.Record{
		{Name: "Aceh", Key: "ACEH", ClusterID: 1, Values: vals{indicators.X2: 100, indicators.X3: 10}},
		{Name: "Bali", Key: "BALI", ClusterID: 0, Values: vals{indicators.X2: 50}},
		{Name: "Jawa Timur", Key: "JAWA TIMUR", ClusterID: 1, Values: vals{indicators.X2: 300, indicators.X3: 30}},
		{Name: "Papua", Key: "PAPUA", ClusterID: -1, Values: vals{indicators.X2: 5, indicators.X3: 1}},
		{Name: "DKI Jakarta", Key: "DKI JAKARTA", ClusterID: -1, Values: vals{indicators.X2: 0}},
	}
}

func TestAverages(t *testing.T) {
	ap := profile.Averages(dataset(), indicators.Availability, "papua", "Aceh", "")

	assert.Equal(t, indicators.Availability, ap.Dimension)
	assert.Equal(t, []indicators.Code{indicators.X2, indicators.X3}, ap.Indicators)
	require.Len(t, ap.Series, 3, "two clusters plus one selected noise province")

	assert.Equal(t, "Cluster 0", ap.Series[0].Label)
	assert.Equal(t, vals{indicators.X2: 50}, ap.Series[0].Values)

	assert.Equal(t, "Cluster 1", ap.Series[1].Label)
	assert.InDelta(t, 200, ap.Series[1].Values[indicators.X2], 1e-9)
	assert.InDelta(t, 20, ap.Series[1].Values[indicators.X3], 1e-9)

	papua := ap.Series[2]
	assert.Equal(t, "Papua", papua.Label)
	assert.True(t, papua.Outlier)
	assert.Equal(t, vals{indicators.X2: 5, indicators.X3: 1}, papua.Values)
}

func TestAveragesWithoutOutliers(t *testing.T) {
	ap := profile.Averages(dataset(), indicators.Availability)
	assert.Len(t, ap.Series, 2)

	ap = profile.Averages(dataset(), indicators.Stability)
	assert.Empty(t, ap.Indicators)
	for _, s := range ap.Series {
		assert.Empty(t, s.Values)
	}
}

func TestAveragesOutlierByAlias(t *testing.T) {
	ap := profile.Averages(dataset(), indicators.Availability, "Jakarta Raya")
	require.Len(t, ap.Series, 3)
	assert.Equal(t, "DKI Jakarta", ap.Series[2].Label)
}

func TestProfilerAveragesUsesItsTable(t *testing.T) {
	table, err := canonical.NewTable(map[string][]string{"PAPUA": {"Bumi Cenderawasih"}})
	require.NoError(t, err)

	ap := profile.New(profile.WithTable(table)).Averages(dataset(), indicators.Availability, "Bumi Cenderawasih")
	require.Len(t, ap.Series, 3)
	assert.Equal(t, "Papua", ap.Series[2].Label)

	ap = profile.Averages(dataset(), indicators.Availability, "Bumi Cenderawasih")
	assert.Len(t, ap.Series, 2, "the built-in table does not know the alias")
}

func TestDistribution(t *testing.T) {
	dv := profile.Distribution(dataset(), indicators.X3)
	assert.Equal(t, indicators.X3, dv.Indicator)

	require.Len(t, dv.Groups, 2, "Cluster 0 has no X3 value")
	assert.Equal(t, "Cluster 1", dv.Groups[0].Label)
	assert.Equal(t, []profile.Point{{Name: "Aceh", Value: 10}, {Name: "Jawa Timur", Value: 30}}, dv.Groups[0].Points)
	assert.Equal(t, "Noise (Outlier)", dv.Groups[1].Label)
	assert.Equal(t, []profile.Point{{Name: "Papua", Value: 1}}, dv.Groups[1].Points)

	assert.Empty(t, profile.Distribution(dataset(), indicators.X14).Groups)
}
