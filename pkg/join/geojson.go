package join

import (
	"github.com/paulmach/orb/geojson"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
)

// Property names written on joined features.
const (
	PropDisplayName  = "display_name"
	PropRegionKey    = "region_key"
	PropClusterLabel = "cluster_label"
	PropClusterID    = "cluster_id"
)

// FeatureCollection renders the joined rows as GeoJSON. Matched rows carry
// their cluster id and every indicator present on the record, keyed by the
// indicator's descriptive name.
func (r *Result) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, row := range r.Rows {
		f := geojson.NewFeature(row.Geometry)
		f.Properties[PropDisplayName] = row.DisplayName
		f.Properties[PropRegionKey] = row.Key
		f.Properties[PropClusterLabel] = row.ClusterLabel

		if row.Record != nil {
			f.Properties[PropClusterID] = row.Record.ClusterID
			for _, code := range row.Record.Codes() {
				ind, ok := indicators.ByCode(code)
				if !ok {
					continue
				}
				f.Properties[ind.Name] = row.Record.Values[code]
			}
		}
		fc.Append(f)
	}
	return fc
}
