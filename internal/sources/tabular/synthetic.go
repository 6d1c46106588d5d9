package tabular

import (
	"math/rand/v2"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// SyntheticProvinces are the provinces of the synthetic fallback dataset.
var SyntheticProvinces = []string{
	"ACEH",
	"SUMATERA UTARA",
	"DKI JAKARTA",
	"JAWA BARAT",
	"JAWA TIMUR",
	"BALI",
	"NUSA TENGGARA TIMUR",
	"PAPUA",
}

var syntheticClusters = []int{0, 1, constants.NoiseClusterID}

// Synthetic returns a deterministic placeholder dataset: every synthetic
// province with all indicators drawn uniformly from [10, 100).
func Synthetic() *Dataset {
	return SyntheticWith(canonical.Default())
}

// SyntheticWith is Synthetic with keys computed through table.
func SyntheticWith(table *canonical.Table) *Dataset {
	rng := rand.New(rand.NewPCG(constants.SyntheticSeed, 0))
	codes := indicators.Codes()

	ds := &Dataset{
		Indicators: codes,
		Synthetic:  true,
		Records:    make([]regions.Record, 0, len(SyntheticProvinces)),
	}
	for _, name := range SyntheticProvinces {
		rec := regions.Record{
			Name:      name,
			Key:       table.Canonicalize(name),
			ClusterID: syntheticClusters[rng.IntN(len(syntheticClusters))],
			Values:    make(map[indicators.Code]float64, len(codes)),
		}
		for _, code := range codes {
			rec.Values[code] = 10 + rng.Float64()*90
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds
}
