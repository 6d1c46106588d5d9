// Package constants provides shared constants used throughout the pangan codebase.
// This includes source locations, timeouts, thresholds and file permissions
// that should be consistent across the library and the CLI.
package constants

import "time"

// Source defaults
const (
	// DefaultAttributesPath is the clustering result workbook produced upstream
	DefaultAttributesPath = "Hasil_Clustering_Final.xlsx"

	// DefaultGeometryURL is the provincial boundary collection for Indonesia
	DefaultGeometryURL = "https://raw.githubusercontent.com/ans-4175/peta-indonesia-geojson/master/indonesia-prov.geojson"
)

// Timeout constants
const (
	// GeometryFetchTimeout bounds the single attempt made to fetch remote geometry
	GeometryFetchTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute
)

// Analysis constants
const (
	// NeutralBand is the half-width, in standard deviations, of the band around
	// the cross-region mean that classifies as neutral
	NeutralBand = 0.3

	// NoiseClusterID marks a region left unclustered upstream
	NoiseClusterID = -1

	// LowMatchThreshold is the matched-geometry count below which a join is reported as weak
	LowMatchThreshold = 10

	// SyntheticSeed seeds the fallback attribute dataset
	SyntheticSeed = 42

	// MaxGeometryBytes caps the size of a geometry document read into memory
	MaxGeometryBytes = 64 << 20
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
