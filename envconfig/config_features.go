// config_features.go - Pipeline-Groessen und Feature-Flags
//
// Dieses Modul enthaelt:
// - Feature-Flags des Codecs (AutoOrient, NormalizeContrast)
// - Groessen der Pipeline (Zielgroesse, Bins, dominante Farben)
// - Parallelitaets-Einstellungen
package envconfig

import "runtime"

// =============================================================================
// Feature-Flags
// =============================================================================

var (
	// AutoOrient dreht JPEGs anhand des EXIF-Orientation-Tags
	AutoOrient = Bool("IMAGEPREP_AUTO_ORIENT")

	// NormalizeContrast streckt die Helligkeit vor dem Export (Default: an)
	NormalizeContrast = BoolWithDefault("IMAGEPREP_NORMALIZE_CONTRAST")
)

// =============================================================================
// Pipeline-Groessen
// =============================================================================

var (
	// TargetSize setzt Hoehe und Breite des Ausgabe-Tensors
	// Konfigurierbar via IMAGEPREP_TARGET_SIZE
	TargetSize = Uint("IMAGEPREP_TARGET_SIZE", 224)

	// HistogramBins setzt die Bins pro Farbkanal
	// Konfigurierbar via IMAGEPREP_HISTOGRAM_BINS
	HistogramBins = Uint("IMAGEPREP_HISTOGRAM_BINS", 16)

	// DominantColors setzt die Anzahl dominanter Farben (k)
	// Konfigurierbar via IMAGEPREP_DOMINANT_COLORS
	DominantColors = Uint("IMAGEPREP_DOMINANT_COLORS", 5)
)

// =============================================================================
// Parallelitaets-Einstellungen
// =============================================================================

var (
	// NumParallel setzt die Anzahl gleichzeitig verarbeiteter Bilder im Batch
	// Konfigurierbar via IMAGEPREP_NUM_PARALLEL
	NumParallel = Uint("IMAGEPREP_NUM_PARALLEL", uint(runtime.NumCPU()))
)
