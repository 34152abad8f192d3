// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault/Bool: Boolean-Getter mit Default-Wert
// - String: String-Getter
// - Uint: Integer-Getter mit Default-Wert
// - Float: Gleitkomma-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// =============================================================================
// String-Getter
// =============================================================================

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// =============================================================================
// Integer-Getter
// =============================================================================

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Gleitkomma-Getter
// =============================================================================

// Float gibt eine Funktion zurueck, die einen float64 mit Default-Wert liest
func Float(key string, defaultValue float64) func() float64 {
	return func() float64 {
		if s := Var(key); s != "" {
			if f, err := strconv.ParseFloat(s, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return f
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"IMAGEPREP_DEBUG":              {"IMAGEPREP_DEBUG", LogLevel(), "Show additional debug information (e.g. IMAGEPREP_DEBUG=1)"},
		"IMAGEPREP_TARGET_SIZE":        {"IMAGEPREP_TARGET_SIZE", TargetSize(), "Height and width of the output tensor (default: 224)"},
		"IMAGEPREP_HISTOGRAM_BINS":     {"IMAGEPREP_HISTOGRAM_BINS", HistogramBins(), "Histogram bins per color channel (default: 16)"},
		"IMAGEPREP_DOMINANT_COLORS":    {"IMAGEPREP_DOMINANT_COLORS", DominantColors(), "Number of dominant colors to report (default: 5)"},
		"IMAGEPREP_STD_EPSILON":        {"IMAGEPREP_STD_EPSILON", StdEpsilon(), "Standard deviations at or below this value yield a zero tensor (default: 1e-7)"},
		"IMAGEPREP_NUM_PARALLEL":       {"IMAGEPREP_NUM_PARALLEL", NumParallel(), "Maximum number of images processed concurrently in a batch"},
		"IMAGEPREP_BATCH_TIMEOUT":      {"IMAGEPREP_BATCH_TIMEOUT", BatchTimeout(), "How long a batch may run before remaining images are cancelled (default \"5m\")"},
		"IMAGEPREP_AUTO_ORIENT":        {"IMAGEPREP_AUTO_ORIENT", AutoOrient(), "Rotate JPEG images according to their EXIF orientation"},
		"IMAGEPREP_NORMALIZE_CONTRAST": {"IMAGEPREP_NORMALIZE_CONTRAST", NormalizeContrast(true), "Stretch image lightness before building the tensor (default: true)"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
