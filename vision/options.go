// MODUL: options
// ZWECK: Functional Options Pattern fuer die Codec-Konfiguration
// INPUT: Optionale Parameter (Resample-Filter, Auto-Orientierung, Kontrast-Normalisierung)
// OUTPUT: Options Struct mit Konfiguration
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: github.com/disintegration/imaging (ResampleFilter)
// HINWEISE: Verwendet Functional Options Pattern fuer erweiterbare Konfiguration

package vision

import (
	"errors"

	"github.com/disintegration/imaging"
)

// ============================================================================
// Options - Zentrale Konfigurationsstruktur
// ============================================================================

// Options enthaelt die Konfiguration fuer Dekodierung und Resize.
type Options struct {
	Filter            imaging.ResampleFilter // Resample-Kernel fuer Fill
	AutoOrient        bool                   // EXIF-Orientierung beim Dekodieren anwenden
	NormalizeContrast bool                   // Helligkeits-Stretch nach dem Resize
	LowerPercentile   float64                // Untere Helligkeits-Grenze fuer den Stretch
	UpperPercentile   float64                // Obere Helligkeits-Grenze fuer den Stretch
}

// Option ist eine funktionale Option fuer Options.
type Option func(*Options)

// ============================================================================
// Fehler-Definitionen fuer Options
// ============================================================================

var (
	ErrInvalidPercentile = errors.New("vision: invalid contrast percentile")
	ErrInvalidSize       = errors.New("vision: invalid target size")
)

// DefaultOptions gibt eine Standard-Konfiguration zurueck.
// - Filter: Lanczos (a=3)
// - AutoOrient: aus
// - NormalizeContrast: an, 1% bis 99% Helligkeit
func DefaultOptions() Options {
	return Options{
		Filter:            imaging.Lanczos,
		AutoOrient:        false,
		NormalizeContrast: true,
		LowerPercentile:   0.01,
		UpperPercentile:   0.99,
	}
}

// WithFilter setzt den Resample-Kernel.
func WithFilter(f imaging.ResampleFilter) Option {
	return func(o *Options) {
		o.Filter = f
	}
}

// WithAutoOrient aktiviert/deaktiviert die EXIF-Orientierung.
func WithAutoOrient(enabled bool) Option {
	return func(o *Options) {
		o.AutoOrient = enabled
	}
}

// WithContrastNormalization aktiviert/deaktiviert den Helligkeits-Stretch.
func WithContrastNormalization(enabled bool) Option {
	return func(o *Options) {
		o.NormalizeContrast = enabled
	}
}

// WithContrastPercentiles setzt die Perzentile fuer den Helligkeits-Stretch.
func WithContrastPercentiles(lower, upper float64) Option {
	return func(o *Options) {
		o.LowerPercentile = lower
		o.UpperPercentile = upper
	}
}

// Apply wendet alle Options an.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Validate prueft ob die Options gueltig sind.
func (o *Options) Validate() error {
	if o.LowerPercentile < 0 || o.UpperPercentile > 1 || o.LowerPercentile >= o.UpperPercentile {
		return ErrInvalidPercentile
	}
	return nil
}
