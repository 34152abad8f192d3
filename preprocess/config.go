// MODUL: config
// ZWECK: Unveraenderliche Konfiguration der Pipeline (Zielgroesse, Bins, k)
// INPUT: Functional Options oder Environment-Variablen (IMAGEPREP_*)
// OUTPUT: validierte Config als Wert
// NEBENEFFEKTE: ConfigFromEnv liest Environment-Variablen
// ABHAENGIGKEITEN: envconfig
// HINWEISE: Config wird per Wert weitergegeben; die Pipeline haelt keinen weiteren Zustand

package preprocess

import (
	"errors"
	"runtime"

	"github.com/ollama/imageprep/envconfig"
)

// ============================================================================
// Standardwerte
// ============================================================================

const (
	DefaultTargetSize     = 224
	DefaultChannels       = 3
	DefaultBins           = 16
	DefaultDominantColors = 5
	DefaultPeakThreshold  = 0.1
	DefaultStdEpsilon     = 1e-7
)

// ============================================================================
// Fehler-Definitionen fuer Config
// ============================================================================

var (
	ErrInvalidTargetSize     = errors.New("preprocess/config: target size must be > 0")
	ErrInvalidChannels       = errors.New("preprocess/config: only 3 channels are supported")
	ErrInvalidBins           = errors.New("preprocess/config: bins must be >= 3")
	ErrInvalidDominantColors = errors.New("preprocess/config: dominant color count must be > 0")
	ErrInvalidPeakThreshold  = errors.New("preprocess/config: peak threshold must be in [0,1)")
	ErrInvalidStdEpsilon     = errors.New("preprocess/config: std epsilon must be >= 0")
	ErrInvalidParallel       = errors.New("preprocess/config: parallel must be > 0")
)

// Config enthaelt alle Konstanten der Pipeline.
type Config struct {
	TargetSize     int     // Hoehe und Breite des Ausgabe-Tensors
	Channels       int     // immer 3 (RGB)
	Bins           int     // Histogramm-Bins pro Kanal
	DominantColors int     // k, Anzahl dominanter Farben
	PeakThreshold  float64 // relativer Mindestanteil am Kanal-Maximum fuer Peaks
	StdEpsilon     float64 // Standardabweichungen <= Epsilon gelten als degeneriert
	Parallel       int     // gleichzeitige Bilder in ProcessBatch
}

// Option ist eine funktionale Option fuer Config.
type Option func(*Config)

// DefaultConfig gibt die Standard-Konfiguration zurueck (224x224x3, 16 Bins, k=5).
func DefaultConfig() Config {
	return Config{
		TargetSize:     DefaultTargetSize,
		Channels:       DefaultChannels,
		Bins:           DefaultBins,
		DominantColors: DefaultDominantColors,
		PeakThreshold:  DefaultPeakThreshold,
		StdEpsilon:     DefaultStdEpsilon,
		Parallel:       runtime.NumCPU(),
	}
}

// WithTargetSize setzt die quadratische Zielgroesse.
func WithTargetSize(n int) Option {
	return func(c *Config) {
		c.TargetSize = n
	}
}

// WithBins setzt die Anzahl der Histogramm-Bins.
func WithBins(n int) Option {
	return func(c *Config) {
		c.Bins = n
	}
}

// WithDominantColors setzt k.
func WithDominantColors(k int) Option {
	return func(c *Config) {
		c.DominantColors = k
	}
}

// WithPeakThreshold setzt die relative Peak-Schwelle.
func WithPeakThreshold(f float64) Option {
	return func(c *Config) {
		c.PeakThreshold = f
	}
}

// WithStdEpsilon setzt die Schwelle fuer degenerierte Standardabweichungen.
func WithStdEpsilon(eps float64) Option {
	return func(c *Config) {
		c.StdEpsilon = eps
	}
}

// WithParallel setzt die Batch-Parallelitaet. Werte <= 0 werden ignoriert.
func WithParallel(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Parallel = n
		}
	}
}

// NewConfig wendet Options auf DefaultConfig an und validiert das Ergebnis.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ConfigFromEnv liest die Konfiguration aus IMAGEPREP_* Variablen.
func ConfigFromEnv() (Config, error) {
	return NewConfig(
		WithTargetSize(int(envconfig.TargetSize())),
		WithBins(int(envconfig.HistogramBins())),
		WithDominantColors(int(envconfig.DominantColors())),
		WithStdEpsilon(envconfig.StdEpsilon()),
		WithParallel(int(envconfig.NumParallel())),
	)
}

// Validate prueft ob die Config gueltig ist.
func (c Config) Validate() error {
	switch {
	case c.TargetSize <= 0:
		return ErrInvalidTargetSize
	case c.Channels != DefaultChannels:
		return ErrInvalidChannels
	case c.Bins < 3:
		// Peak-Suche braucht mindestens einen inneren Bin
		return ErrInvalidBins
	case c.DominantColors <= 0:
		return ErrInvalidDominantColors
	case c.PeakThreshold < 0 || c.PeakThreshold >= 1:
		return ErrInvalidPeakThreshold
	case c.StdEpsilon < 0:
		return ErrInvalidStdEpsilon
	case c.Parallel <= 0:
		return ErrInvalidParallel
	}
	return nil
}

// PixelCount gibt H*W zurueck
func (c Config) PixelCount() int {
	return c.TargetSize * c.TargetSize
}

// TensorShape gibt [1, H, W, C] zurueck
func (c Config) TensorShape() []int {
	return []int{1, c.TargetSize, c.TargetSize, c.Channels}
}
