package preprocess

import (
	"errors"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := Config{
		TargetSize:     224,
		Channels:       3,
		Bins:           16,
		DominantColors: 5,
		PeakThreshold:  0.1,
		StdEpsilon:     1e-7,
		Parallel:       runtime.NumCPU(),
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DefaultConfig() falsch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	if cfg.PixelCount() != 50176 {
		t.Errorf("PixelCount() = %d, erwartet 50176", cfg.PixelCount())
	}
	if diff := cmp.Diff([]int{1, 224, 224, 3}, cfg.TensorShape()); diff != "" {
		t.Errorf("TensorShape() falsch (-want +got):\n%s", diff)
	}
}

func TestNewConfigOptions(t *testing.T) {
	cfg, err := NewConfig(
		WithTargetSize(64),
		WithBins(32),
		WithDominantColors(3),
		WithPeakThreshold(0.25),
		WithStdEpsilon(1e-5),
		WithParallel(2),
		WithParallel(0),
	)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.TargetSize != 64 || cfg.Bins != 32 || cfg.DominantColors != 3 {
		t.Errorf("Groessen falsch: %+v", cfg)
	}
	if cfg.PeakThreshold != 0.25 || cfg.StdEpsilon != 1e-5 {
		t.Errorf("Schwellen falsch: %+v", cfg)
	}
	if cfg.Parallel != 2 {
		t.Errorf("Parallel = %d, erwartet 2", cfg.Parallel)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zielgroesse 0", func(c *Config) { c.TargetSize = 0 }, ErrInvalidTargetSize},
		{"vier kanaele", func(c *Config) { c.Channels = 4 }, ErrInvalidChannels},
		{"zwei bins", func(c *Config) { c.Bins = 2 }, ErrInvalidBins},
		{"k = 0", func(c *Config) { c.DominantColors = 0 }, ErrInvalidDominantColors},
		{"schwelle negativ", func(c *Config) { c.PeakThreshold = -0.1 }, ErrInvalidPeakThreshold},
		{"schwelle 1", func(c *Config) { c.PeakThreshold = 1 }, ErrInvalidPeakThreshold},
		{"epsilon negativ", func(c *Config) { c.StdEpsilon = -1 }, ErrInvalidStdEpsilon},
		{"parallel 0", func(c *Config) { c.Parallel = 0 }, ErrInvalidParallel},
		{"drei bins", func(c *Config) { c.Bins = 3 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, erwartet %v", err, tt.want)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("IMAGEPREP_TARGET_SIZE", "96")
	t.Setenv("IMAGEPREP_HISTOGRAM_BINS", "8")
	t.Setenv("IMAGEPREP_DOMINANT_COLORS", "4")
	t.Setenv("IMAGEPREP_STD_EPSILON", "1e-4")
	t.Setenv("IMAGEPREP_NUM_PARALLEL", "3")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}

	want := DefaultConfig()
	want.TargetSize = 96
	want.Bins = 8
	want.DominantColors = 4
	want.StdEpsilon = 1e-4
	want.Parallel = 3
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ConfigFromEnv() falsch (-want +got):\n%s", diff)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("IMAGEPREP_HISTOGRAM_BINS", "2")

	if _, err := ConfigFromEnv(); !errors.Is(err, ErrInvalidBins) {
		t.Errorf("Fehler = %v, erwartet ErrInvalidBins", err)
	}
}
