// MODUL: pipeline
// ZWECK: Verkettung Loader -> Tensor -> Normalisierung (+ Farb-Deskriptor)
// INPUT: []byte oder base64-String
// OUTPUT: standardisierter Tensor [1, H, W, 3], optional FeatureDescriptor
// NEBENEFFEKTE: Logging ueber slog
// ABHAENGIGKEITEN: vision (Standard-Codec), logutil
// HINWEISE: Zustandslos bis auf die Config; nebenlaeufige Aufrufe sind sicher

package preprocess

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ollama/imageprep/logutil"
	"github.com/ollama/imageprep/vision"
)

// Result enthaelt beide Ausgaben eines Bildes
type Result struct {
	Tensor   *Tensor            `json:"-"`
	Features *FeatureDescriptor `json:"features"`
	Stats    Stats              `json:"stats"`
}

// Pipeline verarbeitet Bilder mit fester Config und festem Codec.
type Pipeline struct {
	cfg    Config
	codec  Codec
	pool   *BufferPool
	logger *slog.Logger
}

// PipelineOption konfiguriert optionale Abhaengigkeiten der Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger setzt den Logger (Default: slog.Default()).
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithBufferPool teilt einen Puffer-Pool zwischen mehreren Pipelines.
func WithBufferPool(pool *BufferPool) PipelineOption {
	return func(p *Pipeline) {
		if pool != nil {
			p.pool = pool
		}
	}
}

// ErrNilCodec wird zurueckgegeben wenn kein Codec uebergeben wurde
var ErrNilCodec = errors.New("preprocess: codec is required")

// NewPipeline erstellt eine Pipeline nach Validierung der Config.
func NewPipeline(cfg Config, codec Codec, opts ...PipelineOption) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if codec == nil {
		return nil, ErrNilCodec
	}

	p := &Pipeline{
		cfg:    cfg,
		codec:  codec,
		pool:   NewBufferPool(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Config gibt die Konfiguration zurueck
func (p *Pipeline) Config() Config {
	return p.cfg
}

// PreprocessImage liefert den standardisierten Tensor [1, H, W, 3].
func (p *Pipeline) PreprocessImage(input any) (*Tensor, error) {
	res, err := p.run(input, false)
	if err != nil {
		return nil, err
	}
	return res.Tensor, nil
}

// Process dekodiert einmal und liefert Tensor und Farb-Deskriptor. Der
// Deskriptor wird aus dem auf [0,1] skalierten Tensor berechnet.
func (p *Pipeline) Process(input any) (*Result, error) {
	return p.run(input, true)
}

// ExtractColorFeatures berechnet Mittelwert, Histogramm und dominante Farben
// eines Tensors. Das Histogramm erwartet Werte in [0,1].
func (p *Pipeline) ExtractColorFeatures(t *Tensor) (*FeatureDescriptor, error) {
	scope := p.pool.Scope()
	defer scope.Close()

	return extractFeatures(scope, t, p.cfg)
}

func (p *Pipeline) run(input any, withFeatures bool) (*Result, error) {
	pix, err := Load(input, p.codec, p.cfg)
	if err != nil {
		return nil, err
	}

	scope := p.pool.Scope()
	defer scope.Close()

	raw, err := BuildTensor(scope, pix)
	if err != nil {
		return nil, err
	}

	scaled := Scale(scope, raw)
	out, st := Standardize(scaled, p.cfg.StdEpsilon)
	if st.Degenerate {
		p.logger.Debug("degenerate image, std below epsilon; returning zero tensor", "std", st.Std, "epsilon", p.cfg.StdEpsilon)
	}
	p.logger.Log(context.TODO(), logutil.LevelTrace, "image standardized", "shape", out.Shape, "mean", st.Mean, "std", st.Std)

	res := &Result{Tensor: out, Stats: st}
	if withFeatures {
		res.Features, err = extractFeatures(scope, scaled, p.cfg)
		if err != nil {
			return nil, err
		}
		p.logger.Log(context.TODO(), logutil.LevelTrace, "color features extracted", "mean_rgb", res.Features.MeanRGB, "dominant", len(res.Features.DominantColors))
	}

	return res, nil
}

// ============================================================================
// Standard-Pipeline
// ============================================================================

var defaultPipeline = sync.OnceValues(func() (*Pipeline, error) {
	codec, err := vision.NewCodec()
	if err != nil {
		return nil, err
	}
	return NewPipeline(DefaultConfig(), codec)
})

// Default gibt die Pipeline mit Standard-Config und Standard-Codec zurueck.
func Default() (*Pipeline, error) {
	return defaultPipeline()
}

// PreprocessImage verarbeitet ein Bild mit der Standard-Pipeline.
func PreprocessImage(input any) (*Tensor, error) {
	p, err := Default()
	if err != nil {
		return nil, err
	}
	return p.PreprocessImage(input)
}

// ExtractColorFeatures berechnet den Farb-Deskriptor mit der Standard-Pipeline.
func ExtractColorFeatures(t *Tensor) (*FeatureDescriptor, error) {
	p, err := Default()
	if err != nil {
		return nil, err
	}
	return p.ExtractColorFeatures(t)
}
