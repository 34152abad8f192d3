// MODUL: features
// ZWECK: Farb-Deskriptor aus einem Tensor (Mittelwert, Histogramm, dominante Farben)
// INPUT: skalierter Tensor [1, H, W, 3]
// OUTPUT: FeatureDescriptor
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: gonum.org/v1/gonum/stat
// HINWEISE: MeanRGB hat dieselbe Skala wie der Eingabe-Tensor

package preprocess

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// FeatureDescriptor buendelt die Farbmerkmale eines Bildes
type FeatureDescriptor struct {
	MeanRGB        [3]float64       `json:"meanRGB"`
	Histogram      Histogram        `json:"histogram"`
	DominantColors DominantColorSet `json:"dominantColors"`
}

// extractFeatures berechnet den Deskriptor; Kanal-Auszuege liegen im Scope.
func extractFeatures(s *Scope, t *Tensor, cfg Config) (*FeatureDescriptor, error) {
	if err := checkFeatureTensor(t, cfg); err != nil {
		return nil, err
	}

	var fd FeatureDescriptor
	for c := 0; c < cfg.Channels; c++ {
		fd.MeanRGB[c] = stat.Mean(channelValues(s, t, c), nil)
	}

	fd.Histogram = ComputeHistogram(s, t, cfg.Bins)
	fd.DominantColors = DominantColors(fd.Histogram, cfg.DominantColors, cfg.PeakThreshold)
	return &fd, nil
}

func checkFeatureTensor(t *Tensor, cfg Config) error {
	switch {
	case t == nil:
		return &ProcessingError{Op: "features", Err: fmt.Errorf("nil tensor")}
	case len(t.Shape) != 4:
		return &ProcessingError{Op: "features", Err: fmt.Errorf("want rank 4 tensor, got shape %v", t.Shape)}
	case t.Channels() != cfg.Channels:
		return &ProcessingError{Op: "features", Err: fmt.Errorf("want %d channels, got shape %v", cfg.Channels, t.Shape)}
	case shapeSize(t.Shape) != len(t.Data) || len(t.Data) == 0:
		return &ProcessingError{Op: "features", Err: fmt.Errorf("shape %v does not match %d elements", t.Shape, len(t.Data))}
	}
	return nil
}
