// MODUL: normalize
// ZWECK: Skalierung auf [0,1] und globale Standardisierung (zero mean, unit variance)
// INPUT: Roh-Tensor (0..255)
// OUTPUT: skalierter Tensor (Scope), standardisierter Tensor (eigener Speicher), Stats
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: gonum.org/v1/gonum/floats, gonum.org/v1/gonum/stat
// HINWEISE: Populations-Standardabweichung; std <= Epsilon ergibt einen Null-Tensor

package preprocess

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats beschreibt die globale Verteilung vor der Standardisierung
type Stats struct {
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	Degenerate bool    `json:"degenerate"`
}

// Scale teilt jedes Element durch 255. Das Ergebnis liegt im Scope.
func Scale(s *Scope, raw *Tensor) *Tensor {
	data := s.Acquire(len(raw.Data))
	floats.ScaleTo(data, 1.0/255.0, raw.Data)

	return &Tensor{
		Shape: append([]int(nil), raw.Shape...),
		Data:  data,
	}
}

// Standardize berechnet (x - mean) / std ueber alle Elemente.
// Ist std <= eps (einfarbiges Bild), ist das Ergebnis definiert als Null-Tensor.
// Der Ergebnis-Tensor gehoert dem Aufrufer.
func Standardize(scaled *Tensor, eps float64) (*Tensor, Stats) {
	out := scaled.Clone()

	mean, std := stat.PopMeanStdDev(out.Data, nil)
	if math.IsNaN(std) {
		// Rundung kann bei konstanten Daten eine leicht negative Varianz liefern
		std = 0
	}
	st := Stats{Mean: mean, Std: std}

	if std <= eps {
		st.Degenerate = true
		clear(out.Data)
		return out, st
	}

	floats.AddConst(-mean, out.Data)
	floats.Scale(1/std, out.Data)
	return out, st
}
