// MODUL: histogram
// ZWECK: Histogramm mit fester Bin-Anzahl pro Farbkanal
// INPUT: skalierter Tensor (Werte in [0,1]), Bin-Anzahl
// OUTPUT: Histogram (C x B Zaehler)
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: bin = clamp(floor(v * (B-1)), 0, B-1); reine Reduktion ohne geteilten Zustand

package preprocess

import "math"

// Histogram enthaelt pro Kanal die Zaehler der B Bins
type Histogram [][]int

// Channel gibt die Zaehler eines Kanals zurueck
func (h Histogram) Channel(c int) []int {
	return h[c]
}

// Total gibt die Summe aller Bins eines Kanals zurueck
func (h Histogram) Total(c int) int {
	n := 0
	for _, v := range h[c] {
		n += v
	}
	return n
}

// binIndex ordnet einen Wert aus [0,1] einem Bin zu.
// Werte ausserhalb werden geklemmt, NaN faellt in Bin 0.
func binIndex(v float64, bins int) int {
	f := math.Floor(v * float64(bins-1))
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > float64(bins-1):
		return bins - 1
	}
	return int(f)
}

// binChannel zaehlt die Werte eines einzelnen Kanals
func binChannel(values []float64, bins int) []int {
	counts := make([]int, bins)
	for _, v := range values {
		counts[binIndex(v, bins)]++
	}
	return counts
}

// ComputeHistogram berechnet das Histogramm jedes Kanals von t.
// Kanal-Auszuege liegen im Scope und werden mit ihm freigegeben.
func ComputeHistogram(s *Scope, t *Tensor, bins int) Histogram {
	channels := t.Channels()
	hist := make(Histogram, channels)
	for c := 0; c < channels; c++ {
		hist[c] = binChannel(channelValues(s, t, c), bins)
	}
	return hist
}
