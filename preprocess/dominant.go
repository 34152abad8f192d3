// MODUL: dominant
// ZWECK: Dominante Farben aus Histogramm-Peaks
// INPUT: Histogram, k, relative Peak-Schwelle
// OUTPUT: DominantColorSet mit genau k RGB-Tripeln
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: github.com/emirpasic/gods/v2 (binaryheap)
// HINWEISE: Sortierung nach Intensitaet absteigend, Gleichstand nach (Kanal, Bin);
//           Auffuellen erst mit fehlenden Kanal-Maxima, dann mit dem Maximum von Kanal 0

package preprocess

import (
	"cmp"

	"github.com/emirpasic/gods/v2/trees/binaryheap"
)

// ColorPeak ist ein lokales Maximum im Histogramm eines Kanals
type ColorPeak struct {
	Channel   int     `json:"channel"`
	Value     float64 `json:"value"`
	Intensity int     `json:"intensity"`
	bin       int
}

// DominantColorSet enthaelt k RGB-Tripel in [0,1]; pro Tripel ist nur
// der Ursprungskanal gesetzt.
type DominantColorSet [][3]float64

// FindPeaks sucht in jedem Kanal die inneren Bins 1..B-2, die beide Nachbarn
// und threshold*max(Kanal) uebertreffen. Reihenfolge: Kanal, dann Bin.
func FindPeaks(h Histogram, threshold float64) []ColorPeak {
	var peaks []ColorPeak
	for c, counts := range h {
		bins := len(counts)
		limit := threshold * float64(maxCount(counts))
		for j := 1; j < bins-1; j++ {
			if counts[j] > counts[j-1] && counts[j] > counts[j+1] && float64(counts[j]) > limit {
				peaks = append(peaks, newPeak(c, j, counts[j], bins))
			}
		}
	}
	return peaks
}

// SortPeaks ordnet Peaks nach absteigender Intensitaet. Gleichstaende
// behalten die Reihenfolge (Kanal, Bin) bei.
func SortPeaks(peaks []ColorPeak) []ColorPeak {
	heap := binaryheap.NewWith(func(a, b ColorPeak) int {
		if c := cmp.Compare(b.Intensity, a.Intensity); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Channel, b.Channel); c != 0 {
			return c
		}
		return cmp.Compare(a.bin, b.bin)
	})
	heap.Push(peaks...)

	sorted := make([]ColorPeak, 0, len(peaks))
	for {
		p, ok := heap.Pop()
		if !ok {
			break
		}
		sorted = append(sorted, p)
	}
	return sorted
}

// DominantPeaks liefert genau k Peaks inklusive deterministischem Auffuellen.
func DominantPeaks(h Histogram, k int, threshold float64) []ColorPeak {
	peaks := SortPeaks(FindPeaks(h, threshold))

	if len(peaks) < k {
		seen := make(map[int]bool, len(h))
		for _, p := range peaks {
			seen[p.Channel] = true
		}
		for c := range h {
			if len(peaks) >= k {
				break
			}
			if !seen[c] {
				peaks = append(peaks, channelMaxPeak(h, c))
			}
		}
		for len(peaks) < k && len(h) > 0 {
			peaks = append(peaks, channelMaxPeak(h, 0))
		}
	}

	if len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}

// DominantColors materialisiert die k Peaks als RGB-Tripel.
func DominantColors(h Histogram, k int, threshold float64) DominantColorSet {
	peaks := DominantPeaks(h, k, threshold)
	colors := make(DominantColorSet, len(peaks))
	for i, p := range peaks {
		colors[i][p.Channel] = p.Value
	}
	return colors
}

func newPeak(channel, bin, count, bins int) ColorPeak {
	return ColorPeak{
		Channel:   channel,
		Value:     float64(bin) / float64(bins-1),
		Intensity: count,
		bin:       bin,
	}
}

// channelMaxPeak nimmt den ersten Bin mit maximalem Zaehler
func channelMaxPeak(h Histogram, c int) ColorPeak {
	counts := h[c]
	best := 0
	for j, v := range counts {
		if v > counts[best] {
			best = j
		}
	}
	return newPeak(c, best, counts[best], len(counts))
}

func maxCount(counts []int) int {
	m := 0
	for _, v := range counts {
		m = max(m, v)
	}
	return m
}
