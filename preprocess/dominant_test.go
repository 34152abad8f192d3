package preprocess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bins16 erzeugt einen Kanal mit 16 Bins aus {bin: count}
func bins16(set map[int]int) []int {
	counts := make([]int, 16)
	for j, v := range set {
		counts[j] = v
	}
	return counts
}

func TestFindPeaks(t *testing.T) {
	h := Histogram{
		bins16(map[int]int{1: 5, 3: 10}),
		bins16(map[int]int{1: 10}),
		bins16(nil),
	}

	got := FindPeaks(h, DefaultPeakThreshold)
	want := []ColorPeak{
		{Channel: 0, Value: 1.0 / 15, Intensity: 5, bin: 1},
		{Channel: 0, Value: 3.0 / 15, Intensity: 10, bin: 3},
		{Channel: 1, Value: 1.0 / 15, Intensity: 10, bin: 1},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(ColorPeak{})); diff != "" {
		t.Errorf("FindPeaks() falsch (-want +got):\n%s", diff)
	}
}

func TestFindPeaksRules(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   int
	}{
		{"rand bins zaehlen nicht", bins16(map[int]int{0: 50, 15: 50}), 0},
		{"plateau ist kein peak", bins16(map[int]int{4: 7, 5: 7}), 0},
		{"unter schwelle", bins16(map[int]int{3: 100, 8: 10}), 1},
		{"knapp ueber schwelle", bins16(map[int]int{3: 100, 8: 11}), 2},
		{"leerer kanal", bins16(nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPeaks(Histogram{tt.counts}, DefaultPeakThreshold)
			if len(got) != tt.want {
				t.Errorf("len(FindPeaks()) = %d, erwartet %d: %+v", len(got), tt.want, got)
			}
		})
	}
}

func TestSortPeaks(t *testing.T) {
	peaks := []ColorPeak{
		{Channel: 2, Intensity: 7, bin: 4},
		{Channel: 0, Intensity: 3, bin: 9},
		{Channel: 1, Intensity: 7, bin: 2},
		{Channel: 0, Intensity: 7, bin: 11},
		{Channel: 0, Intensity: 7, bin: 5},
		{Channel: 1, Intensity: 20, bin: 8},
	}

	got := SortPeaks(peaks)
	want := []ColorPeak{
		{Channel: 1, Intensity: 20, bin: 8},
		{Channel: 0, Intensity: 7, bin: 5},
		{Channel: 0, Intensity: 7, bin: 11},
		{Channel: 1, Intensity: 7, bin: 2},
		{Channel: 2, Intensity: 7, bin: 4},
		{Channel: 0, Intensity: 3, bin: 9},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(ColorPeak{})); diff != "" {
		t.Errorf("SortPeaks() falsch (-want +got):\n%s", diff)
	}

	if len(SortPeaks(nil)) != 0 {
		t.Error("SortPeaks(nil) nicht leer")
	}
}

func TestDominantColorsPadding(t *testing.T) {
	h := Histogram{
		bins16(map[int]int{1: 5, 3: 10}),
		bins16(map[int]int{1: 10}),
		bins16(nil),
	}

	got := DominantColors(h, 5, DefaultPeakThreshold)
	want := DominantColorSet{
		{3.0 / 15, 0, 0},
		{0, 1.0 / 15, 0},
		{1.0 / 15, 0, 0},
		// Kanal 2 hat keinen Peak: erstes Maximum ist Bin 0
		{0, 0, 0},
		// Rest: Maximum von Kanal 0
		{3.0 / 15, 0, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DominantColors() falsch (-want +got):\n%s", diff)
	}
}

func TestDominantColorsTruncate(t *testing.T) {
	h := Histogram{
		bins16(map[int]int{1: 10, 3: 20, 5: 30, 7: 40}),
		bins16(map[int]int{2: 15, 9: 25}),
		bins16(map[int]int{12: 35}),
	}

	got := DominantPeaks(h, 5, DefaultPeakThreshold)
	var intensities []int
	for _, p := range got {
		intensities = append(intensities, p.Intensity)
	}
	if diff := cmp.Diff([]int{40, 35, 30, 25, 20}, intensities); diff != "" {
		t.Errorf("Intensitaeten falsch (-want +got):\n%s", diff)
	}
}

func TestDominantColorsShape(t *testing.T) {
	histograms := []Histogram{
		{bins16(nil), bins16(nil), bins16(nil)},
		{bins16(map[int]int{15: 100}), bins16(map[int]int{0: 100}), bins16(map[int]int{0: 100})},
		{bins16(map[int]int{2: 1, 4: 1, 6: 1, 8: 1, 10: 1, 12: 1}), bins16(nil), bins16(nil)},
	}

	for i, h := range histograms {
		colors := DominantColors(h, 5, DefaultPeakThreshold)
		if len(colors) != 5 {
			t.Errorf("Fall %d: len = %d, erwartet 5", i, len(colors))
		}
		for j, rgb := range colors {
			nonZero := 0
			for _, v := range rgb {
				if v != 0 {
					nonZero++
				}
				if v < 0 || v > 1 {
					t.Errorf("Fall %d, Farbe %d: Wert %v ausserhalb [0,1]", i, j, v)
				}
			}
			if nonZero > 1 {
				t.Errorf("Fall %d, Farbe %d: %v hat mehr als einen Kanal gesetzt", i, j, rgb)
			}
		}
	}
}
