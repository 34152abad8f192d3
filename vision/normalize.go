// MODUL: normalize
// ZWECK: Kontrast-Normalisierung nach dem Resize
// INPUT: ImageInput, untere/obere Perzentile der Helligkeit
// OUTPUT: ImageInput mit gestreckter Helligkeit
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: github.com/lucasb-eyer/go-colorful, gonum.org/v1/gonum/stat, github.com/disintegration/imaging
// HINWEISE: Streckt nur L (CIE-Lab), a/b bleiben erhalten; konstante Helligkeit bleibt unveraendert

package vision

import (
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// LightnessRange berechnet die Helligkeits-Perzentile (L in [0,1]) eines Bildes
func LightnessRange(img *ImageInput, lower, upper float64) (lo, hi float64) {
	src := img.Image
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return 0, 0
	}

	lightness := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			l, _, _ := toColorful(row[x*4], row[x*4+1], row[x*4+2]).Lab()
			lightness = append(lightness, l)
		}
	}

	sort.Float64s(lightness)
	lo = stat.Quantile(lower, stat.Empirical, lightness, nil)
	hi = stat.Quantile(upper, stat.Empirical, lightness, nil)
	return lo, hi
}

// NormalizeContrast bildet den Helligkeitsbereich [lo, hi] linear auf [0, 1] ab.
// Ist der Bereich leer (einfarbiges Bild), wird das Bild unveraendert zurueckgegeben.
func NormalizeContrast(img *ImageInput, lower, upper float64) *ImageInput {
	lo, hi := LightnessRange(img, lower, upper)
	if hi <= lo {
		return img
	}

	scale := 1.0 / (hi - lo)
	dst := imaging.AdjustFunc(img.Image, func(c color.NRGBA) color.NRGBA {
		l, a, b := toColorful(c.R, c.G, c.B).Lab()
		l = min(max((l-lo)*scale, 0), 1)

		r, g, bl := colorful.Lab(l, a, b).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: bl, A: c.A}
	})

	return &ImageInput{
		Image:  dst,
		Width:  img.Width,
		Height: img.Height,
		Format: img.Format,
	}
}

// toColorful konvertiert 8-bit sRGB Werte
func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
