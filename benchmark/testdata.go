// MODUL: testdata
// ZWECK: Generierung von synthetischen Testbildern fuer Benchmarks
// INPUT: Bildgroesse (width, height), Batch-Anzahl
// OUTPUT: JPEG-kodierte Testbilder als Byte-Slices
// NEBENEFFEKTE: Keine (rein speicherbasiert)
// ABHAENGIGKEITEN: image, image/jpeg (stdlib)
// HINWEISE: Gradient mit Rauschen, damit Dekodierung und Histogramm realistisch arbeiten

package benchmark

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand"
)

// GenerateTestImage generiert ein JPEG-Testbild mit festem Seed.
func GenerateTestImage(width, height int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, pixelColor(x, y, width, height, rng))
		}
	}

	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	return buf.Bytes()
}

// GenerateTestBatch generiert count Testbilder mit unterschiedlichen Seeds.
func GenerateTestBatch(width, height, count int) [][]byte {
	batch := make([][]byte, count)
	for i := range batch {
		batch[i] = GenerateTestImage(width, height, int64(i*1000))
	}
	return batch
}

// pixelColor: Gradient ueber beide Achsen plus Rauschen in [-10, 10)
func pixelColor(x, y, width, height int, rng *rand.Rand) color.NRGBA {
	nx := float64(x) / float64(width)
	ny := float64(y) / float64(height)

	noise := int(rng.Float64()*20 - 10)
	return color.NRGBA{
		R: clampUint8(int(nx*255) + noise),
		G: clampUint8(int(ny*255) + noise),
		B: clampUint8(int((nx+ny)/2*255) + noise),
		A: 255,
	}
}

func clampUint8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
