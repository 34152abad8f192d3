// MODUL: helpers_test
// ZWECK: Gemeinsame Test-Helfer fuer synthetische Bilder und Fake-Codecs
// INPUT: Groesse und Farbe
// OUTPUT: PNG-Bytes, Data-URLs, Pipelines
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, image/png, encoding/base64
// HINWEISE: Alle Bilder werden im Speicher erzeugt

package preprocess

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ollama/imageprep/vision"
)

// solidPNG erzeugt PNG-Bytes eines einfarbigen Bildes
func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return mustEncodePNG(t, img)
}

// gradientPNG erzeugt ein Bild mit Farbverlauf in allen drei Kanaelen
func gradientPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return mustEncodePNG(t, img)
}

func mustEncodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

// dataURL verpackt Bytes als Data-URL
func dataURL(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

// newTestPipeline erstellt eine Pipeline mit Standard-Codec
func newTestPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	cfg, err := NewConfig(opts...)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	codec, err := vision.NewCodec()
	if err != nil {
		t.Fatalf("vision.NewCodec() error = %v", err)
	}
	p, err := NewPipeline(cfg, codec)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	return p
}

// fakeCodec liefert fest vorgegebene Ergebnisse
type fakeCodec struct {
	meta      vision.Metadata
	probeErr  error
	pix       *vision.PixelBuffer
	decodeErr error
}

func (f *fakeCodec) Probe([]byte) (vision.Metadata, error) {
	return f.meta, f.probeErr
}

func (f *fakeCodec) Decode([]byte, int, int) (*vision.PixelBuffer, error) {
	return f.pix, f.decodeErr
}

// solidBuffer erzeugt einen PixelBuffer mit konstantem Wert pro Kanal
func solidBuffer(size int, rgb [3]uint8) *vision.PixelBuffer {
	pix := make([]uint8, size*size*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = rgb[0], rgb[1], rgb[2]
	}
	return &vision.PixelBuffer{Pix: pix, Width: size, Height: size, Channels: 3}
}
