// MODUL: formats_test
// ZWECK: Tests fuer Format-Erkennung, Validierung und Probe
// INPUT: Test-Bytes mit verschiedenen Signaturen, synthetische PNG/GIF Bilder
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, image/gif, github.com/google/go-cmp
// HINWEISE: Testet Magic-Byte-Erkennung fuer alle unterstuetzten Formate

package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected ImageFormat
	}{
		{
			name:     "JPEG Magic Bytes",
			data:     []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10},
			expected: FormatJPEG,
		},
		{
			name:     "PNG Magic Bytes",
			data:     []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A},
			expected: FormatPNG,
		},
		{
			name:     "WebP Magic Bytes",
			data:     []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x00, 0x00, 0x00, 'W', 'E', 'B', 'P'},
			expected: FormatWebP,
		},
		{
			name:     "RIFF ohne WEBP",
			data:     []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x00, 0x00, 0x00, 'W', 'A', 'V', 'E'},
			expected: FormatUnknown,
		},
		{
			name:     "GIF Magic Bytes",
			data:     []byte("GIF89a\x01\x00"),
			expected: FormatGIF,
		},
		{
			name:     "BMP Magic Bytes",
			data:     []byte{'B', 'M', 0x00, 0x00, 0x00, 0x00},
			expected: FormatBMP,
		},
		{
			name:     "TIFF Little Endian",
			data:     []byte{0x49, 0x49, 0x2A, 0x00, 0x08, 0x00},
			expected: FormatTIFF,
		},
		{
			name:     "TIFF Big Endian",
			data:     []byte{0x4D, 0x4D, 0x00, 0x2A, 0x00, 0x08},
			expected: FormatTIFF,
		},
		{
			name:     "Zu kurze Daten",
			data:     []byte{0xFF, 0xD8},
			expected: FormatUnknown,
		},
		{
			name:     "Unbekanntes Format",
			data:     []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			expected: FormatUnknown,
		},
		{
			name:     "Leere Daten",
			data:     []byte{},
			expected: FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectFormat(tt.data)
			if result != tt.expected {
				t.Errorf("DetectFormat() = %v, erwartet %v", result, tt.expected)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format    ImageFormat
		expectErr error
	}{
		{FormatJPEG, nil},
		{FormatPNG, nil},
		{FormatWebP, nil},
		{FormatGIF, nil},
		{FormatBMP, nil},
		{FormatTIFF, nil},
		{FormatUnknown, ErrUnknownFormat},
		{ImageFormat("heic"), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if !errors.Is(err, tt.expectErr) {
				t.Errorf("ValidateFormat(%v) error = %v, erwartet %v", tt.format, err, tt.expectErr)
			}
		})
	}
}

func TestImageFormatMimeType(t *testing.T) {
	tests := []struct {
		format   ImageFormat
		expected string
	}{
		{FormatJPEG, "image/jpeg"},
		{FormatPNG, "image/png"},
		{FormatWebP, "image/webp"},
		{FormatGIF, "image/gif"},
		{FormatBMP, "image/bmp"},
		{FormatTIFF, "image/tiff"},
		{FormatUnknown, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.MimeType(); got != tt.expected {
				t.Errorf("MimeType() = %v, erwartet %v", got, tt.expected)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	pngData := createPNGBytes(300, 200, color.RGBA{255, 0, 0, 255})

	meta, err := Probe(pngData)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	want := Metadata{Width: 300, Height: 200, Format: FormatPNG}
	if diff := cmp.Diff(want, meta); diff != "" {
		t.Errorf("Probe() mismatch (-want +got):\n%s", diff)
	}
}

func TestProbeGIF(t *testing.T) {
	pal := image.NewPaletted(image.Rect(0, 0, 12, 7), color.Palette{color.Black, color.White})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, pal, nil); err != nil {
		t.Fatal(err)
	}

	meta, err := Probe(buf.Bytes())
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if meta.Format != FormatGIF || meta.Width != 12 || meta.Height != 7 {
		t.Errorf("Probe() = %+v, erwartet gif 12x7", meta)
	}
}

func TestProbeUnknown(t *testing.T) {
	_, err := Probe([]byte("definitiv kein bild"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Probe() error = %v, erwartet ErrUnknownFormat", err)
	}
}

func TestProbeTruncatedHeader(t *testing.T) {
	// Gueltige Signatur, aber kein lesbarer Header
	data := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	meta, err := Probe(data)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Probe() error = %v, erwartet ErrUnknownFormat", err)
	}
	if meta.Format != FormatPNG {
		t.Errorf("Format = %v, erwartet %v", meta.Format, FormatPNG)
	}
}
