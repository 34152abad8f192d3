// MODUL: formats
// ZWECK: Bildformat-Erkennung und Metadaten-Probe fuer den Codec
// INPUT: Bild-Bytes
// OUTPUT: ImageFormat, Metadata, Fehler bei unbekanntem Format
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: image (DecodeConfig), golang.org/x/image (bmp, tiff, webp Decoder)
// HINWEISE: Magic-Bytes-basierte Erkennung, unterstuetzt JPEG/PNG/WebP/GIF/BMP/TIFF

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
)

// ImageFormat repraesentiert ein unterstuetztes Bildformat
type ImageFormat string

const (
	FormatJPEG    ImageFormat = "jpeg"
	FormatPNG     ImageFormat = "png"
	FormatWebP    ImageFormat = "webp"
	FormatGIF     ImageFormat = "gif"
	FormatBMP     ImageFormat = "bmp"
	FormatTIFF    ImageFormat = "tiff"
	FormatUnknown ImageFormat = "unknown"
)

// Magic-Byte-Signaturen fuer Bildformate
var (
	magicJPEG   = []byte{0xFF, 0xD8, 0xFF}
	magicPNG    = []byte{0x89, 0x50, 0x4E, 0x47}
	magicWebP   = []byte{0x52, 0x49, 0x46, 0x46} // "RIFF" header
	magicGIF    = []byte("GIF8")
	magicBMP    = []byte("BM")
	magicTIFFLE = []byte{0x49, 0x49, 0x2A, 0x00}
	magicTIFFBE = []byte{0x4D, 0x4D, 0x00, 0x2A}
)

// ErrUnknownFormat wird zurueckgegeben wenn Format nicht erkannt wurde
var ErrUnknownFormat = errors.New("unbekanntes Bildformat")

// ErrUnsupportedFormat wird zurueckgegeben bei ungueltigem Format
var ErrUnsupportedFormat = errors.New("nicht unterstuetztes Bildformat")

// Metadata beschreibt ein Bild ohne es vollstaendig zu dekodieren
type Metadata struct {
	Width  int
	Height int
	Format ImageFormat
}

// DetectFormat erkennt das Bildformat anhand der Magic-Bytes
func DetectFormat(data []byte) ImageFormat {
	if len(data) < 4 {
		return FormatUnknown
	}

	switch {
	case bytes.HasPrefix(data, magicJPEG):
		return FormatJPEG
	case bytes.HasPrefix(data, magicPNG):
		return FormatPNG
	case bytes.HasPrefix(data, magicWebP) && isValidWebP(data):
		return FormatWebP
	case bytes.HasPrefix(data, magicGIF):
		return FormatGIF
	case bytes.HasPrefix(data, magicTIFFLE), bytes.HasPrefix(data, magicTIFFBE):
		return FormatTIFF
	case bytes.HasPrefix(data, magicBMP):
		return FormatBMP
	}

	return FormatUnknown
}

// isValidWebP prueft auf "WEBP" Marker nach RIFF Header
func isValidWebP(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	// RIFF....WEBP
	return data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P'
}

// ValidateFormat prueft ob ein Format unterstuetzt wird
func ValidateFormat(format ImageFormat) error {
	switch format {
	case FormatJPEG, FormatPNG, FormatWebP, FormatGIF, FormatBMP, FormatTIFF:
		return nil
	case FormatUnknown:
		return ErrUnknownFormat
	default:
		return ErrUnsupportedFormat
	}
}

// Probe liest Format und Abmessungen aus dem Header.
// Die Pixel-Daten werden dabei nicht dekodiert.
func Probe(data []byte) (Metadata, error) {
	format := DetectFormat(data)
	if err := ValidateFormat(format); err != nil {
		return Metadata{Format: format}, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Metadata{Format: format}, fmt.Errorf("%w: header lesen fehlgeschlagen: %v", ErrUnknownFormat, err)
	}

	return Metadata{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

// MimeType gibt den MIME-Type fuer ein Format zurueck
func (f ImageFormat) MimeType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}

// String implementiert Stringer Interface
func (f ImageFormat) String() string {
	return string(f)
}
