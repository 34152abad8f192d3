package preprocess

import "github.com/ollama/imageprep/vision"

// Codec dekodiert validierte Bild-Bytes. Probe muss unbekannte Formate
// ablehnen, Decode liefert width*height*3 verschraenkte 8-bit Pixel
// (Cover-Resize, Kontrast-Normalisierung, ohne Alpha).
type Codec interface {
	Probe(data []byte) (vision.Metadata, error)
	Decode(data []byte, width, height int) (*vision.PixelBuffer, error)
}

var _ Codec = (*vision.Codec)(nil)
