// MODUL: image
// ZWECK: Dekodierung, Cover-Resize und Pixel-Export fuer die Preprocessing-Pipeline
// INPUT: Bild-Bytes, Zielgroesse
// OUTPUT: ImageInput mit dekodiertem Bild, PixelBuffer mit 8-bit RGB Daten
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: github.com/disintegration/imaging, golang.org/x/image (bmp, tiff, webp)
// HINWEISE: Alle Bilder werden als NRGBA verarbeitet, Alpha wird beim Export verworfen

package vision

import (
	"bytes"
	"fmt"
	"image"

	// Standard-Decoder registrieren
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// RGBChannels ist die Kanalzahl aller exportierten PixelBuffer
const RGBChannels = 3

// ImageInput enthaelt ein dekodiertes Bild mit Metadaten
type ImageInput struct {
	Image  *image.NRGBA
	Width  int
	Height int
	Format ImageFormat
}

// PixelBuffer enthaelt rohe, kanal-verschraenkte 8-bit Pixel (row-major, HWC).
// Invariante: len(Pix) == Width*Height*Channels
type PixelBuffer struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// Len gibt die erwartete Laenge von Pix zurueck
func (p *PixelBuffer) Len() int {
	return p.Width * p.Height * p.Channels
}

// Valid prueft die Laengen-Invariante
func (p *PixelBuffer) Valid() bool {
	return p != nil && p.Width > 0 && p.Height > 0 && p.Channels > 0 && len(p.Pix) == p.Len()
}

// LoadImageFromBytes dekodiert ein Bild aus Byte-Daten
func LoadImageFromBytes(data []byte, autoOrient bool) (*ImageInput, error) {
	format := DetectFormat(data)
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, fmt.Errorf("bild dekodieren fehlgeschlagen: %w", err)
	}

	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()

	return &ImageInput{
		Image:  nrgba,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

// FillCrop skaliert seitenverhaeltnis-erhaltend bis die Zielflaeche
// vollstaendig bedeckt ist und schneidet den Ueberstand zentriert ab.
// Es wird nie mit Rand aufgefuellt.
func FillCrop(img *ImageInput, width, height int, filter imaging.ResampleFilter) (*ImageInput, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	dst := imaging.Fill(img.Image, width, height, imaging.Center, filter)

	return &ImageInput{
		Image:  dst,
		Width:  width,
		Height: height,
		Format: img.Format,
	}, nil
}

// ToPixelBuffer exportiert die RGB-Kanaele; der Alpha-Kanal wird verworfen,
// die (nicht vormultiplizierten) Farbwerte bleiben unveraendert.
func ToPixelBuffer(img *ImageInput) *PixelBuffer {
	src := img.Image
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pix := make([]uint8, w*h*RGBChannels)
	idx := 0
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			pix[idx] = row[x*4]
			pix[idx+1] = row[x*4+1]
			pix[idx+2] = row[x*4+2]
			idx += RGBChannels
		}
	}

	return &PixelBuffer{
		Pix:      pix,
		Width:    w,
		Height:   h,
		Channels: RGBChannels,
	}
}

// ============================================================================
// Codec
// ============================================================================

// Codec dekodiert Bild-Bytes zu PixelBuffern fester Groesse.
// Ein Codec ist nach der Erstellung unveraenderlich und nebenlaeufig nutzbar.
type Codec struct {
	opts Options
}

// NewCodec erstellt einen Codec mit den gegebenen Options.
func NewCodec(opts ...Option) (*Codec, error) {
	o := DefaultOptions()
	o.Apply(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Codec{opts: o}, nil
}

// Options gibt die aktive Konfiguration zurueck
func (c *Codec) Options() Options {
	return c.opts
}

// Probe liest Format und Abmessungen.
func (c *Codec) Probe(data []byte) (Metadata, error) {
	return Probe(data)
}

// Decode fuehrt Dekodierung, Cover-Resize, Kontrast-Normalisierung und
// Alpha-Entfernung aus und gibt width*height*3 Bytes zurueck.
func (c *Codec) Decode(data []byte, width, height int) (*PixelBuffer, error) {
	img, err := LoadImageFromBytes(data, c.opts.AutoOrient)
	if err != nil {
		return nil, err
	}

	resized, err := FillCrop(img, width, height, c.opts.Filter)
	if err != nil {
		return nil, err
	}

	if c.opts.NormalizeContrast {
		resized = NormalizeContrast(resized, c.opts.LowerPercentile, c.opts.UpperPercentile)
	}

	return ToPixelBuffer(resized), nil
}
