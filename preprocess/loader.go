// MODUL: loader
// ZWECK: Eingabe validieren, base64 aufloesen, Codec aufrufen
// INPUT: []byte oder string (Data-URL / base64 mit Marker)
// OUTPUT: PixelBuffer fester Groesse (H x W x 3)
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: vision (Codec-Vertrag), encoding/base64
// HINWEISE: Jede andere Eingabe (auch nil) ergibt InvalidInputError

package preprocess

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ollama/imageprep/vision"
)

const base64Marker = "base64"

// ResolveInput wandelt die Rohdaten in einen nicht-leeren Byte-Puffer um.
func ResolveInput(input any) ([]byte, error) {
	var data []byte

	switch v := input.(type) {
	case []byte:
		data = v
	case string:
		if !strings.Contains(v, base64Marker) {
			return nil, &InvalidInputError{}
		}
		decoded, err := decodeBase64Payload(v)
		if err != nil {
			return nil, &InvalidInputError{Err: err}
		}
		data = decoded
	default:
		return nil, &InvalidInputError{}
	}

	if len(data) == 0 {
		return nil, &InvalidInputError{}
	}
	return data, nil
}

// decodeBase64Payload entfernt alles bis einschliesslich des ersten Kommas
// und dekodiert den Rest. Padding ist optional.
func decodeBase64Payload(s string) ([]byte, error) {
	if _, payload, ok := strings.Cut(s, ","); ok {
		s = payload
	}
	s = strings.TrimSpace(s)

	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}

	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("base64 dekodieren fehlgeschlagen: %w", err)
	}
	return data, nil
}

// Load validiert die Eingabe und laesst den Codec ein Bild der
// konfigurierten Groesse erzeugen.
func Load(input any, codec Codec, cfg Config) (*vision.PixelBuffer, error) {
	data, err := ResolveInput(input)
	if err != nil {
		return nil, err
	}

	meta, err := codec.Probe(data)
	if err != nil {
		return nil, &UnsupportedFormatError{Format: meta.Format, Err: err}
	}

	pix, err := codec.Decode(data, cfg.TargetSize, cfg.TargetSize)
	if err != nil {
		return nil, &ProcessingError{Op: "decode", Err: err}
	}

	if !pix.Valid() || pix.Width != cfg.TargetSize || pix.Height != cfg.TargetSize || pix.Channels != cfg.Channels {
		return nil, &ProcessingError{
			Op:  "decode",
			Err: fmt.Errorf("codec returned %s, want %dx%dx%d", describeBuffer(pix), cfg.TargetSize, cfg.TargetSize, cfg.Channels),
		}
	}

	return pix, nil
}

func describeBuffer(pix *vision.PixelBuffer) string {
	if pix == nil {
		return "no buffer"
	}
	return fmt.Sprintf("%dx%dx%d (%d bytes)", pix.Height, pix.Width, pix.Channels, len(pix.Pix))
}
