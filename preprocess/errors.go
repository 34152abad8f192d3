// MODUL: errors
// ZWECK: Fehler-Taxonomie der Preprocessing-Pipeline
// INPUT: Ursache (optional)
// OUTPUT: InvalidInputError, UnsupportedFormatError, ProcessingError
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Alle Fehler sind terminal, es gibt keine Retries; Auswertung via errors.As

package preprocess

import (
	"fmt"

	"github.com/ollama/imageprep/vision"
)

// MsgInvalidInput ist die Meldung fuer fehlende, leere oder falsch typisierte Eingaben
const MsgInvalidInput = "Invalid input: expected Buffer or base64 string"

// InvalidInputError: Eingabe ist weder Byte-Puffer noch base64-String,
// oder der aufgeloeste Puffer ist leer.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", MsgInvalidInput, e.Err)
	}
	return MsgInvalidInput
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// UnsupportedFormatError: der Codec konnte das Bildformat nicht bestimmen.
type UnsupportedFormatError struct {
	Format vision.ImageFormat
	Err    error
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported image format %q: %v", e.Format, e.Err)
}

func (e *UnsupportedFormatError) Unwrap() error { return e.Err }

// ProcessingError: Fehler im Codec oder verletzte Shape-Invariante.
// Op benennt die Stufe ("decode", "tensor", "features", "batch").
type ProcessingError struct {
	Op  string
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed during %s: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
