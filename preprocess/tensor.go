// MODUL: tensor
// ZWECK: 4-D Tensor [N, H, W, C] und Aufbau aus dem PixelBuffer
// INPUT: PixelBuffer (8-bit HWC)
// OUTPUT: Tensor mit float64-Daten, Batch-Achse der Groesse 1
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: github.com/x448/float16 (Float16-Export)
// HINWEISE: Reines Reshape, keine Skalierung; Werte bleiben im Bereich 0..255

package preprocess

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/ollama/imageprep/vision"
)

// Tensor ist ein dichter row-major Tensor im NHWC Layout.
type Tensor struct {
	Shape []int
	Data  []float64
}

// NewTensor prueft dass len(data) dem Produkt von shape entspricht.
func NewTensor(shape []int, data []float64) (*Tensor, error) {
	if n := shapeSize(shape); n != len(data) {
		return nil, fmt.Errorf("shape %v needs %d elements, got %d", shape, n, len(data))
	}
	return &Tensor{Shape: shape, Data: data}, nil
}

func shapeSize(shape []int) int {
	if len(shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// Size gibt die Anzahl der Elemente zurueck
func (t *Tensor) Size() int {
	return len(t.Data)
}

// Channels gibt die Groesse der letzten Achse zurueck
func (t *Tensor) Channels() int {
	if len(t.Shape) == 0 {
		return 0
	}
	return t.Shape[len(t.Shape)-1]
}

// At liest das Element (n, y, x, c) eines 4-D Tensors
func (t *Tensor) At(n, y, x, c int) float64 {
	h, w, ch := t.Shape[1], t.Shape[2], t.Shape[3]
	return t.Data[((n*h+y)*w+x)*ch+c]
}

// Float32 kopiert die Daten als float32 (Eingabeformat der meisten Runtimes)
func (t *Tensor) Float32() []float32 {
	out := make([]float32, len(t.Data))
	for i, v := range t.Data {
		out[i] = float32(v)
	}
	return out
}

// Float16 kopiert die Daten als IEEE 754 half precision
func (t *Tensor) Float16() []float16.Float16 {
	out := make([]float16.Float16, len(t.Data))
	for i, v := range t.Data {
		out[i] = float16.Fromfloat32(float32(v))
	}
	return out
}

// Clone kopiert den Tensor in eigenen Speicher, unabhaengig von jedem Scope
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		Shape: append([]int(nil), t.Shape...),
		Data:  append([]float64(nil), t.Data...),
	}
}

// BuildTensor interpretiert den PixelBuffer als [H, W, C] und fuegt die
// Batch-Achse hinzu. Der Speicher stammt aus dem Scope.
func BuildTensor(s *Scope, pix *vision.PixelBuffer) (*Tensor, error) {
	if !pix.Valid() {
		return nil, &ProcessingError{
			Op:  "tensor",
			Err: fmt.Errorf("pixel buffer length mismatch: %s", describeBuffer(pix)),
		}
	}

	data := s.Acquire(len(pix.Pix))
	for i, v := range pix.Pix {
		data[i] = float64(v)
	}

	return &Tensor{
		Shape: []int{1, pix.Height, pix.Width, pix.Channels},
		Data:  data,
	}, nil
}

// channelValues kopiert Kanal c eines NHWC Tensors in einen Scope-Puffer
func channelValues(s *Scope, t *Tensor, c int) []float64 {
	ch := t.Channels()
	out := s.Acquire(len(t.Data) / ch)
	for i := range out {
		out[i] = t.Data[i*ch+c]
	}
	return out
}
