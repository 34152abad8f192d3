package preprocess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ollama/imageprep/vision"
)

func TestBuildTensor(t *testing.T) {
	pool := NewBufferPool()
	scope := pool.Scope()
	defer scope.Close()

	pix := solidBuffer(224, [3]uint8{10, 20, 30})
	tensor, err := BuildTensor(scope, pix)
	if err != nil {
		t.Fatalf("BuildTensor() error = %v", err)
	}

	if diff := cmp.Diff([]int{1, 224, 224, 3}, tensor.Shape); diff != "" {
		t.Errorf("Shape falsch (-want +got):\n%s", diff)
	}
	if tensor.Size() != 224*224*3 {
		t.Errorf("Size() = %d, erwartet %d", tensor.Size(), 224*224*3)
	}
	if tensor.Channels() != 3 {
		t.Errorf("Channels() = %d, erwartet 3", tensor.Channels())
	}

	// Werte bleiben unskaliert
	for _, pos := range [][2]int{{0, 0}, {100, 17}, {223, 223}} {
		for c, want := range []float64{10, 20, 30} {
			if got := tensor.At(0, pos[0], pos[1], c); got != want {
				t.Errorf("At(0, %d, %d, %d) = %v, erwartet %v", pos[0], pos[1], c, got, want)
			}
		}
	}
}

func TestBuildTensorLayout(t *testing.T) {
	scope := NewBufferPool().Scope()
	defer scope.Close()

	// 2x2 Bild, jedes Pixel eindeutig
	pix := &vision.PixelBuffer{
		Pix:      []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Width:    2,
		Height:   2,
		Channels: 3,
	}
	tensor, err := BuildTensor(scope, pix)
	if err != nil {
		t.Fatal(err)
	}

	if got := tensor.At(0, 1, 0, 2); got != 9 {
		t.Errorf("At(0, 1, 0, 2) = %v, erwartet 9", got)
	}
	if got := tensor.At(0, 0, 1, 0); got != 4 {
		t.Errorf("At(0, 0, 1, 0) = %v, erwartet 4", got)
	}
}

func TestBuildTensorLengthMismatch(t *testing.T) {
	scope := NewBufferPool().Scope()
	defer scope.Close()

	pix := &vision.PixelBuffer{Pix: make([]uint8, 5), Width: 2, Height: 2, Channels: 3}
	_, err := BuildTensor(scope, pix)

	var perr *ProcessingError
	if !errors.As(err, &perr) || perr.Op != "tensor" {
		t.Fatalf("Fehler = %v, erwartet ProcessingError(tensor)", err)
	}
	if scope.Live() != 0 {
		t.Errorf("Live() = %d, erwartet 0 nach Fehler", scope.Live())
	}
}

func TestNewTensor(t *testing.T) {
	if _, err := NewTensor([]int{1, 2, 2, 3}, make([]float64, 12)); err != nil {
		t.Errorf("NewTensor() error = %v", err)
	}
	if _, err := NewTensor([]int{1, 2, 2, 3}, make([]float64, 11)); err == nil {
		t.Error("NewTensor() mit falscher Laenge: kein Fehler")
	}
}

func TestTensorExports(t *testing.T) {
	tensor, err := NewTensor([]int{1, 1, 2, 2}, []float64{0, 1, -2, 0.5})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]float32{0, 1, -2, 0.5}, tensor.Float32()); diff != "" {
		t.Errorf("Float32() falsch (-want +got):\n%s", diff)
	}

	var bits []uint16
	for _, h := range tensor.Float16() {
		bits = append(bits, h.Bits())
	}
	if diff := cmp.Diff([]uint16{0x0000, 0x3c00, 0xc000, 0x3800}, bits); diff != "" {
		t.Errorf("Float16() Bits falsch (-want +got):\n%s", diff)
	}
}

func TestTensorClone(t *testing.T) {
	tensor, _ := NewTensor([]int{1, 1, 1, 3}, []float64{1, 2, 3})
	clone := tensor.Clone()
	clone.Data[0] = 99
	clone.Shape[3] = 7

	if tensor.Data[0] != 1 || tensor.Shape[3] != 3 {
		t.Error("Clone() teilt Speicher mit dem Original")
	}
}
