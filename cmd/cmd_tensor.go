// cmd_tensor.go - Tensor Command
// Hauptfunktionen: TensorHandler, writeTensor
package cmd

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ollama/imageprep/preprocess"
)

// TensorHandler - Baut den standardisierten Tensor und schreibt ihn optional
func TensorHandler(cmd *cobra.Command, args []string) error {
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	fp16, err := cmd.Flags().GetBool("fp16")
	if err != nil {
		return err
	}
	asBase64, err := cmd.Flags().GetBool("base64")
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args[0], asBase64)
	if err != nil {
		return err
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}

	t, err := p.PreprocessImage(input)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	dtype := "float32"
	if fp16 {
		dtype = "float16"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s%v\n", "shape", t.Shape)
	fmt.Fprintf(out, "%-16s%s\n", "dtype", dtype)
	fmt.Fprintf(out, "%-16s%s\n", "layout", "NHWC")

	if outPath == "" {
		return nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := writeTensor(f, t, fp16)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%-16s%s (%d bytes)\n", "written", outPath, n)
	return nil
}

// writeTensor - Schreibt die Tensor-Daten little-endian ohne Header
func writeTensor(w io.Writer, t *preprocess.Tensor, fp16 bool) (int, error) {
	bw := bufio.NewWriter(w)

	var data any
	var size int
	if fp16 {
		halfs := t.Float16()
		bits := make([]uint16, len(halfs))
		for i, h := range halfs {
			bits[i] = h.Bits()
		}
		data, size = bits, 2*len(bits)
	} else {
		data, size = t.Float32(), 4*t.Size()
	}

	if err := binary.Write(bw, binary.LittleEndian, data); err != nil {
		return 0, err
	}
	return size, bw.Flush()
}
