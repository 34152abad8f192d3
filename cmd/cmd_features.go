// cmd_features.go - Features Command
// Hauptfunktionen: FeaturesHandler
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ollama/imageprep/preprocess"
)

// featuresOutput - JSON-Ausgabe des features Commands
type featuresOutput struct {
	File     string                        `json:"file"`
	Features *preprocess.FeatureDescriptor `json:"features"`
	Stats    preprocess.Stats              `json:"stats"`
}

// FeaturesHandler - Berechnet den Farb-Deskriptor eines Bildes
func FeaturesHandler(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	showHistogram, err := cmd.Flags().GetBool("histogram")
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

	res, err := p.Process(input)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), featuresOutput{File: args[0], Features: res.Features, Stats: res.Stats})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s%s\n", "file", args[0])
	fmt.Fprintf(out, "%-16s%s\n", "mean rgb", formatRGB(res.Features.MeanRGB))
	fmt.Fprintf(out, "%-16s%.4f\n", "mean", res.Stats.Mean)
	fmt.Fprintf(out, "%-16s%.4f\n", "std", res.Stats.Std)
	if res.Stats.Degenerate {
		fmt.Fprintf(out, "%-16s%s\n", "note", "single color image, tensor is all zeros")
	}
	fmt.Fprintln(out)

	var colors [][]string
	for i, rgb := range res.Features.DominantColors {
		colors = append(colors, []string{strconv.Itoa(i + 1), formatRGB(rgb)})
	}
	table := newTable(out, []string{"#", "DOMINANT COLOR"})
	table.AppendBulk(colors)
	table.Render()

	if showHistogram {
		fmt.Fprintln(out)
		renderHistogram(cmd, res.Features.Histogram)
	}

	return nil
}

// renderHistogram - Eine Zeile pro Bin, eine Spalte pro Kanal
func renderHistogram(cmd *cobra.Command, h preprocess.Histogram) {
	if len(h) == 0 {
		return
	}

	var data [][]string
	for j := range h.Channel(0) {
		row := []string{strconv.Itoa(j)}
		for c := range h {
			row = append(row, strconv.Itoa(h.Channel(c)[j]))
		}
		data = append(data, row)
	}

	table := newTable(cmd.OutOrStdout(), []string{"BIN", "R", "G", "B"})
	table.AppendBulk(data)
	table.Render()
}
