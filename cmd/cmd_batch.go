// cmd_batch.go - Batch Command
// Hauptfunktionen: BatchHandler
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ollama/imageprep/envconfig"
	"github.com/ollama/imageprep/preprocess"
)

// batchOutput - JSON-Ausgabe pro Bild
type batchOutput struct {
	File  string `json:"file"`
	Error string `json:"error,omitempty"`
	preprocess.BatchResult
}

// BatchHandler - Verarbeitet alle Bilder parallel und zeigt eine Uebersicht
func BatchHandler(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	parallel, err := cmd.Flags().GetInt("parallel")
	if err != nil {
		return err
	}

	p, err := newPipeline(preprocess.WithParallel(parallel))
	if err != nil {
		return err
	}

	// Unlesbare Dateien werden als fehlgeschlagene Eintraege gefuehrt
	inputs := make([]any, len(args))
	readErrs := make([]error, len(args))
	for i, path := range args {
		inputs[i], readErrs[i] = readInput(cmd, path, false)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), envconfig.BatchTimeout())
	defer cancel()

	results := p.ProcessBatch(ctx, inputs)

	failed := 0
	outputs := make([]batchOutput, len(results))
	for i, r := range results {
		if readErrs[i] != nil {
			r.Err = readErrs[i]
		}
		outputs[i] = batchOutput{File: args[i], BatchResult: r}
		if r.Err != nil {
			outputs[i].Error = r.Err.Error()
			outputs[i].Result = nil
			failed++
		}
	}

	if asJSON {
		if err := writeJSON(cmd.OutOrStdout(), outputs); err != nil {
			return err
		}
	} else {
		renderBatch(cmd, outputs)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(args))
	}
	return nil
}

// renderBatch - Tabelle mit einer Zeile pro Bild
func renderBatch(cmd *cobra.Command, outputs []batchOutput) {
	var data [][]string
	for _, o := range outputs {
		status, mean := "ok", "-"
		if o.Error != "" {
			status = o.Error
		} else if o.Result != nil {
			mean = formatRGB(o.Result.Features.MeanRGB)
		}

		data = append(data, []string{
			o.ID.String()[:8],
			truncatePath(o.File),
			mean,
			o.Duration.Round(time.Millisecond).String(),
			status,
		})
	}

	table := newTable(cmd.OutOrStdout(), []string{"ID", "FILE", "MEAN RGB", "DURATION", "STATUS"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}
