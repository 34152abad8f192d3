// MODUL: batch
// ZWECK: Unabhaengige Bilder parallel durch die Pipeline schicken
// INPUT: Kontext, Liste von Eingaben
// OUTPUT: BatchResult pro Eingabe (gleiche Reihenfolge)
// NEBENEFFEKTE: startet bis zu Config.Parallel Goroutinen
// ABHAENGIGKEITEN: golang.org/x/sync/errgroup, github.com/google/uuid
// HINWEISE: Fehler eines Bildes brechen den Batch nicht ab; Abbruch nur ueber ctx

package preprocess

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BatchResult ist das Ergebnis eines einzelnen Bildes im Batch
type BatchResult struct {
	ID       uuid.UUID     `json:"id"`
	Index    int           `json:"index"`
	Result   *Result       `json:"result,omitempty"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// ProcessBatch verarbeitet alle Eingaben mit hoechstens Config.Parallel
// gleichzeitigen Bildern. Wird ctx abgebrochen, erhalten nicht gestartete
// Bilder einen ProcessingError mit ctx.Err() als Ursache.
func (p *Pipeline) ProcessBatch(ctx context.Context, inputs []any) []BatchResult {
	results := make([]BatchResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Parallel)

	start := time.Now()
	for i, input := range inputs {
		results[i] = BatchResult{ID: uuid.New(), Index: i}

		if err := ctx.Err(); err != nil {
			results[i].Err = &ProcessingError{Op: "batch", Err: err}
			continue
		}

		g.Go(func() error {
			r := &results[i]
			if err := ctx.Err(); err != nil {
				r.Err = &ProcessingError{Op: "batch", Err: err}
				return nil
			}

			t0 := time.Now()
			r.Result, r.Err = p.Process(input)
			r.Duration = time.Since(t0)

			if r.Err != nil {
				p.logger.Debug("batch item failed", "id", r.ID, "index", i, "error", r.Err)
			}
			return nil
		})
	}

	// Goroutinen liefern nie einen Fehler; Fehler stehen in den Ergebnissen
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.logger.Debug("batch finished", "items", len(inputs), "failed", failed, "parallel", p.cfg.Parallel, "duration", time.Since(start))

	return results
}
