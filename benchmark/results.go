// MODUL: results
// ZWECK: Formatierung und Export von Benchmark-Ergebnissen
// INPUT: Result Slices
// OUTPUT: Formatierte Ausgabe (Tabelle, CSV, Markdown)
// NEBENEFFEKTE: Dateisystem-Schreibzugriff bei ExportCSV
// ABHAENGIGKEITEN: github.com/olekukonko/tablewriter, encoding/csv
// HINWEISE: CSV-Export verwendet Semikolon als Trennzeichen fuer DE-Kompatibilitaet

package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// ============================================================================
// Terminal-Ausgabe
// ============================================================================

// WriteTable gibt Ergebnisse als ausgerichtete Tabelle aus.
func WriteTable(w io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "Keine Ergebnisse vorhanden.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"SOURCE", "TARGET", "BATCH", "AVG", "P95", "THROUGHPUT", "MEMORY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	for _, r := range results {
		table.Append([]string{
			r.SourceSize,
			fmt.Sprintf("%dx%d", r.TargetSize, r.TargetSize),
			strconv.Itoa(r.BatchSize),
			formatDuration(r.AvgLatency),
			formatDuration(r.P95Latency),
			fmt.Sprintf("%.1f img/s", r.Throughput),
			formatBytes(r.MemoryUsed),
		})
	}
	table.Render()
}

// ============================================================================
// Markdown-Ausgabe
// ============================================================================

// PrintMarkdown gibt Ergebnisse als Markdown-Tabelle aus.
func PrintMarkdown(w io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "_Keine Ergebnisse vorhanden._")
		return
	}

	fmt.Fprintln(w, "| Source | Target | Batch | Avg Latenz | P95 | Throughput | Memory |")
	fmt.Fprintln(w, "|--------|--------|-------|------------|-----|------------|--------|")
	for _, r := range results {
		fmt.Fprintf(w, "| %s | %dx%d | %d | %s | %s | %.1f img/s | %s |\n",
			r.SourceSize,
			r.TargetSize, r.TargetSize,
			r.BatchSize,
			formatDuration(r.AvgLatency),
			formatDuration(r.P95Latency),
			r.Throughput,
			formatBytes(r.MemoryUsed),
		)
	}
}

// ============================================================================
// CSV-Export
// ============================================================================

// ExportCSV exportiert Ergebnisse als CSV-Datei.
func ExportCSV(results []Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv-datei erstellen: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, results); err != nil {
		return err
	}
	return f.Close()
}

// WriteCSV schreibt Ergebnisse als CSV auf einen Writer.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';' // Semikolon fuer DE-Excel-Kompatibilitaet

	header := []string{
		"source_size", "target_size", "batch_size", "parallel", "iterations",
		"avg_latency_ms", "min_latency_ms", "max_latency_ms", "p95_latency_ms",
		"throughput_img_s", "memory_bytes",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		if err := cw.Write(buildCSVRow(r)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// buildCSVRow erstellt eine CSV-Zeile aus einem Result.
func buildCSVRow(r Result) []string {
	return []string{
		r.SourceSize,
		strconv.Itoa(r.TargetSize),
		strconv.Itoa(r.BatchSize),
		strconv.Itoa(r.Parallel),
		strconv.Itoa(r.Iterations),
		formatMillis(r.AvgLatency),
		formatMillis(r.MinLatency),
		formatMillis(r.MaxLatency),
		formatMillis(r.P95Latency),
		strconv.FormatFloat(r.Throughput, 'f', 2, 64),
		strconv.FormatUint(r.MemoryUsed, 10),
	}
}

// ============================================================================
// Formatierungs-Hilfsfunktionen
// ============================================================================

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 3, 64)
}

// formatDuration formatiert eine Duration fuer menschliche Lesbarkeit.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// formatBytes formatiert Bytes fuer menschliche Lesbarkeit.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
