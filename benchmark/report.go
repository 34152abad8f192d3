// MODUL: report
// ZWECK: Report-Generierung fuer Benchmark-Ergebnisse (JSON, Markdown)
// INPUT: Result Slices, Config, Pipeline-Config
// OUTPUT: Report mit Systeminfo und Zusammenfassung
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: encoding/json, runtime
// HINWEISE: Zusammenfassung waehlt die Kombination mit dem hoechsten Durchsatz

package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/ollama/imageprep/preprocess"
)

// Report enthaelt alle Benchmark-Ergebnisse mit Metadaten.
type Report struct {
	Timestamp  time.Time         `json:"timestamp"`
	SystemInfo SystemInfo        `json:"system_info"`
	Config     Config            `json:"config"`
	Pipeline   preprocess.Config `json:"pipeline"`
	Results    []Result          `json:"results"`
	Summary    ReportSummary     `json:"summary"`
}

// SystemInfo enthaelt Systeminformationen zum Benchmark.
type SystemInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUCores  int    `json:"cpu_cores"`
	GoVersion string `json:"go_version"`
}

// ReportSummary fasst die wichtigsten Ergebnisse zusammen.
type ReportSummary struct {
	FastestSource  string  `json:"fastest_source"`
	FastestBatch   int     `json:"fastest_batch"`
	BestThroughput float64 `json:"best_throughput"`
	TotalTests     int     `json:"total_tests"`
}

// CurrentSystemInfo liest die Systeminformationen des laufenden Prozesses.
func CurrentSystemInfo() SystemInfo {
	return SystemInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUCores:  runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
}

// NewReport erstellt einen neuen Report aus Benchmark-Ergebnissen.
func NewReport(results []Result, config Config, pipeline preprocess.Config) *Report {
	return &Report{
		Timestamp:  time.Now(),
		SystemInfo: CurrentSystemInfo(),
		Config:     config,
		Pipeline:   pipeline,
		Results:    results,
		Summary:    generateSummary(results),
	}
}

// generateSummary erstellt eine Zusammenfassung.
func generateSummary(results []Result) ReportSummary {
	summary := ReportSummary{TotalTests: len(results)}
	for _, r := range results {
		if r.Throughput > summary.BestThroughput {
			summary.BestThroughput = r.Throughput
			summary.FastestSource = r.SourceSize
			summary.FastestBatch = r.BatchSize
		}
	}
	return summary
}

// WriteJSON schreibt den Report als JSON auf einen Writer.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteMarkdown schreibt den Report als Markdown.
func (r *Report) WriteMarkdown(w io.Writer) error {
	fmt.Fprintf(w, "# Preprocessing Benchmark Report\n\n")
	fmt.Fprintf(w, "**Datum:** %s\n\n", r.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "## Systeminfo\n\n")
	fmt.Fprintf(w, "- **OS:** %s\n- **Architektur:** %s\n- **CPU-Kerne:** %d\n- **Go:** %s\n",
		r.SystemInfo.OS, r.SystemInfo.Arch, r.SystemInfo.CPUCores, r.SystemInfo.GoVersion)
	fmt.Fprintf(w, "- **Pipeline:** %dx%d, %d Bins, k=%d, parallel=%d\n\n",
		r.Pipeline.TargetSize, r.Pipeline.TargetSize, r.Pipeline.Bins, r.Pipeline.DominantColors, r.Pipeline.Parallel)

	fmt.Fprintf(w, "## Ergebnisse\n\n")
	PrintMarkdown(w, r.Results)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Zusammenfassung\n\n")
	fmt.Fprintf(w, "- **Schnellste Kombination:** %s, Batch %d\n", r.Summary.FastestSource, r.Summary.FastestBatch)
	fmt.Fprintf(w, "- **Beste Durchsatzrate:** %.1f img/s\n", r.Summary.BestThroughput)
	fmt.Fprintf(w, "- **Tests durchgefuehrt:** %d\n", r.Summary.TotalTests)
	return nil
}
