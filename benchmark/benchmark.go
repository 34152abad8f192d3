// MODUL: benchmark
// ZWECK: Benchmark-Suite fuer die Preprocessing-Pipeline mit Latenz-, Durchsatz- und Speichermessung
// INPUT: preprocess.Pipeline, Config
// OUTPUT: Result pro Kombination aus Quellgroesse und Batch-Groesse
// NEBENEFFEKTE: CPU-Last waehrend Benchmark, Speicherallokation
// ABHAENGIGKEITEN: preprocess (ProcessBatch), gonum.org/v1/gonum/stat (Perzentile)
// HINWEISE: Warmup-Laeufe sind wichtig fuer stabile Messungen (Puffer-Pool, Caches)

package benchmark

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ollama/imageprep/preprocess"
)

// ============================================================================
// Datenstrukturen - Ergebnisse
// ============================================================================

// Result enthaelt das Ergebnis eines einzelnen Benchmark-Laufs.
type Result struct {
	SourceSize string        `json:"source_size"` // Groesse der Eingabebilder z.B. "640x480"
	TargetSize int           `json:"target_size"` // Kantenlaenge des Ausgabe-Tensors
	BatchSize  int           `json:"batch_size"`
	Parallel   int           `json:"parallel"`
	Iterations int           `json:"iterations"`
	TotalTime  time.Duration `json:"total_time"`  // Gesamtzeit aller Iterationen
	AvgLatency time.Duration `json:"avg_latency"` // pro Bild
	MinLatency time.Duration `json:"min_latency"`
	MaxLatency time.Duration `json:"max_latency"`
	P95Latency time.Duration `json:"p95_latency"`
	Throughput float64       `json:"throughput"`  // Bilder pro Sekunde
	MemoryUsed uint64        `json:"memory_used"` // Allokierte Bytes waehrend der Messung
}

// ============================================================================
// Datenstrukturen - Konfiguration
// ============================================================================

// Config definiert die Parameter fuer einen Benchmark-Lauf.
type Config struct {
	Iterations int      `json:"iterations"`  // Anzahl Messungen (ohne Warmup)
	WarmupRuns int      `json:"warmup_runs"` // Anzahl Warmup-Laeufe (nicht gemessen)
	BatchSizes []int    `json:"batch_sizes"` // Zu testende Batch-Groessen
	ImageSizes []string `json:"image_sizes"` // Quellgroessen z.B. "640x480"
}

// ErrNoIterations wird zurueckgegeben wenn nichts gemessen werden soll
var ErrNoIterations = errors.New("benchmark: iterations must be > 0")

// DefaultConfig gibt eine Standard-Benchmark-Konfiguration zurueck.
func DefaultConfig() Config {
	return Config{
		Iterations: 20,
		WarmupRuns: 2,
		BatchSizes: []int{1, 4, 8},
		ImageSizes: []string{"224x224", "640x480", "1920x1080"},
	}
}

// ============================================================================
// Haupt-Benchmark-Funktionen
// ============================================================================

// Run fuehrt den Benchmark fuer alle Kombinationen aus ImageSizes und
// BatchSizes aus. Schlaegt ein Bild fehl, wird der Lauf abgebrochen.
func Run(ctx context.Context, p *preprocess.Pipeline, config Config) ([]Result, error) {
	if config.Iterations <= 0 {
		return nil, ErrNoIterations
	}

	var results []Result
	for _, imageSize := range config.ImageSizes {
		width, height, err := ParseImageSize(imageSize)
		if err != nil {
			return nil, err
		}

		for _, batchSize := range config.BatchSizes {
			if batchSize <= 0 {
				continue
			}
			result, err := benchmarkSingleConfig(ctx, p, width, height, batchSize, config)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}

	return results, nil
}

// ============================================================================
// Interne Benchmark-Logik
// ============================================================================

// benchmarkSingleConfig fuehrt Benchmark fuer eine Konfiguration aus.
func benchmarkSingleConfig(ctx context.Context, p *preprocess.Pipeline, width, height, batchSize int, config Config) (Result, error) {
	testBatch := GenerateTestBatch(width, height, batchSize)

	// Warmup-Phase
	for i := 0; i < config.WarmupRuns; i++ {
		if err := processBatch(ctx, p, testBatch); err != nil {
			return Result{}, err
		}
	}

	// GC erzwingen vor Messung
	runtime.GC()
	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	latencies := make([]time.Duration, 0, config.Iterations)
	for i := 0; i < config.Iterations; i++ {
		start := time.Now()
		if err := processBatch(ctx, p, testBatch); err != nil {
			return Result{}, err
		}
		latencies = append(latencies, time.Since(start))
	}

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	stats := calculateStats(latencies)
	totalImages := batchSize * config.Iterations
	perImage := time.Duration(batchSize)

	return Result{
		SourceSize: fmt.Sprintf("%dx%d", width, height),
		TargetSize: p.Config().TargetSize,
		BatchSize:  batchSize,
		Parallel:   p.Config().Parallel,
		Iterations: config.Iterations,
		TotalTime:  stats.total,
		AvgLatency: stats.avg / perImage,
		MinLatency: stats.min / perImage,
		MaxLatency: stats.max / perImage,
		P95Latency: stats.p95 / perImage,
		Throughput: float64(totalImages) / stats.total.Seconds(),
		MemoryUsed: memAfter.TotalAlloc - memBefore.TotalAlloc,
	}, nil
}

// processBatch schickt einen Batch durch die Pipeline; der erste Fehler gewinnt.
func processBatch(ctx context.Context, p *preprocess.Pipeline, batch [][]byte) error {
	inputs := make([]any, len(batch))
	for i, b := range batch {
		inputs[i] = b
	}

	for _, r := range p.ProcessBatch(ctx, inputs) {
		if r.Err != nil {
			return fmt.Errorf("benchmark: image %d: %w", r.Index, r.Err)
		}
	}
	return nil
}

// ============================================================================
// Statistik-Hilfsfunktionen
// ============================================================================

// latencyStats enthaelt berechnete Latenz-Statistiken.
type latencyStats struct {
	total time.Duration
	avg   time.Duration
	min   time.Duration
	max   time.Duration
	p95   time.Duration
}

// calculateStats berechnet Statistiken aus Latenz-Messungen.
func calculateStats(latencies []time.Duration) latencyStats {
	if len(latencies) == 0 {
		return latencyStats{}
	}

	sorted := slices.Clone(latencies)
	slices.Sort(sorted)

	var total time.Duration
	values := make([]float64, len(sorted))
	for i, d := range sorted {
		total += d
		values[i] = float64(d)
	}

	return latencyStats{
		total: total,
		avg:   total / time.Duration(len(latencies)),
		min:   sorted[0],
		max:   sorted[len(sorted)-1],
		p95:   time.Duration(stat.Quantile(0.95, stat.Empirical, values, nil)),
	}
}

// ============================================================================
// Hilfsfunktionen - Parsing
// ============================================================================

// ParseImageSize parsed einen String wie "224x224" zu width, height.
func ParseImageSize(size string) (int, int, error) {
	var width, height int
	if _, err := fmt.Sscanf(size, "%dx%d", &width, &height); err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("benchmark: invalid image size %q, want WIDTHxHEIGHT", size)
	}
	return width, height, nil
}
