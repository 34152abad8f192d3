// cmd_bench.go - Bench Command
// Hauptfunktionen: BenchHandler
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ollama/imageprep/benchmark"
)

// BenchHandler - Misst Latenz und Durchsatz der Pipeline mit synthetischen Bildern
func BenchHandler(cmd *cobra.Command, _ []string) error {
	config := benchmark.DefaultConfig()

	var err error
	if config.Iterations, err = cmd.Flags().GetInt("iterations"); err != nil {
		return err
	}
	if config.WarmupRuns, err = cmd.Flags().GetInt("warmup"); err != nil {
		return err
	}

	batchSizes, err := cmd.Flags().GetString("batch-sizes")
	if err != nil {
		return err
	}
	if config.BatchSizes, err = parseIntList(batchSizes); err != nil {
		return err
	}

	imageSizes, err := cmd.Flags().GetString("image-sizes")
	if err != nil {
		return err
	}
	config.ImageSizes = parseStringList(imageSizes)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}

	results, err := benchmark.Run(cmd.Context(), p, config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		err = benchmark.WriteCSV(out, results)
	case "markdown":
		err = benchmark.NewReport(results, config, p.Config()).WriteMarkdown(out)
	case "json":
		err = benchmark.NewReport(results, config, p.Config()).WriteJSON(out)
	case "table", "":
		benchmark.WriteTable(out, results)
	default:
		return fmt.Errorf("unknown format %q, want table, markdown, csv or json", format)
	}
	if err != nil {
		return err
	}

	if output != "" {
		return benchmark.ExportCSV(results, output)
	}
	return nil
}

// parseIntList - Parst eine kommaseparierte Liste positiver Integers
func parseIntList(s string) ([]int, error) {
	var result []int
	for _, p := range parseStringList(s) {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid batch size %q", p)
		}
		result = append(result, n)
	}
	return result, nil
}

// parseStringList - Parst eine kommaseparierte Liste von Strings
func parseStringList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
