// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newInfoCmd, newFeaturesCmd, newTensorCmd, newBatchCmd, newBenchCmd, newEnvCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// newInfoCmd - Erstellt den info Command
func newInfoCmd() *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info IMAGE [IMAGE...]",
		Short: "Show format and dimensions of images",
		Args:  cobra.MinimumNArgs(1),
		RunE:  InfoHandler,
	}

	infoCmd.Flags().Bool("base64", false, "Treat file contents as a base64 string or data URL")

	return infoCmd
}

// newFeaturesCmd - Erstellt den features Command
func newFeaturesCmd() *cobra.Command {
	featuresCmd := &cobra.Command{
		Use:   "features IMAGE",
		Short: "Extract mean color, histogram and dominant colors",
		Args:  cobra.ExactArgs(1),
		RunE:  FeaturesHandler,
	}

	featuresCmd.Flags().Bool("json", false, "Print the descriptor as JSON")
	featuresCmd.Flags().Bool("histogram", false, "Print the per-channel histogram")
	featuresCmd.Flags().Bool("base64", false, "Treat file contents as a base64 string or data URL")

	return featuresCmd
}

// newTensorCmd - Erstellt den tensor Command
func newTensorCmd() *cobra.Command {
	tensorCmd := &cobra.Command{
		Use:   "tensor IMAGE",
		Short: "Build the standardized input tensor",
		Args:  cobra.ExactArgs(1),
		RunE:  TensorHandler,
	}

	tensorCmd.Flags().StringP("out", "o", "", "Write raw little-endian tensor data to a file")
	tensorCmd.Flags().Bool("fp16", false, "Write half precision instead of float32")
	tensorCmd.Flags().Bool("base64", false, "Treat file contents as a base64 string or data URL")

	return tensorCmd
}

// newBatchCmd - Erstellt den batch Command
func newBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch IMAGE [IMAGE...]",
		Short: "Process many images concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE:  BatchHandler,
	}

	batchCmd.Flags().Bool("json", false, "Print results as JSON")
	batchCmd.Flags().Int("parallel", 0, "Images processed at the same time (default IMAGEPREP_NUM_PARALLEL)")

	return batchCmd
}

// newBenchCmd - Erstellt den bench Command
func newBenchCmd() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the pipeline with synthetic images",
		Args:  cobra.ExactArgs(0),
		RunE:  BenchHandler,
	}

	benchCmd.Flags().Int("iterations", 20, "Measured iterations per combination")
	benchCmd.Flags().Int("warmup", 2, "Unmeasured warmup runs per combination")
	benchCmd.Flags().String("batch-sizes", "1,4,8", "Comma separated batch sizes")
	benchCmd.Flags().String("image-sizes", "224x224,640x480,1920x1080", "Comma separated source image sizes")
	benchCmd.Flags().String("format", "table", "Output format: table, markdown, csv or json")
	benchCmd.Flags().String("output", "", "Also write results as CSV to this file")

	return benchCmd
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the effective environment configuration",
		Args:  cobra.ExactArgs(0),
		RunE:  EnvHandler,
	}
}
