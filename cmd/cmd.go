// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ollama/imageprep/envconfig"
	"github.com/ollama/imageprep/logutil"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-30s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "imageprep",
		Short:         "Turn images into normalized tensors and color descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	// Commands erstellen
	infoCmd := newInfoCmd()
	featuresCmd := newFeaturesCmd()
	tensorCmd := newTensorCmd()
	batchCmd := newBatchCmd()
	benchCmd := newBenchCmd()
	envCmd := newEnvCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	pipelineEnvs := []envconfig.EnvVar{
		envVars["IMAGEPREP_DEBUG"],
		envVars["IMAGEPREP_TARGET_SIZE"],
		envVars["IMAGEPREP_HISTOGRAM_BINS"],
		envVars["IMAGEPREP_DOMINANT_COLORS"],
		envVars["IMAGEPREP_STD_EPSILON"],
		envVars["IMAGEPREP_AUTO_ORIENT"],
		envVars["IMAGEPREP_NORMALIZE_CONTRAST"],
	}

	for _, cmd := range []*cobra.Command{
		featuresCmd,
		tensorCmd,
		batchCmd,
		benchCmd,
	} {
		switch cmd {
		case batchCmd, benchCmd:
			appendEnvDocs(cmd, append(pipelineEnvs,
				envVars["IMAGEPREP_NUM_PARALLEL"],
				envVars["IMAGEPREP_BATCH_TIMEOUT"],
			))
		default:
			appendEnvDocs(cmd, pipelineEnvs)
		}
	}

	rootCmd.AddCommand(
		infoCmd,
		featuresCmd,
		tensorCmd,
		batchCmd,
		benchCmd,
		envCmd,
	)

	return rootCmd
}
