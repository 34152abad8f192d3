// cmd_utils.go - Gemeinsame Hilfsfunktionen
// Hauptfunktionen: newPipeline, newCodec, readInput
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ollama/imageprep/envconfig"
	"github.com/ollama/imageprep/preprocess"
	"github.com/ollama/imageprep/vision"
)

// newCodec - Erstellt den Codec aus den IMAGEPREP_* Flags
func newCodec() (*vision.Codec, error) {
	return vision.NewCodec(
		vision.WithAutoOrient(envconfig.AutoOrient()),
		vision.WithContrastNormalization(envconfig.NormalizeContrast(true)),
	)
}

// newPipeline - Erstellt die Pipeline aus der Environment-Konfiguration
func newPipeline(opts ...preprocess.Option) (*preprocess.Pipeline, error) {
	cfg, err := preprocess.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	codec, err := newCodec()
	if err != nil {
		return nil, err
	}

	return preprocess.NewPipeline(cfg, codec, preprocess.WithLogger(slog.Default()))
}

// readInput - Liest eine Datei (oder stdin bei "-") als Pipeline-Eingabe.
// Mit asBase64 wird der Inhalt als String uebergeben.
func readInput(cmd *cobra.Command, path string, asBase64 bool) (any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if asBase64 {
		return string(data), nil
	}
	return data, nil
}
