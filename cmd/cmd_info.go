// cmd_info.go - Info und Env Commands
// Hauptfunktionen: InfoHandler, EnvHandler
package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ollama/imageprep/envconfig"
	"github.com/ollama/imageprep/preprocess"
)

// InfoHandler - Zeigt Format und Abmessungen der Bilder
func InfoHandler(cmd *cobra.Command, args []string) error {
	asBase64, err := cmd.Flags().GetBool("base64")
	if err != nil {
		return err
	}

	codec, err := newCodec()
	if err != nil {
		return err
	}

	var data [][]string
	for _, path := range args {
		input, err := readInput(cmd, path, asBase64)
		if err != nil {
			return err
		}

		raw, err := preprocess.ResolveInput(input)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		meta, err := codec.Probe(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", path, &preprocess.UnsupportedFormatError{Format: meta.Format, Err: err})
		}

		data = append(data, []string{
			truncatePath(path),
			meta.Format.String(),
			meta.Format.MimeType(),
			fmt.Sprintf("%dx%d", meta.Width, meta.Height),
		})
	}

	table := newTable(cmd.OutOrStdout(), []string{"FILE", "FORMAT", "MIME", "SIZE"})
	table.AppendBulk(data)
	table.Render()

	return nil
}

// EnvHandler - Zeigt alle IMAGEPREP_* Variablen mit aktuellem Wert
func EnvHandler(cmd *cobra.Command, _ []string) error {
	vars := envconfig.AsMap()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	values := envconfig.Values()
	var data [][]string
	for _, name := range names {
		data = append(data, []string{name, strconv.Quote(values[name]), vars[name].Description})
	}

	table := newTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}
