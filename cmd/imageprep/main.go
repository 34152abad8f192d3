package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ollama/imageprep/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
