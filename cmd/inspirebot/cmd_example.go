package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed cmd_example_palette.yml
var examplePaletteYAML []byte

//go:embed cmd_example_program.yml
var exampleProgramYAML []byte

const exampleHeader = `# inspirebot: reference palette and program
# Run:      inspirebot generate --file <this-file>
# Inspect:  inspirebot generate --file <this-file> --tokens
# Edit:     inspirebot --file <this-file>

`

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a reference palette and program",
	Long: "Print a YAML document declaring a palette and a program built from it.\n" +
		"Use --output to write to a file instead of stdout.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		w := cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}

		fmt.Fprint(w, exampleHeader)
		w.Write(examplePaletteYAML)
		fmt.Fprintln(w)
		w.Write(exampleProgramYAML)

		if output != "" {
			fmt.Fprintf(os.Stderr, "written to %s\n", output)
		}
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}
