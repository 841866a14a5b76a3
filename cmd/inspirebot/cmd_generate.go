package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
)

var (
	generateFlags  engineFlags
	generateTokens bool
)

var generateCmd = &cobra.Command{
	Use:   "generate -f <program.yml>",
	Short: "Print the code generated for a program file",
	Long: "Load one or more program files and print the generated code.\n" +
		"With --tokens, print how each block's text is split into literals and slots instead.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(generateFlags.programs) == 0 {
			return fmt.Errorf("no program files given: use --file")
		}
		eng, err := loadEngine(generateFlags)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if generateTokens {
			printTokens(w, eng)
			return nil
		}
		if code := eng.Generate(); code != "" {
			fmt.Fprintln(w, code)
		}
		return nil
	},
}

func init() {
	addEngineFlags(generateCmd.Flags(), &generateFlags)
	generateCmd.Flags().BoolVar(&generateTokens, "tokens", false,
		"print the token stream of each block instead of the code")
}

// printTokens prints every block with its tokens and the values bound to its slots.
func printTokens(w io.Writer, eng *blocks.Engine) {
	for i, b := range eng.Blocks() {
		fmt.Fprintf(w, "[%d] %s (%s)\n", i, b.InstanceID, b.Template.Category)
		if b.IsWait() {
			v, ok := eng.Inputs().Wait(b.InstanceID)
			if !ok {
				v = blocks.WaitDefault(b.Content()) + " (default)"
			}
			fmt.Fprintf(w, "    wait:  %s\n", v)
		}
		var parts []string
		for _, tok := range blocks.Tokenize(b.Content()) {
			parts = append(parts, tok.String())
		}
		fmt.Fprintf(w, "    tokens: %s\n", strings.Join(parts, " "))
		fmt.Fprintf(w, "    line:   %s\n", blocks.RenderBlock(b, eng.Inputs()))
	}
}
