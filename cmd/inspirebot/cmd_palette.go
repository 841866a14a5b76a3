package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
)

var paletteFlags engineFlags

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the block templates of the palette",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine(paletteFlags)
		if err != nil {
			return err
		}
		printPalette(cmd.OutOrStdout(), eng.Palette().Templates())
		return nil
	},
}

func init() {
	paletteCmd.Flags().StringVar(&paletteFlags.palette, "palette", "", "palette YAML file")
}

// printPalette prints one aligned row per template: id, category, slot counts, content.
func printPalette(w io.Writer, templates []blocks.BlockTemplate) {
	if len(templates) == 0 {
		fmt.Fprintln(w, "no templates found")
		return
	}

	maxLen := 0
	for _, t := range templates {
		maxLen = max(maxLen, len(t.ID))
	}

	for _, t := range templates {
		pins, generic := t.Slots()
		fmt.Fprintf(w, "%-*s  %-8s  pins=%d values=%d  %s\n", maxLen, t.ID, t.Category, pins, generic, t.Content)
	}
}
