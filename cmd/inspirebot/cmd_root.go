package main

import (
	"github.com/spf13/cobra"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/editor"
)

var rootFlags engineFlags

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Inspire Bot block editor",
	Long: "Inspire Bot block editor\n\n" +
		"Without a command the terminal editor starts: pick blocks from the palette,\n" +
		"arrange them into a program, set pins and values, then run it.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine(rootFlags)
		if err != nil {
			return err
		}
		return editor.Run(eng)
	},
}

func init() {
	addEngineFlags(rootCmd.Flags(), &rootFlags)
}
