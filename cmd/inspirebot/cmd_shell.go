package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/shell"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/pkg/logger"
)

var shellFlags engineFlags

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit a program from a command prompt",
	Long: "Start an interactive prompt to build a program block by block.\n" +
		"Commands are completed with Tab; type help for the list.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine(shellFlags)
		if err != nil {
			return err
		}
		var history string
		if dir, err := resolveConfigDir(); err == nil {
			history = filepath.Join(dir, "history")
		}
		chat := newAssistant(cmd.Context(), logger.Nop())
		return shell.New(eng, chat, cmd.OutOrStdout()).Run(cmd.Context(), history)
	},
}

func init() {
	addEngineFlags(shellCmd.Flags(), &shellFlags)
}
