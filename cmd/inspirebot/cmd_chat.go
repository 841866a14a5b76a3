package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatLogMode string

var chatCmd = &cobra.Command{
	Use:   "chat <question...>",
	Short: "Ask the Inspire Bot assistant a question",
	Long: "Ask the assistant one question and print its answer.\n" +
		"The Gemini API key is read from $" + envGeminiKey + " (a .env file is honoured);\n" +
		"the model can be changed with $" + envChatModel + ".",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd.Flags(), chatLogMode)
		if err != nil {
			return err
		}
		defer log.Sync()

		reply := newAssistant(cmd.Context(), log).Ask(cmd.Context(), strings.Join(args, " "))
		fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
		return nil
	},
}

func init() {
	addLogFlag(chatCmd.Flags(), &chatLogMode, "off")
}
