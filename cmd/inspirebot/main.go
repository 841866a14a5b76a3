package main

import (
	"errors"

	"github.com/joho/godotenv"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/pkg/lib"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, blocks.ErrUnknownTemplate) {
			lib.ExitHint(err, "run `"+appName+" palette` to list the template ids")
		}
		lib.Exit(err)
	}
}
