package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/assistant"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocksyaml"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/pkg/logger"
)

// appName is the single source of truth for the application name.
// Env var names and config paths are derived from it.
const appName = "inspirebot"

var (
	envConfigDir = strings.ToUpper(appName) + "_CONFIG_DIR"
	envPalette   = strings.ToUpper(appName) + "_PALETTE"
	envChatModel = strings.ToUpper(appName) + "_CHAT_MODEL"
	envLogMode   = strings.ToUpper(appName) + "_LOG_MODE"
)

const envGeminiKey = "GEMINI_API_KEY"

// resolveConfigDir returns the base config directory for the application.
// Priority: $INSPIREBOT_CONFIG_DIR > $XDG_CONFIG_HOME/inspirebot > ~/.config/inspirebot
func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// resolvePaletteFile returns the palette document to load, or "" for the
// built-in palette.
// Priority: --palette > $INSPIREBOT_PALETTE > <config>/palette.yml if it exists
func resolvePaletteFile(flagPalette string) (string, error) {
	if flagPalette != "" {
		return flagPalette, nil
	}
	if v := os.Getenv(envPalette); v != "" {
		return v, nil
	}
	dir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{"palette.yml", "palette.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// engineFlags are shared by every command that works on a program.
type engineFlags struct {
	palette  string
	programs []string
}

func addEngineFlags(fs *pflag.FlagSet, f *engineFlags) {
	fs.StringVar(&f.palette, "palette", "",
		"palette YAML file (default: $"+envPalette+", then ~/.config/"+appName+"/palette.yml, then built-in)")
	fs.StringArrayVarP(&f.programs, "file", "f", nil,
		"program YAML file to load (repeatable)")
}

// loadEngine builds an engine from the resolved palette and the program files.
// The palette file is read first so its templates are known to every program.
func loadEngine(f engineFlags) (*blocks.Engine, error) {
	paletteFile, err := resolvePaletteFile(f.palette)
	if err != nil {
		return nil, err
	}
	files := f.programs
	if paletteFile != "" {
		files = append([]string{paletteFile}, files...)
	}
	if len(files) == 0 {
		return blocks.NewEngine(blocks.DefaultPalette()), nil
	}

	inputs := make([][]byte, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("program file %s: %w", name, err)
		}
		inputs = append(inputs, data)
	}
	eng, err := blocksyaml.BuildMany(inputs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strings.Join(files, ", "), err)
	}
	return eng, nil
}

func addLogFlag(fs *pflag.FlagSet, mode *string, def string) {
	fs.StringVar(mode, "log-mode", def, "log mode: dev, prod or off (env: "+envLogMode+")")
}

// newLogger honours $INSPIREBOT_LOG_MODE unless the flag was set explicitly.
func newLogger(fs *pflag.FlagSet, mode string) (*logger.Logger, error) {
	if v := os.Getenv(envLogMode); v != "" && !fs.Changed("log-mode") {
		mode = v
	}
	return logger.New(mode)
}

// newAssistant wires the Gemini backend when an API key is configured.
// Without one every question gets the fallback reply.
func newAssistant(ctx context.Context, log *logger.Logger) *assistant.Assistant {
	backend, err := assistant.NewGeminiBackend(ctx, os.Getenv(envGeminiKey), os.Getenv(envChatModel))
	if err != nil {
		log.Warn("chat backend unavailable", "error", err)
		return assistant.New(nil, assistant.WithLogger(log))
	}
	log.Debug("chat backend ready", "backend", backend.Name())
	return assistant.New(backend, assistant.WithLogger(log))
}
