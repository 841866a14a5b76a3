package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocksyaml"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestResolvePaletteFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envConfigDir, dir)
	t.Setenv(envPalette, "")

	t.Run("built-in when nothing configured", func(t *testing.T) {
		got, err := resolvePaletteFile("")
		if err != nil || got != "" {
			t.Fatalf("got %q, %v; want empty", got, err)
		}
	})

	cfg := writeFile(t, dir, "palette.yml", "palette: []\n")

	t.Run("config dir", func(t *testing.T) {
		if got, _ := resolvePaletteFile(""); got != cfg {
			t.Fatalf("got %q want %q", got, cfg)
		}
	})

	t.Run("env beats config dir", func(t *testing.T) {
		t.Setenv(envPalette, "/env/palette.yml")
		if got, _ := resolvePaletteFile(""); got != "/env/palette.yml" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv(envPalette, "/env/palette.yml")
		if got, _ := resolvePaletteFile("/flag.yml"); got != "/flag.yml" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestLoadEngine(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envConfigDir, dir)
	t.Setenv(envPalette, "")

	t.Run("default palette", func(t *testing.T) {
		eng, err := loadEngine(engineFlags{})
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := eng.Palette().Get("led-on"); !ok {
			t.Fatal("default palette missing led-on")
		}
	})

	palette := writeFile(t, dir, "mine.yml", "palette:\n  - id: beep\n    content: Beep P???\n")
	program := writeFile(t, dir, "prog.yml", "- block: beep\n  pins: [4]\n")

	t.Run("palette and program files", func(t *testing.T) {
		eng, err := loadEngine(engineFlags{palette: palette, programs: []string{program}})
		if err != nil {
			t.Fatal(err)
		}
		if got := eng.Generate(); got != "Beep P4" {
			t.Fatalf("Generate() = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadEngine(engineFlags{programs: []string{filepath.Join(dir, "nope.yml")}})
		if err == nil || !strings.Contains(err.Error(), "nope.yml") {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestExampleBuilds(t *testing.T) {
	eng, err := blocksyaml.BuildMany(examplePaletteYAML, exampleProgramYAML)
	if err != nil {
		t.Fatalf("example does not build: %v", err)
	}
	want := strings.Join([]string{
		"Function Setup",
		"Run Forever",
		"Turn LED on P13",
		"Wait 500 milliseconds",
		"Turn LED off P13",
		"Servo P9 to 90 degrees",
		"Wait 250 milliseconds",
	}, "\n")
	if got := eng.Generate(); got != want {
		t.Fatalf("Generate():\n%s\nwant:\n%s", got, want)
	}

	var out bytes.Buffer
	printTokens(&out, eng)
	if !strings.Contains(out.String(), "wait:  500 (default)") {
		t.Fatalf("token dump misses the default wait:\n%s", out.String())
	}
}

func TestPrintPalette(t *testing.T) {
	eng, err := loadEngine(engineFlags{palette: writeFile(t, t.TempDir(), "p.yml",
		"palette:\n  - id: a\n    content: Motor P??? set to ???\n")})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	printPalette(&out, eng.Palette().Templates())
	if got, want := out.String(), "a  movement  pins=1 values=1  Motor P??? set to ???\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
