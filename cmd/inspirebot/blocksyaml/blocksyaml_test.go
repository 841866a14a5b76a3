package blocksyaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requireBuildOK(t *testing.T, yml string) *blocks.Engine {
	t.Helper()
	eng, err := Build([]byte(yml))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	return eng
}

func requireBuildErr(t *testing.T, yml string, wantSubstrs ...string) error {
	t.Helper()
	_, err := Build([]byte(yml))
	if err == nil {
		t.Fatalf("expected error but got none")
	}
	for _, sub := range wantSubstrs {
		if !strings.Contains(err.Error(), sub) {
			t.Errorf("error %q does not contain %q", err.Error(), sub)
		}
	}
	return err
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestBuild_ProgramOnDefaultPalette(t *testing.T) {
	eng := requireBuildOK(t, `
program:
  - block: led-on
    pins: [16]
  - block: wait
    wait: 500
  - block: motor-set
    pins: ["12"]
    values: [1]
`)
	want := "Turn LED on P16\nWait 500 milliseconds\nMotor P12 set to 1"
	if got := eng.Generate(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuild_ShorthandSequence(t *testing.T) {
	eng := requireBuildOK(t, `
- block: set-value
- block: led-off
  pins: [3]
`)
	if got := eng.Generate(); got != "Set value to 0\nTurn LED off P3" {
		t.Fatalf("got %q", got)
	}
}

func TestBuild_CustomPalette(t *testing.T) {
	eng := requireBuildOK(t, `
palette:
  - id: buzz
    content: Buzzer P??? for ??? beats
  - id: pause
    content: Wait 250 milliseconds
program:
  - block: buzz
    pins: [4]
    values: [2]
  - block: pause
`)
	if eng.Palette().Len() != 2 {
		t.Fatalf("palette size: %d", eng.Palette().Len())
	}
	buzz, _ := eng.Palette().Get("buzz")
	if buzz.Category != blocks.CategoryServo {
		t.Fatalf("buzz category: %s", buzz.Category)
	}
	if got := eng.Generate(); got != "Buzzer P4 for 2 beats\nWait 250 milliseconds" {
		t.Fatalf("got %q", got)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Run("unknown block", func(t *testing.T) {
		err := requireBuildErr(t, "program:\n  - block: nope\n", "phase=build", "program[0]")
		if !errors.Is(err, blocks.ErrUnknownTemplate) {
			t.Fatalf("expected ErrUnknownTemplate, got %v", err)
		}
	})
	t.Run("missing block", func(t *testing.T) {
		requireBuildErr(t, "program:\n  - pins: [1]\n", "phase=parse", "program[0]", "missing 'block'")
	})
	t.Run("pins not a list", func(t *testing.T) {
		requireBuildErr(t, "program:\n  - block: led-on\n    pins: 3\n", "program[0].pins", "expected a sequence")
	})
	t.Run("duplicate palette id", func(t *testing.T) {
		err := requireBuildErr(t, `
palette:
  - id: a
    content: Run Forever
  - id: a
    content: Function Setup
`, "phase=build", "palette")
		if !errors.Is(err, blocks.ErrTemplateAlreadyExists) {
			t.Fatalf("expected ErrTemplateAlreadyExists, got %v", err)
		}
	})
	t.Run("palette entry without content", func(t *testing.T) {
		requireBuildErr(t, "palette:\n  - id: a\n", "palette[0]")
	})
	t.Run("empty", func(t *testing.T) {
		requireBuildErr(t, "", "empty YAML")
	})
	t.Run("scalar root", func(t *testing.T) {
		requireBuildErr(t, "hello", "unexpected YAML root kind")
	})
}

func TestBuildMany_MergesPaletteAndProgram(t *testing.T) {
	palette := []byte(`
palette:
  - id: led
    content: Turn LED on P???
`)
	program := []byte(`
program:
  - block: led
    pins: [9]
`)
	eng, err := BuildMany(palette, program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := eng.Generate(); got != "Turn LED on P9" {
		t.Fatalf("got %q", got)
	}
}

func TestParse_WaitAbsentVsSet(t *testing.T) {
	doc, err := Parse([]byte("program:\n  - block: wait\n  - block: wait\n    wait: \"75\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Program[0].Wait != nil {
		t.Fatal("absent wait should be nil")
	}
	if doc.Program[1].Wait == nil || *doc.Program[1].Wait != "75" {
		t.Fatalf("wait: %v", doc.Program[1].Wait)
	}
}
