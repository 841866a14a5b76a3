package blocks

import "testing"

func TestGenerate_Empty(t *testing.T) {
	if got := NewEngine(nil).Generate(); got != "" {
		t.Fatalf("empty workspace: got %q", got)
	}
	if got := Generate(nil, nil); got != "" {
		t.Fatalf("nil blocks: got %q", got)
	}
}

func TestGenerate_OrderSensitive(t *testing.T) {
	e := NewEngine(testPalette(t))
	x := mustPlace(t, e, "led")
	mustPlace(t, e, "wait")
	e.SetPinValue(x.InstanceID, 0, "16")

	if got, want := e.Generate(), "Turn LED on P16\nWait 500 milliseconds"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	e.Reorder(DragEvent{
		Source:      ListRef{List: ListWorkspace, Index: 1},
		Destination: &ListRef{List: ListWorkspace, Index: 0},
	})
	if got, want := e.Generate(), "Wait 500 milliseconds\nTurn LED on P16"; got != want {
		t.Fatalf("after reorder got %q, want %q", got, want)
	}
}

func TestGenerate_Defaults(t *testing.T) {
	e := NewEngine(testPalette(t))
	mustPlace(t, e, "set")
	mustPlace(t, e, "led")
	if got, want := e.Generate(), "Set value to 0\nTurn LED on P0"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerate_MixedSlots(t *testing.T) {
	e := NewEngine(testPalette(t))
	m := mustPlace(t, e, "motor")
	e.SetPinValue(m.InstanceID, 0, "12")
	e.SetGenericValue(m.InstanceID, 0, "1")
	if got, want := e.Generate(), "Motor P12 set to 1"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerate_IndependentInstances(t *testing.T) {
	e := NewEngine(testPalette(t))
	a := mustPlace(t, e, "led")
	mustPlace(t, e, "led")
	e.SetPinValue(a.InstanceID, 0, "5")
	if got, want := e.Generate(), "Turn LED on P5\nTurn LED on P0"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerate_WaitBlock(t *testing.T) {
	p := NewPalette()
	for _, tpl := range []BlockTemplate{
		NewTemplate("wait", "Wait 500 milliseconds"),
		NewTemplate("wait-slot", "Wait ??? milliseconds"),
		NewTemplate("wait-odd", "Wait P??? then ??? milliseconds"),
	} {
		if err := p.Register(tpl); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("content default", func(t *testing.T) {
		e := NewEngine(p)
		mustPlace(t, e, "wait")
		if got := e.Generate(); got != "Wait 500 milliseconds" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("fallback default", func(t *testing.T) {
		e := NewEngine(p)
		mustPlace(t, e, "wait-slot")
		if got := e.Generate(); got != "Wait 1000 milliseconds" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("never substitutes slots", func(t *testing.T) {
		e := NewEngine(p)
		b := mustPlace(t, e, "wait-odd")
		e.SetGenericValue(b.InstanceID, 0, "42")
		e.SetPinValue(b.InstanceID, 0, "9")
		if got := e.Generate(); got != "Wait 1000 milliseconds" {
			t.Fatalf("got %q", got)
		}
		e.SetWaitValue(b.InstanceID, "250")
		if got := e.Generate(); got != "Wait 250 milliseconds" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestGenerate_Idempotent(t *testing.T) {
	e := NewEngine(nil)
	for _, id := range []string{"function-setup", "motor-set", "wait", "servo-angle"} {
		mustPlace(t, e, id)
	}
	blocks := e.Blocks()
	e.SetGenericValue(blocks[3].InstanceID, 0, "90")
	first := e.Generate()
	second := e.Generate()
	if first != second {
		t.Fatalf("generate not idempotent:\n%q\n%q", first, second)
	}
	want := "Function Setup\nMotor P0 set to 0\nWait 1000 milliseconds\nServo P0 to 90 degrees"
	if first != want {
		t.Fatalf("got %q, want %q", first, want)
	}
}

func TestGenerate_FreeFormValues(t *testing.T) {
	e := NewEngine(testPalette(t))
	b := mustPlace(t, e, "set")
	e.SetGenericValue(b.InstanceID, 0, "hello world")
	e.SetGenericValue(b.InstanceID, -1, "ignored")
	if got := e.Generate(); got != "Set value to hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestWaitDefault(t *testing.T) {
	cases := map[string]string{
		"Wait 1000 milliseconds": "1000",
		"Wait 25 milliseconds":   "25",
		"Wait ??? milliseconds":  "1000",
		"Wait milliseconds":      "1000",
	}
	for content, want := range cases {
		if got := WaitDefault(content); got != want {
			t.Errorf("WaitDefault(%q) = %q, want %q", content, got, want)
		}
	}
}
