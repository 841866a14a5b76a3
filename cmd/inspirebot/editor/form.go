package editor

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
)

// slotEdit holds the values bound to the fields of an open slot form.
// The slices are allocated once so the form can keep pointers into them.
type slotEdit struct {
	instanceID string
	wait       bool
	waitValue  string
	pins       []string
	values     []string
}

// newSlotEdit prefills the edit from recorded inputs, falling back to the
// values the block renders with today.
func newSlotEdit(b *blocks.WorkspaceBlock, in *blocks.Inputs) *slotEdit {
	e := &slotEdit{instanceID: b.InstanceID, wait: b.IsWait()}
	if e.wait {
		v, ok := in.Wait(b.InstanceID)
		if !ok {
			v = blocks.WaitDefault(b.Content())
		}
		e.waitValue = v
		return e
	}

	pins, generic := b.Template.Slots()
	e.pins = make([]string, pins)
	for i := range e.pins {
		if v, ok := in.Pin(b.InstanceID, i); ok {
			e.pins[i] = v
		} else {
			e.pins[i] = "0"
		}
	}
	e.values = make([]string, generic)
	for i := range e.values {
		if v, ok := in.Generic(b.InstanceID, i); ok {
			e.values[i] = v
		} else {
			e.values[i] = "0"
		}
	}
	return e
}

// empty reports whether the block has nothing to edit.
func (e *slotEdit) empty() bool {
	return !e.wait && len(e.pins) == 0 && len(e.values) == 0
}

// apply writes every field back into the engine.
func (e *slotEdit) apply(eng *blocks.Engine) {
	if e.wait {
		eng.SetWaitValue(e.instanceID, e.waitValue)
		return
	}
	for i, v := range e.pins {
		eng.SetPinValue(e.instanceID, i, v)
	}
	for i, v := range e.values {
		eng.SetGenericValue(e.instanceID, i, v)
	}
}

// form builds the huh form for the edit. Pins are chosen from the pin labels;
// generic values are free text with the usual choices as suggestions.
func (e *slotEdit) form(title string) *huh.Form {
	var fields []huh.Field
	if e.wait {
		fields = append(fields, huh.NewInput().
			Title("Wait (milliseconds)").
			Value(&e.waitValue))
	}
	for i := range e.pins {
		fields = append(fields, huh.NewSelect[string]().
			Title(fmt.Sprintf("Pin %d", i+1)).
			Options(huh.NewOptions(blocks.PinLabels()...)...).
			Value(&e.pins[i]))
	}
	for i := range e.values {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Value %d", i+1)).
			Suggestions(blocks.GenericChoices()).
			Value(&e.values[i]))
	}
	return huh.NewForm(huh.NewGroup(fields...).Title(title)).WithShowHelp(true)
}
