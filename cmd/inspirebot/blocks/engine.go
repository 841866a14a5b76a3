package blocks

import (
	"fmt"
	"strconv"
)

// List identifies one side of a drag: the palette or the workspace.
type List int

const (
	ListPalette List = iota
	ListWorkspace
)

func (l List) String() string {
	if l == ListWorkspace {
		return "workspace"
	}
	return "palette"
}

// ListRef is a position within a list.
type ListRef struct {
	List  List
	Index int
}

// DragEvent is a finished drag gesture. A nil Destination means the drop
// was cancelled.
type DragEvent struct {
	Source      ListRef
	Destination *ListRef
}

// Engine owns the palette, the workspace and the input stores of a single
// editing session. It is not safe for concurrent use.
type Engine struct {
	palette   *Palette
	workspace *Workspace
	inputs    *Inputs
	seq       int
}

// NewEngine returns an engine over palette with an empty workspace.
// A nil palette selects DefaultPalette.
func NewEngine(palette *Palette) *Engine {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Engine{
		palette:   palette,
		workspace: &Workspace{},
		inputs:    NewInputs(),
	}
}

func (e *Engine) Palette() *Palette     { return e.palette }
func (e *Engine) Workspace() *Workspace { return e.workspace }
func (e *Engine) Inputs() *Inputs       { return e.inputs }

// Blocks returns the workspace blocks in emission order.
func (e *Engine) Blocks() []*WorkspaceBlock { return e.workspace.Blocks() }

// Block returns the placed block with the given instance id.
func (e *Engine) Block(instanceID string) (*WorkspaceBlock, bool) {
	i := e.workspace.IndexOf(instanceID)
	if i < 0 {
		return nil, false
	}
	return e.workspace.At(i)
}

// Place appends a new instance of the template to the workspace.
func (e *Engine) Place(templateID string) (*WorkspaceBlock, error) {
	return e.PlaceAt(templateID, e.workspace.Len())
}

// PlaceAt inserts a new instance of the template at index, clamped to the
// workspace bounds. The palette is left untouched.
func (e *Engine) PlaceAt(templateID string, index int) (*WorkspaceBlock, error) {
	t, ok := e.palette.Get(templateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, templateID)
	}
	return e.place(t, index), nil
}

func (e *Engine) place(t BlockTemplate, index int) *WorkspaceBlock {
	b := newWorkspaceBlock(e.mintID(t.ID), t)
	e.workspace.insert(index, b)
	return b
}

// mintID pairs the template id with a per-engine sequence number, so two
// placements of the same template never collide.
func (e *Engine) mintID(templateID string) string {
	e.seq++
	return templateID + "-" + strconv.Itoa(e.seq)
}

// Reorder applies a drag gesture and reports whether anything changed.
//
//   - same list: array move of the dragged element within that list.
//   - palette -> workspace: place a copy of the palette template at the drop index.
//   - cancelled drops and workspace -> palette: no-op.
//
// Out-of-range source indices are no-ops; destination indices are clamped.
func (e *Engine) Reorder(ev DragEvent) bool {
	if ev.Destination == nil {
		return false
	}
	dst := *ev.Destination
	switch {
	case ev.Source.List == dst.List && ev.Source.Index == dst.Index:
		return false
	case ev.Source.List == ListWorkspace && dst.List == ListWorkspace:
		return e.workspace.move(ev.Source.Index, dst.Index)
	case ev.Source.List == ListPalette && dst.List == ListPalette:
		return e.palette.move(ev.Source.Index, dst.Index)
	case ev.Source.List == ListPalette && dst.List == ListWorkspace:
		t, ok := e.palette.At(ev.Source.Index)
		if !ok {
			return false
		}
		e.place(t, dst.Index)
		return true
	default:
		return false
	}
}

// Remove deletes the block at index together with its recorded inputs.
func (e *Engine) Remove(index int) (*WorkspaceBlock, bool) {
	b, ok := e.workspace.remove(index)
	if ok {
		e.inputs.forget(b.InstanceID)
	}
	return b, ok
}

// Reset empties the workspace and the input stores.
func (e *Engine) Reset() {
	e.workspace.reset()
	e.inputs.reset()
}

// SetPinValue records the value of a P??? slot; any string is accepted and
// negative slots are ignored.
func (e *Engine) SetPinValue(instanceID string, slot int, value string) {
	e.inputs.SetPin(instanceID, slot, value)
}

// SetGenericValue records the value of a ??? slot; any string is
// accepted and negative slots are ignored.
func (e *Engine) SetGenericValue(instanceID string, slot int, value string) {
	e.inputs.SetGeneric(instanceID, slot, value)
}

// SetWaitValue records the duration of a wait block; any string is accepted.
func (e *Engine) SetWaitValue(instanceID, value string) {
	e.inputs.SetWait(instanceID, value)
}

// Generate renders the current workspace.
func (e *Engine) Generate() string {
	return Generate(e.workspace.blocks, e.inputs)
}
