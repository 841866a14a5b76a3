package blocks

import "strings"

// WorkspaceBlock is one placed instance of a palette template.
// Its position is its index in the workspace; content and category are read
// through Template and never copied.
type WorkspaceBlock struct {
	InstanceID string
	Template   *BlockTemplate
	HasInput   bool
	HasPin     bool
}

func newWorkspaceBlock(id string, t BlockTemplate) *WorkspaceBlock {
	tpl := t
	return &WorkspaceBlock{
		InstanceID: id,
		Template:   &tpl,
		HasInput:   strings.Contains(t.Content, genericToken),
		HasPin:     strings.Contains(t.Content, pinToken),
	}
}

// Content returns the template content of the block.
func (b *WorkspaceBlock) Content() string { return b.Template.Content }

// IsWait reports whether the block renders through the wait path.
func (b *WorkspaceBlock) IsWait() bool { return b.Template.IsWait() }

// Workspace is the ordered program. Order is emission order.
type Workspace struct {
	blocks []*WorkspaceBlock
}

// Len returns the number of placed blocks.
func (w *Workspace) Len() int { return len(w.blocks) }

// Blocks returns the blocks in order. The slice is a copy; the blocks are shared.
func (w *Workspace) Blocks() []*WorkspaceBlock {
	out := make([]*WorkspaceBlock, len(w.blocks))
	copy(out, w.blocks)
	return out
}

// At returns the block at index i.
func (w *Workspace) At(i int) (*WorkspaceBlock, bool) {
	if i < 0 || i >= len(w.blocks) {
		return nil, false
	}
	return w.blocks[i], true
}

// IndexOf returns the position of the block with the given instance id, or -1.
func (w *Workspace) IndexOf(instanceID string) int {
	for i, b := range w.blocks {
		if b.InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// insert places b at index i, clamped to [0, Len()].
func (w *Workspace) insert(i int, b *WorkspaceBlock) int {
	i = clamp(i, 0, len(w.blocks))
	w.blocks = append(w.blocks, nil)
	copy(w.blocks[i+1:], w.blocks[i:])
	w.blocks[i] = b
	return i
}

// move removes the block at from and reinserts it at to, clamped to the
// last index. Returns false when from is out of range.
func (w *Workspace) move(from, to int) bool {
	if from < 0 || from >= len(w.blocks) {
		return false
	}
	b := w.blocks[from]
	w.blocks = append(w.blocks[:from], w.blocks[from+1:]...)
	w.insert(to, b)
	return true
}

func (w *Workspace) remove(i int) (*WorkspaceBlock, bool) {
	if i < 0 || i >= len(w.blocks) {
		return nil, false
	}
	b := w.blocks[i]
	w.blocks = append(w.blocks[:i], w.blocks[i+1:]...)
	return b, true
}

func (w *Workspace) reset() {
	w.blocks = nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
