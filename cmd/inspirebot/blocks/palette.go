package blocks

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockTemplate is an immutable palette entry.
type BlockTemplate struct {
	ID       string
	Content  string
	Category Category
}

// NewTemplate returns a template with its category derived from content.
func NewTemplate(id, content string) BlockTemplate {
	return BlockTemplate{ID: id, Content: content, Category: Classify(content)}
}

// IsWait reports whether the template is rendered through the wait path.
func (t BlockTemplate) IsWait() bool {
	return isWaitContent(t.Content)
}

// Slots returns the number of pin and generic placeholders in the content.
func (t BlockTemplate) Slots() (pins, generic int) {
	for _, tok := range tokenize(t.Content) {
		switch tok.Kind {
		case TokenPinSlot:
			pins++
		case TokenGenericSlot:
			generic++
		}
	}
	return pins, generic
}

func isWaitContent(content string) bool {
	return strings.Contains(content, "Wait") && strings.Contains(content, "milliseconds")
}

// Palette holds the templates offered for placement, in display order.
// Templates are registered once and looked up by id when placed.
type Palette struct {
	order []string
	byID  map[string]BlockTemplate
}

// NewPalette returns an empty Palette.
func NewPalette() *Palette {
	return &Palette{byID: make(map[string]BlockTemplate)}
}

// Register appends a template to the palette.
// Returns ErrTemplateAlreadyExists if a template with that id is already registered.
func (p *Palette) Register(t BlockTemplate) error {
	if t.ID == "" || t.Content == "" {
		return fmt.Errorf("%w: id and content are required", ErrInvalidTemplate)
	}
	if _, exists := p.byID[t.ID]; exists {
		return fmt.Errorf("%w: %s", ErrTemplateAlreadyExists, t.ID)
	}
	if t.Category == "" {
		t.Category = Classify(t.Content)
	}
	p.order = append(p.order, t.ID)
	p.byID[t.ID] = t
	return nil
}

// Get returns the template registered under id.
func (p *Palette) Get(id string) (BlockTemplate, bool) {
	t, ok := p.byID[id]
	return t, ok
}

// At returns the template at display position i.
func (p *Palette) At(i int) (BlockTemplate, bool) {
	if i < 0 || i >= len(p.order) {
		return BlockTemplate{}, false
	}
	return p.byID[p.order[i]], true
}

// move changes the display position of the template at from; the set of
// templates is untouched. Returns false when from is out of range.
func (p *Palette) move(from, to int) bool {
	if from < 0 || from >= len(p.order) {
		return false
	}
	id := p.order[from]
	p.order = append(p.order[:from], p.order[from+1:]...)
	to = clamp(to, 0, len(p.order))
	p.order = append(p.order, "")
	copy(p.order[to+1:], p.order[to:])
	p.order[to] = id
	return true
}

// Len returns the number of templates.
func (p *Palette) Len() int { return len(p.order) }

// Templates returns a copy of all templates in display order.
func (p *Palette) Templates() []BlockTemplate {
	out := make([]BlockTemplate, len(p.order))
	for i, id := range p.order {
		out[i] = p.byID[id]
	}
	return out
}

var defaultTemplates = []struct{ id, content string }{
	{"function-setup", "Function Setup"},
	{"run-forever", "Run Forever"},
	{"repeat", "Repeat ??? times"},
	{"if-pin", "If P??? is ???"},
	{"led-on", "Turn LED on P???"},
	{"led-off", "Turn LED off P???"},
	{"motor-set", "Motor P??? set to ???"},
	{"motor-stop", "Motor P??? stop"},
	{"servo-angle", "Servo P??? to ??? degrees"},
	{"set-value", "Set value to ???"},
	{"wait", "Wait 1000 milliseconds"},
}

// DefaultPalette returns the built-in Inspire Bot block catalog.
func DefaultPalette() *Palette {
	p := NewPalette()
	for _, d := range defaultTemplates {
		// ids are unique by construction
		_ = p.Register(NewTemplate(d.id, d.content))
	}
	return p
}

const pinCount = 17

// PinLabels returns the valid pin labels "0".."16" in natural order.
func PinLabels() []string {
	out := make([]string, pinCount)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// GenericChoices returns the values offered for a generic ??? slot.
// Any string is still accepted as input.
func GenericChoices() []string {
	return []string{"0", "1", "500", "1000", "2000"}
}
