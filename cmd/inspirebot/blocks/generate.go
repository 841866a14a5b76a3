package blocks

import "strings"

const (
	defaultSlotValue = "0"
	defaultWaitValue = "1000"
)

// Generate renders the workspace as source text, one line per block in
// workspace order, joined by "\n". It reads inputs but never modifies them,
// so repeated calls over unchanged state return the same string.
func Generate(blocks []*WorkspaceBlock, inputs *Inputs) string {
	if inputs == nil {
		inputs = NewInputs()
	}
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, RenderBlock(b, inputs))
	}
	return strings.Join(lines, "\n")
}

// RenderBlock renders a single block line.
func RenderBlock(b *WorkspaceBlock, inputs *Inputs) string {
	if b.IsWait() {
		return "Wait " + waitValue(b, inputs) + " milliseconds"
	}

	var sb strings.Builder
	for _, tok := range tokenize(b.Content()) {
		switch tok.Kind {
		case TokenLiteral:
			sb.WriteString(tok.Text)
		case TokenPinSlot:
			v, ok := inputs.Pin(b.InstanceID, tok.Slot)
			if !ok {
				v = defaultSlotValue
			}
			sb.WriteString("P")
			sb.WriteString(v)
		case TokenGenericSlot:
			v, ok := inputs.Generic(b.InstanceID, tok.Slot)
			if !ok {
				v = defaultSlotValue
			}
			sb.WriteString(v)
		}
	}
	return sb.String()
}

func waitValue(b *WorkspaceBlock, inputs *Inputs) string {
	if v, ok := inputs.Wait(b.InstanceID); ok {
		return v
	}
	return WaitDefault(b.Content())
}

// WaitDefault returns the milliseconds shown by a wait block nobody has
// edited: the first number written in its content, or "1000".
func WaitDefault(content string) string {
	start := strings.IndexFunc(content, isDigit)
	if start < 0 {
		return defaultWaitValue
	}
	end := start
	for end < len(content) && isDigit(rune(content[end])) {
		end++
	}
	return content[start:end]
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
