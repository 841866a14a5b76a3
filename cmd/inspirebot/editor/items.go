package editor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
)

// paletteItem is a palette template shown in the left pane.
type paletteItem struct {
	tpl     blocks.BlockTemplate
	grabbed bool
}

func (i paletteItem) FilterValue() string { return i.tpl.Content }

// blockItem is a placed block shown in the right pane with its rendered line.
type blockItem struct {
	block   *blocks.WorkspaceBlock
	line    string
	grabbed bool
}

func (i blockItem) FilterValue() string { return i.line }

// itemDelegate renders both item kinds on a single line, coloured by category.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var (
		text    string
		cat     blocks.Category
		grabbed bool
	)
	switch it := item.(type) {
	case paletteItem:
		text, cat, grabbed = it.tpl.Content, it.tpl.Category, it.grabbed
	case blockItem:
		text, cat, grabbed = fmt.Sprintf("%2d  %s", index+1, it.line), it.block.Template.Category, it.grabbed
	default:
		fmt.Fprintf(w, "%v", item)
		return
	}

	line := categoryStyle(cat).Render("■ ") + text
	if grabbed {
		line = styleGrabbed.Render(line)
	}
	if index == m.Index() {
		fmt.Fprint(w, styleCursor.Render("> ")+line)
		return
	}
	fmt.Fprint(w, "  "+line)
}
