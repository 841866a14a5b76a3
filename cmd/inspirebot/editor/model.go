// Package editor is the terminal block editor: a palette pane, a program
// pane, keyboard drag and drop, slot forms and a Run action.
package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/simulator"
)

type appState int

const (
	stateBrowse appState = iota
	stateEdit
)

type pane int

const (
	panePalette pane = iota
	paneWorkspace
)

func (p pane) list() blocks.List {
	if p == paneWorkspace {
		return blocks.ListWorkspace
	}
	return blocks.ListPalette
}

const (
	defaultWidth  = 100
	defaultHeight = 24
)

// Model is the bubbletea model of the editor. The engine is shared between
// copies of the model; all mutation goes through it.
type Model struct {
	eng   *blocks.Engine
	scene *simulator.Scene

	palette   list.Model
	workspace list.Model
	focus     pane
	state     appState

	grab *blocks.ListRef
	edit *slotEdit
	form *huh.Form

	output string
	status string
}

// New returns an editor over eng.
func New(eng *blocks.Engine) Model {
	m := Model{
		eng:       eng,
		scene:     simulator.New(uint64(time.Now().UnixNano())),
		palette:   newList("Palette"),
		workspace: newList("Program"),
		focus:     panePalette,
	}
	m.resize(defaultWidth, defaultHeight)
	m.refresh()
	return m
}

func newList(title string) list.Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = title
	l.Styles.Title = styleTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

// Run starts the editor in the alternate screen and blocks until it quits.
func Run(eng *blocks.Engine) error {
	_, err := tea.NewProgram(New(eng), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
	}
	switch m.state {
	case stateEdit:
		return m.updateEdit(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.focus == panePalette {
			m.focus = paneWorkspace
		} else {
			m.focus = panePalette
		}
	case "up", "k":
		m.current().CursorUp()
	case "down", "j":
		m.current().CursorDown()
	case " ":
		m.toggleGrab()
	case "esc":
		if m.grab != nil {
			m.eng.Reorder(blocks.DragEvent{Source: *m.grab})
			m.grab = nil
			m.status = "drop cancelled"
		}
	case "enter", "a":
		if m.focus == panePalette {
			m.addSelected()
		} else {
			return m.openForm()
		}
	case "e":
		if m.focus == paneWorkspace {
			return m.openForm()
		}
	case "K", "shift+up":
		m.shift(-1)
	case "J", "shift+down":
		m.shift(+1)
	case "x", "delete":
		m.removeSelected()
	case "R":
		m.eng.Reset()
		m.scene.Reset()
		m.grab = nil
		m.output = ""
		m.status = "program cleared"
	case "r":
		m.run()
	}
	m.refresh()
	return m, nil
}

func (m *Model) current() *list.Model {
	if m.focus == paneWorkspace {
		return &m.workspace
	}
	return &m.palette
}

// toggleGrab picks up the item under the cursor, or drops the held item at
// the cursor of the focused pane.
func (m *Model) toggleGrab() {
	idx := m.current().Index()
	if m.grab == nil {
		if m.current().SelectedItem() == nil {
			return
		}
		m.grab = &blocks.ListRef{List: m.focus.list(), Index: idx}
		m.status = "grabbed: move to a position and press space to drop, esc to cancel"
		return
	}
	src := *m.grab
	m.grab = nil
	if m.eng.Reorder(blocks.DragEvent{
		Source:      src,
		Destination: &blocks.ListRef{List: m.focus.list(), Index: idx},
	}) {
		m.status = "dropped"
		m.refresh()
		m.current().Select(idx)
		return
	}
	m.status = "nothing to drop here"
}

func (m *Model) addSelected() {
	it, ok := m.palette.SelectedItem().(paletteItem)
	if !ok {
		return
	}
	b, err := m.eng.Place(it.tpl.ID)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.refresh()
	m.workspace.Select(m.eng.Workspace().IndexOf(b.InstanceID))
	m.status = "added " + it.tpl.Content
}

func (m *Model) shift(delta int) {
	if m.focus != paneWorkspace {
		return
	}
	from := m.workspace.Index()
	to := from + delta
	if to < 0 || to >= m.eng.Workspace().Len() {
		return
	}
	if m.eng.Reorder(blocks.DragEvent{
		Source:      blocks.ListRef{List: blocks.ListWorkspace, Index: from},
		Destination: &blocks.ListRef{List: blocks.ListWorkspace, Index: to},
	}) {
		m.grab = nil
		m.refresh()
		m.workspace.Select(to)
	}
}

func (m *Model) removeSelected() {
	if m.focus != paneWorkspace {
		return
	}
	idx := m.workspace.Index()
	if b, ok := m.eng.Remove(idx); ok {
		m.status = "removed " + b.Content()
		m.grab = nil
	}
}

func (m *Model) run() {
	code := m.eng.Generate()
	if code == "" {
		m.output = "(empty program)"
		return
	}
	m.scene.Reset()
	m.scene.Run(code)
	m.output = code + "\n\nrobot: " + m.scene.Pose().String()
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	b, ok := m.eng.Workspace().At(m.workspace.Index())
	if !ok {
		return m, nil
	}
	edit := newSlotEdit(b, m.eng.Inputs())
	if edit.empty() {
		m.status = "this block has no values to set"
		return m, nil
	}
	m.edit = edit
	m.form = edit.form(b.Content())
	m.state = stateEdit
	return m, m.form.Init()
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m.closeForm("edit cancelled"), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.edit.apply(m.eng)
		m = m.closeForm("values saved")
		return m, nil
	case huh.StateAborted:
		return m.closeForm("edit cancelled"), nil
	}
	return m, cmd
}

func (m Model) closeForm(status string) Model {
	m.state = stateBrowse
	m.form = nil
	m.edit = nil
	m.status = status
	m.refresh()
	return m
}

// refresh rebuilds both panes from the engine, keeping cursors in range.
func (m *Model) refresh() {
	templates := m.eng.Palette().Templates()
	pItems := make([]list.Item, len(templates))
	for i, t := range templates {
		pItems[i] = paletteItem{
			tpl:     t,
			grabbed: m.grab != nil && m.grab.List == blocks.ListPalette && m.grab.Index == i,
		}
	}
	m.palette.SetItems(pItems)

	bs := m.eng.Blocks()
	wItems := make([]list.Item, len(bs))
	for i, b := range bs {
		wItems[i] = blockItem{
			block:   b,
			line:    blocks.RenderBlock(b, m.eng.Inputs()),
			grabbed: m.grab != nil && m.grab.List == blocks.ListWorkspace && m.grab.Index == i,
		}
	}
	m.workspace.SetItems(wItems)
	if n := len(wItems); n > 0 && m.workspace.Index() >= n {
		m.workspace.Select(n - 1)
	}
}

func (m *Model) resize(width, height int) {
	paneWidth := width/2 - 4
	paneHeight := height - 10
	if paneHeight < 5 {
		paneHeight = 5
	}
	m.palette.SetSize(paneWidth, paneHeight)
	m.workspace.SetSize(paneWidth, paneHeight)
}

func (m Model) View() string {
	if m.state == stateEdit && m.form != nil {
		return styleTitle.Render("Set block values") + "\n" + m.form.View() + "\n" +
			styleHelp.Render("enter  next/confirm    esc  cancel")
	}

	left, right := stylePane, stylePane
	if m.focus == panePalette {
		left = stylePaneFocused
	} else {
		right = stylePaneFocused
	}
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("INSPIRE BOT  block editor"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left.Render(m.palette.View()), right.Render(m.workspace.View())))
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(styleStatus.Render(m.status))
		sb.WriteString("\n")
	}
	if m.output != "" {
		sb.WriteString(styleCode.Render(m.output))
		sb.WriteString("\n")
	}
	sb.WriteString(styleHelp.Render(m.helpLine()))
	return sb.String()
}

func (m Model) helpLine() string {
	if m.focus == panePalette {
		return "↑/↓  move    enter  add    space  grab/drop    tab  program    r  run    q  quit"
	}
	return fmt.Sprintf("↑/↓  move    K/J  reorder    e  values    x  remove    space  grab/drop    R  clear    r  run    q  quit  (%d blocks)",
		m.eng.Workspace().Len())
}
