// Package shell implements the line-oriented block editor behind
// "inspirebot shell".
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/assistant"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/simulator"
)

// ErrExit is returned by Exec when the user asked to leave the shell.
var ErrExit = errors.New("exit")

// Asker answers chat questions.
type Asker interface {
	Ask(ctx context.Context, text string) assistant.Reply
}

// Picker lets the user choose one template; it returns the chosen index.
type Picker func(templates []blocks.BlockTemplate) (int, error)

// Shell executes editor commands against a single engine.
type Shell struct {
	eng   *blocks.Engine
	scene *simulator.Scene
	chat  Asker
	out   io.Writer
	pick  Picker
}

// Option configures a Shell.
type Option func(*Shell)

// WithPicker replaces the interactive fuzzy finder used by "pick".
func WithPicker(p Picker) Option {
	return func(s *Shell) { s.pick = p }
}

// WithScene replaces the simulator used by "run".
func WithScene(sc *simulator.Scene) Option {
	return func(s *Shell) { s.scene = sc }
}

// New returns a shell writing its output to out. chat may be nil.
func New(eng *blocks.Engine, chat Asker, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		eng:   eng,
		scene: simulator.New(1),
		chat:  chat,
		out:   out,
		pick:  fuzzyPick,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type command struct {
	name  string
	usage string
	help  string
	run   func(s *Shell, ctx context.Context, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"palette", "palette", "list the blocks you can add", (*Shell).cmdPalette},
		{"add", "add <id> [index]", "add a block, at the end or at index", (*Shell).cmdAdd},
		{"pick", "pick", "choose a block to add with a fuzzy finder", (*Shell).cmdPick},
		{"move", "move <from> <to>", "move a block to a new position", (*Shell).cmdMove},
		{"rm", "rm <index>", "remove the block at index", (*Shell).cmdRemove},
		{"reset", "reset", "remove every block", (*Shell).cmdReset},
		{"pin", "pin <index> <slot> <value>", "choose the pin for a P??? slot", (*Shell).cmdPin},
		{"value", "value <index> <slot> <value>", "choose the value for a ??? slot", (*Shell).cmdValue},
		{"wait", "wait <index> <ms>", "set the duration of a wait block", (*Shell).cmdWait},
		{"show", "show", "print the program with its values", (*Shell).cmdShow},
		{"run", "run", "generate the code and move the robot", (*Shell).cmdRun},
		{"chat", "chat <question...>", "ask the assistant", (*Shell).cmdChat},
		{"help", "help", "show this help", (*Shell).cmdHelp},
		{"exit", "exit", "leave the shell", func(*Shell, context.Context, []string) error { return ErrExit }},
	}
}

func lookup(name string) (command, bool) {
	if name == "quit" {
		name = "exit"
	}
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Exec runs one command line. Blank lines are ignored.
func (s *Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	c, ok := lookup(fields[0])
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	return c.run(s, ctx, fields[1:])
}

func usageError(name string) error {
	c, _ := lookup(name)
	return fmt.Errorf("usage: %s", c.usage)
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return i, nil
}

// blockAt resolves a workspace index argument to a block.
func (s *Shell) blockAt(arg string) (*blocks.WorkspaceBlock, error) {
	i, err := parseIndex(arg)
	if err != nil {
		return nil, err
	}
	b, ok := s.eng.Workspace().At(i)
	if !ok {
		return nil, fmt.Errorf("no block at index %d", i)
	}
	return b, nil
}

func (s *Shell) cmdPalette(_ context.Context, _ []string) error {
	templates := s.eng.Palette().Templates()
	maxLen := 0
	for _, t := range templates {
		maxLen = max(maxLen, len(t.ID))
	}
	for _, t := range templates {
		fmt.Fprintf(s.out, "%-*s  %-8s  %s\n", maxLen, t.ID, t.Category, t.Content)
	}
	return nil
}

func (s *Shell) cmdAdd(_ context.Context, args []string) error {
	var (
		b   *blocks.WorkspaceBlock
		err error
	)
	switch len(args) {
	case 1:
		b, err = s.eng.Place(args[0])
	case 2:
		i, perr := parseIndex(args[1])
		if perr != nil {
			return perr
		}
		b, err = s.eng.PlaceAt(args[0], i)
	default:
		return usageError("add")
	}
	if err != nil {
		return err
	}
	s.printPlaced(b)
	return nil
}

func (s *Shell) cmdPick(_ context.Context, _ []string) error {
	templates := s.eng.Palette().Templates()
	i, err := s.pick(templates)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return nil
	}
	if err != nil {
		return err
	}
	if i < 0 || i >= len(templates) {
		return fmt.Errorf("picked index %d out of range", i)
	}
	b, err := s.eng.Place(templates[i].ID)
	if err != nil {
		return err
	}
	s.printPlaced(b)
	return nil
}

func (s *Shell) printPlaced(b *blocks.WorkspaceBlock) {
	fmt.Fprintf(s.out, "added [%d] %s\n", s.eng.Workspace().IndexOf(b.InstanceID), b.Content())
}

func (s *Shell) cmdMove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("move")
	}
	from, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	moved := s.eng.Reorder(blocks.DragEvent{
		Source:      blocks.ListRef{List: blocks.ListWorkspace, Index: from},
		Destination: &blocks.ListRef{List: blocks.ListWorkspace, Index: to},
	})
	if !moved {
		fmt.Fprintln(s.out, "nothing moved")
		return nil
	}
	return s.cmdShow(ctx, nil)
}

func (s *Shell) cmdRemove(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("rm")
	}
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	b, ok := s.eng.Remove(i)
	if !ok {
		return fmt.Errorf("no block at index %d", i)
	}
	fmt.Fprintf(s.out, "removed %s\n", b.Content())
	return nil
}

func (s *Shell) cmdReset(_ context.Context, _ []string) error {
	s.eng.Reset()
	s.scene.Reset()
	fmt.Fprintln(s.out, "program cleared")
	return nil
}

func (s *Shell) cmdPin(_ context.Context, args []string) error {
	return s.setSlot("pin", args, func(b *blocks.WorkspaceBlock) int {
		pins, _ := b.Template.Slots()
		return pins
	}, s.eng.SetPinValue)
}

func (s *Shell) cmdValue(_ context.Context, args []string) error {
	return s.setSlot("value", args, func(b *blocks.WorkspaceBlock) int {
		_, generic := b.Template.Slots()
		return generic
	}, s.eng.SetGenericValue)
}

// setSlot parses "<index> <slot> <value>" and stores value through set.
func (s *Shell) setSlot(name string, args []string, slots func(*blocks.WorkspaceBlock) int, set func(string, int, string)) error {
	if len(args) != 3 {
		return usageError(name)
	}
	b, err := s.blockAt(args[0])
	if err != nil {
		return err
	}
	slot, err := strconv.Atoi(args[1])
	if err != nil || slot < 0 || slot >= slots(b) {
		return fmt.Errorf("block %q has no %s slot %s", b.Content(), name, args[1])
	}
	set(b.InstanceID, slot, args[2])
	fmt.Fprintln(s.out, blocks.RenderBlock(b, s.eng.Inputs()))
	return nil
}

func (s *Shell) cmdWait(_ context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("wait")
	}
	b, err := s.blockAt(args[0])
	if err != nil {
		return err
	}
	if !b.IsWait() {
		return fmt.Errorf("block %q is not a wait block", b.Content())
	}
	s.eng.SetWaitValue(b.InstanceID, args[1])
	fmt.Fprintln(s.out, blocks.RenderBlock(b, s.eng.Inputs()))
	return nil
}

func (s *Shell) cmdShow(_ context.Context, _ []string) error {
	bs := s.eng.Blocks()
	if len(bs) == 0 {
		fmt.Fprintln(s.out, "(empty program)")
		return nil
	}
	for i, b := range bs {
		fmt.Fprintf(s.out, "%3d  %s\n", i, blocks.RenderBlock(b, s.eng.Inputs()))
	}
	return nil
}

func (s *Shell) cmdRun(_ context.Context, _ []string) error {
	code := s.eng.Generate()
	if code == "" {
		fmt.Fprintln(s.out, "(empty program)")
		return nil
	}
	fmt.Fprintln(s.out, code)
	s.scene.Reset()
	s.scene.Run(code)
	fmt.Fprintf(s.out, "robot: %s\n", s.scene.Pose())
	return nil
}

func (s *Shell) cmdChat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("chat")
	}
	if s.chat == nil {
		fmt.Fprintln(s.out, assistant.FallbackReply)
		return nil
	}
	reply := s.chat.Ask(ctx, strings.Join(args, " "))
	fmt.Fprintln(s.out, reply.Text)
	return nil
}

func (s *Shell) cmdHelp(_ context.Context, _ []string) error {
	maxLen := 0
	for _, c := range commands {
		maxLen = max(maxLen, len(c.usage))
	}
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-*s  %s\n", maxLen, c.usage, c.help)
	}
	return nil
}

// fuzzyPick opens a terminal fuzzy finder over the palette.
func fuzzyPick(templates []blocks.BlockTemplate) (int, error) {
	return fuzzyfinder.Find(
		templates,
		func(i int) string {
			return templates[i].Content
		},
		fuzzyfinder.WithPromptString("Select block: "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			t := templates[i]
			pins, generic := t.Slots()
			return fmt.Sprintf("id:       %s\ncategory: %s\npins:     %d\nvalues:   %d", t.ID, t.Category, pins, generic)
		}),
	)
}
