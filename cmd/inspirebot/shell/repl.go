package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

const prompt = "\033[35minspirebot>\033[0m "

// Run reads commands from the terminal until exit, EOF or ctx is done.
// An empty historyFile disables history.
func (s *Shell) Run(ctx context.Context, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		AutoComplete:      s.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("starting shell: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	fmt.Fprintln(s.out, "type help for the list of commands")

	for ctx.Err() == nil {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		err = s.Exec(ctx, line)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(rl.Stderr(), "Error:", err)
		}
	}
	return ctx.Err()
}

// completer completes command names, palette ids after add, and workspace
// indices after the commands that take one.
func (s *Shell) completer() *readline.PrefixCompleter {
	templateIDs := func(string) []string {
		var ids []string
		for _, t := range s.eng.Palette().Templates() {
			ids = append(ids, t.ID)
		}
		return ids
	}
	indices := func(string) []string {
		n := s.eng.Workspace().Len()
		out := make([]string, n)
		for i := range n {
			out[i] = fmt.Sprint(i)
		}
		return out
	}

	var items []readline.PrefixCompleterInterface
	for _, c := range commands {
		switch {
		case c.name == "add":
			items = append(items, readline.PcItem(c.name, readline.PcItemDynamic(templateIDs)))
		case strings.Contains(c.usage, "<index>") || strings.Contains(c.usage, "<from>"):
			items = append(items, readline.PcItem(c.name, readline.PcItemDynamic(indices)))
		default:
			items = append(items, readline.PcItem(c.name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}
