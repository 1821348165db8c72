package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/pior/dict/protocol"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	historyFileName = ".dict_history"
	historySize     = 500
	prompt          = "dict> "
)

// LineEditor reads shell input with readline when stdin is a terminal and
// with a plain scanner otherwise.
type LineEditor struct {
	rl      *readline.Instance
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineEditor picks the input mode from stdin.
func NewLineEditor() *LineEditor {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return newScannerEditor(os.Stdin, os.Stdout)
	}

	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, historyFileName)
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            historyFile,
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
		Prompt:                 prompt,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return newScannerEditor(os.Stdin, os.Stdout)
	}

	return &LineEditor{rl: rl}
}

func newScannerEditor(in io.Reader, out io.Writer) *LineEditor {
	return &LineEditor{scanner: bufio.NewScanner(in), out: out}
}

// GetLine returns the next input line, or io.EOF at the end of input or
// on interrupt.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.rl != nil {
		le.rl.SetPrompt(prompt)
		line, err := le.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				return "", io.EOF
			}
			return "", err
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			le.rl.SaveToHistory(trimmed)
		}
		return line, nil
	}

	fmt.Fprint(le.out, prompt)
	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return le.scanner.Text(), nil
}

// Close saves the history in interactive mode. It is safe to call twice.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

func runShellCommand(s *session, _ *cli.Command) error {
	editor := NewLineEditor()
	defer editor.Close()

	return runShell(s, editor)
}

type lineReader interface {
	GetLine(prompt string) (string, error)
}

// runShell reads commands until quit or end of input. Errors are printed
// and the loop goes on, unless the connection can no longer be used.
func runShell(s *session, in lineReader) error {
	banner := s.client.Banner()
	fmt.Fprintf(s.out, "Connected to %s (%s). Type 'help' for available commands.\n", s.client.Addr(), banner.Text)

	for {
		line, err := in.GetLine(prompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.exec(line)
		if err != nil {
			if protocol.ShouldCloseConnection(err) {
				return err
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one shell line. Arguments are split like DICT atoms, so a
// quoted phrase is one argument.
func (s *session) exec(line string) (quit bool, err error) {
	atoms := protocol.SplitAtoms(line)
	if len(atoms) == 0 {
		return false, nil
	}
	verb, args := strings.ToLower(atoms[0]), atoms[1:]

	switch verb {
	case "databases", "db":
		return false, s.databases()

	case "strategies", "strat":
		return false, s.strategies()

	case "match", "m":
		if len(args) < 1 || len(args) > 3 {
			fmt.Fprintln(s.out, "Usage: match <pattern> [strategy] [database]")
			return false, nil
		}
		return false, s.match(arg(args, 0), arg(args, 1), arg(args, 2))

	case "define", "d":
		if len(args) < 1 || len(args) > 2 {
			fmt.Fprintln(s.out, "Usage: define <word> [database]")
			return false, nil
		}
		return false, s.define(arg(args, 0), arg(args, 1))

	case "info":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "Usage: info <database>")
			return false, nil
		}
		return false, s.info(args[0])

	case "server":
		return false, s.server()

	case "stats":
		return false, s.stats()

	case "help":
		fmt.Fprintln(s.out, "Commands:")
		fmt.Fprintln(s.out, "  define <word> [database]               - Print the definitions of a word")
		fmt.Fprintln(s.out, "  match <pattern> [strategy] [database]  - List the words matching a pattern")
		fmt.Fprintln(s.out, "  databases                              - List databases")
		fmt.Fprintln(s.out, "  strategies                             - List matching strategies")
		fmt.Fprintln(s.out, "  info <database>                        - Describe a database")
		fmt.Fprintln(s.out, "  server                                 - Show server information")
		fmt.Fprintln(s.out, "  stats                                  - Show client statistics")
		fmt.Fprintln(s.out, "  quit                                   - Exit the shell")
		return false, nil

	case "quit", "exit":
		return true, nil

	default:
		fmt.Fprintf(s.out, "Unknown command: %s. Type 'help' for available commands.\n", verb)
		return false, nil
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
