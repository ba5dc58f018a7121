package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const replHelp = `Enter an expression to evaluate it.
  :tree <expr>    print the expression tree
  :tokens <expr>  print the token sequence
  :help           print this message
  :quit           exit`

// lineReader reads one line of input at a time without the line ending.
type lineReader interface {
	ReadLine() (string, error)
}

// scanLines adapts a bufio.Scanner to lineReader.
type scanLines struct {
	s *bufio.Scanner
}

func (l scanLines) ReadLine() (string, error) {
	if !l.s.Scan() {
		if err := l.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.s.Text(), nil
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return a.termREPL(f)
			}
			return a.repl(scanLines{bufio.NewScanner(a.stdin)}, a.stdout)
		},
	}
}

// termREPL runs the REPL with line editing on a terminal.
func (a *app) termREPL(f *os.File) error {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set terminal mode: %w", err)
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, a.stdout}, "> ")
	if w, h, err := term.GetSize(fd); err == nil {
		t.SetSize(w, h)
	}
	return a.repl(t, t)
}

// repl reads and evaluates lines until EOF or :quit. Failed expressions do
// not end the loop.
func (a *app) repl(in lineReader, w io.Writer) error {
	p := a.printer(w)
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		// Leading space can change the unary minus rule, so only commands
		// are trimmed.
		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch cmd {
		case "":
			continue
		case ":quit", ":q", ":exit":
			return nil
		case ":help":
			fmt.Fprintln(w, replHelp)
		case ":tree":
			e, err := a.ctx.Parse(rest)
			if err != nil {
				p.fail(err)
				continue
			}
			fmt.Fprintln(w, e)
		case ":tokens":
			seq, err := a.ctx.Tokenize(rest)
			if err != nil {
				p.fail(err)
				continue
			}
			fmt.Fprintln(w, seq)
		default:
			if strings.HasPrefix(cmd, ":") {
				p.fail(fmt.Errorf("unknown command %s", cmd))
				continue
			}
			p.print(evalOne(a.ctx, line, a.cfg.Echo))
		}
	}
}
