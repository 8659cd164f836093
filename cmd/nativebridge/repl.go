package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/feather-lang/nativebridge/config"
)

const (
	promptMain = "% "
	promptMore = "> "
)

func newReplCommand(g *globalFlags) *cobra.Command {
	var engineName string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate script input line by line",
		Long: `Evaluate script input line by line.

Incomplete input continues on the next line. The line .tree prints the
current widget tree. The engine defaults to tcl.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if engineName != "" {
				cfg.Engine = engineName
			}
			if cfg.Engine == config.EngineAuto {
				cfg.Engine = config.EngineTCL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return runTerminal(cfg, f)
			}
			s, err := newSession(cfg, cfg.Engine, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.Close()
			return repl(s, cfg, &scanLines{bufio.NewScanner(cmd.InOrStdin())}, cmd.OutOrStdout(), func(string) {})
		},
	}

	cmd.Flags().StringVar(&engineName, "engine", "", "script engine: js or tcl")
	return cmd
}

// runTerminal runs the loop in raw mode with line editing.
func runTerminal(cfg config.Config, f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, os.Stdout}, promptMain)

	s, err := newSession(cfg, cfg.Engine, t)
	if err != nil {
		return err
	}
	defer s.Close()
	return repl(s, cfg, t, t, t.SetPrompt)
}

type lineReader interface {
	ReadLine() (string, error)
}

type scanLines struct {
	*bufio.Scanner
}

func (s *scanLines) ReadLine() (string, error) {
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.Text(), nil
}

func repl(s *session, cfg config.Config, lines lineReader, out io.Writer, setPrompt func(string)) error {
	var input string
	for {
		line, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if input == "" && strings.TrimSpace(line) == ".tree" {
			if err := writeTree(out, s.tree(), cfg.Output); err != nil {
				fmt.Fprintf(out, "error: %s\n", err)
			}
			continue
		}

		if input != "" {
			input += "\n" + line
		} else {
			input = line
		}
		if s.engine.Incomplete(input) {
			setPrompt(promptMore)
			continue
		}
		setPrompt(promptMain)

		result, err := s.engine.Eval("repl", input)
		input = ""
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
}
