package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

type prompter interface {
	Prompt(prompt string) (string, error)
}

// scanPrompter reads lines without editing or echoing a prompt, for piped
// input.
type scanPrompter struct {
	scanner *bufio.Scanner
}

func (p *scanPrompter) Prompt(string) (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}

	if err := p.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func newREPLCmd(opts *options) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions line by line and print their truth tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Read plain lines from stdin without line editing")

	return cmd
}

func runREPL(cmd *cobra.Command, opts *options, plain bool) error {
	s, err := newSession(opts.cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if plain || cmd.InOrStdin() != io.Reader(os.Stdin) || !liner.TerminalSupported() {
		return loop(cmd, s, &scanPrompter{scanner: bufio.NewScanner(cmd.InOrStdin())}, nil)
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	history := opts.cfg.HistoryFile
	if history != "" {
		if f, err := os.Open(history); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				slog.Warn("Failed to read history", "file", history, "error", err)
			}
			f.Close()
		}
	}

	err = loop(cmd, s, line, line.AppendHistory)

	if history != "" {
		f, ferr := os.Create(history)
		if ferr != nil {
			slog.Warn("Failed to save history", "file", history, "error", ferr)
			return err
		}
		defer f.Close()

		if _, ferr := line.WriteHistory(f); ferr != nil {
			slog.Warn("Failed to save history", "file", history, "error", ferr)
		}
	}

	return err
}

// loop feeds every non-empty line to the session until end of input. Bad
// expressions are reported and skipped.
func loop(cmd *cobra.Command, s *session, p prompter, remember func(string)) error {
	for {
		if cmd.Context().Err() != nil {
			return nil
		}

		text, err := p.Prompt(s.cfg.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}

		if err != nil {
			return err
		}

		text = strings.TrimRight(text, "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		if remember != nil {
			remember(text)
		}

		s.report(text, s.run(cmd.Context(), text))
	}
}
