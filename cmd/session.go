package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"go.tabula.dev/internal/config"
	"go.tabula.dev/pkg"
)

// session evaluates expressions one at a time and prints, in order, the AST
// size, each satisfying row as it is found and finally the whole table.
type session struct {
	cfg      *config.Config
	compiler *tabula.Compiler
	out      io.Writer
	errOut   io.Writer

	satisfied *color.Color
	failed    *color.Color
}

func newSession(cfg *config.Config, out, errOut io.Writer) (*session, error) {
	compiler, err := tabula.NewCompiler(tabula.WithCacheSize(cfg.CacheSize))
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:       cfg,
		compiler:  compiler,
		out:       out,
		errOut:    errOut,
		satisfied: color.New(color.FgGreen),
		failed:    color.New(color.FgRed),
	}

	if !cfg.Color {
		s.satisfied.DisableColor()
		s.failed.DisableColor()
	}

	return s, nil
}

func (s *session) run(ctx context.Context, text string) error {
	prog, err := s.compiler.Compile(text)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "AST size: %d\n", prog.Size())

	table, err := prog.Table(ctx,
		tabula.WithMaxVariables(s.cfg.MaxVariables),
		tabula.WithObserver(func(r tabula.Row) {
			s.satisfied.Fprintln(s.out, r)
		}),
	)
	if err != nil {
		return err
	}

	slog.Debug("Built truth table", "expression", text, "variables", len(table.Variables), "rows", len(table.Rows))

	return s.render(table)
}

func (s *session) render(table *tabula.Table) error {
	switch s.cfg.Format {
	case "box":
		table.WriteBox(s.out)
	case "markdown":
		table.WriteMarkdown(s.out)
	case "tab":
		fmt.Fprintln(s.out, table)
	default:
		return fmt.Errorf("unknown format %q", s.cfg.Format)
	}

	return nil
}

// report prints err for the user and returns whether there was one.
func (s *session) report(text string, err error) bool {
	if err == nil {
		return false
	}

	slog.Debug("Expression rejected", "expression", text, "error", err)
	s.failed.Fprintln(s.errOut, "error:", err)

	return true
}
