package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.tabula.dev/pkg"
)

var stages = []string{"tokens", "ast", "ir"}

func newEmitCmd() *cobra.Command {
	var (
		stage    string
		driver   bool
		funcName string
	)

	cmd := &cobra.Command{
		Use:   "emit EXPR",
		Short: "Print an intermediate stage: tokens, ast or ir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch stage {
			case "tokens":
				return emitTokens(out, args[0])
			case "ast":
				return emitAST(out, args[0])
			case "ir":
				var irOpts []tabula.IROption
				if driver {
					irOpts = append(irOpts, tabula.WithDriver())
				}
				if funcName != "" {
					irOpts = append(irOpts, tabula.WithFuncName(funcName))
				}

				return emitIR(out, args[0], irOpts...)
			default:
				return fmt.Errorf("unknown stage %q, expected one of %s", stage, strings.Join(stages, ", "))
			}
		},
	}

	cmd.Flags().StringVarP(&stage, "stage", "s", "ast", "Stage to emit: tokens, ast or ir")
	cmd.Flags().BoolVar(&driver, "driver", false, "With --stage ir, also emit a main printing the table")
	cmd.Flags().StringVar(&funcName, "func", "", "With --stage ir, name of the generated function")

	return cmd
}

func emitTokens(w io.Writer, text string) error {
	l := tabula.NewLexer(text)
	for {
		tok, err := l.Next()
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\t%s\t%q\n", tok.Pos, tok.Typ, tok.Value)

		if tok.Typ == tabula.TokenEOF {
			return nil
		}
	}
}

func emitAST(w io.Writer, text string) error {
	prog, err := tabula.Compile(text)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\nsize: %d\nvariables: %s\n", prog.Root, prog.Size(), strings.Join(prog.Variables, ", "))
	printTree(w, prog.Root, 0)

	return nil
}

func printTree(w io.Writer, expr tabula.Expr, depth int) {
	pad := ""
	if depth > 0 {
		pad = strings.Repeat("│   ", depth-1) + "└── "
	}

	switch e := expr.(type) {
	case *tabula.LiteralExpr:
		fmt.Fprintf(w, "%sNum %d\n", pad, e.Value)
	case *tabula.Identifier:
		fmt.Fprintf(w, "%sVariable %s\n", pad, e.Name)
	case *tabula.UnaryExpr:
		fmt.Fprintf(w, "%s%s [%d]\n", pad, e.Operation, e.Size())
		printTree(w, e.Operand, depth+1)
	case *tabula.BinaryExpr:
		fmt.Fprintf(w, "%s%s [%d]\n", pad, e.Operation, e.Size())
		printTree(w, e.Op1, depth+1)
		printTree(w, e.Op2, depth+1)
	}
}

func emitIR(w io.Writer, text string, opts ...tabula.IROption) error {
	prog, err := tabula.Compile(text)
	if err != nil {
		return err
	}

	mod, err := prog.IR(opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, mod)
	return nil
}
