package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table EXPR...",
		Short: "Print the truth table of each expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts.cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			failed := 0
			for _, text := range args {
				if s.report(text, s.run(cmd.Context(), text)) {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(args))
			}

			return nil
		},
	}
}
