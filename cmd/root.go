package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.tabula.dev/internal/config"
)

type options struct {
	cfgFile string
	verbose bool
	noColor bool
	format  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tabula",
		Short: "Truth tables for boolean expressions",
		Long: `tabula parses boolean expressions and prints their truth tables.

Operators, all of the same precedence and grouped left to right:
  &          and
  |          or
  ^          xor
  <=>        iff (any number of '=')
  ~ or !     not, binds to the following operand only

Variables are runs of letters, literals are 0 and 1.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "Table format: tab, box or markdown")

	rootCmd.AddCommand(
		newTableCmd(opts),
		newREPLCmd(opts),
		newEmitCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	if o.noColor {
		cfg.Color = false
	}

	if o.format != "" {
		cfg.Format = o.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	if o.verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	slog.Debug("Loaded configuration", "file", o.cfgFile, "format", cfg.Format, "max_variables", cfg.MaxVariables)

	o.cfg = cfg
	return nil
}

// Execute runs the command line. An interrupt cancels the table being
// enumerated.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}
