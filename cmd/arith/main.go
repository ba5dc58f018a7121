package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/arith"
)

// errFailed is returned by commands when at least one expression failed.
// Its message is never printed.
var errFailed = errors.New("evaluation failed")

// app is the state shared by all commands.
type app struct {
	cfgFile string
	inName  string
	flags   Config
	cfg     Config

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	log *slog.Logger
	ctx *arith.Context
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "arith [expr...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Arith evaluates arithmetic expressions with integers, floats, the operators
+ - * / % ^ (or add sub mul div mod pow), and parentheses.

Each argument is evaluated as one expression. With no arguments, expressions
are read one per line from --in, or from stdin if --in is not given.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runBatch,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml, or .yml)")
	a.flags.addFlags(pf)
	root.Flags().StringVar(&a.inName, "in", "", `input file, one expression per line ("-" for stdin)`)

	root.AddCommand(a.replCmd(), a.tokensCmd())
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// setup resolves the configuration and builds the evaluation context.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := DefaultConfig()
	if a.cfgFile != "" {
		c, err := LoadConfig(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = *c
	}
	cfg.Override(cmd.Flags(), &a.flags)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	lvl, _ := cfg.Level()
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))
	a.ctx = arith.NewContext(
		arith.Prec(cfg.Prec),
		arith.MaxDepth(cfg.MaxDepth),
		arith.Logger(a.log),
	)
	a.log.Debug("configured", "prec", cfg.Prec, "max_depth", cfg.MaxDepth, "jobs", cfg.Jobs)
	return nil
}

// printer returns a result printer writing to w with the app's settings.
func (a *app) printer(w io.Writer) *printer {
	errc := color.New(color.FgRed)
	if a.cfg.NoColor {
		errc.DisableColor()
	}
	return &printer{out: w, format: a.cfg.Format, echo: a.cfg.Echo, errc: errc}
}

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expr>",
		Short: "Print the tokens of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(a.stdout)
			seq, err := a.ctx.Tokenize(args[0])
			if err != nil {
				p.fail(err)
				return errFailed
			}
			fmt.Fprintln(a.stdout, seq)
			for _, tok := range seq.Tokens() {
				fmt.Fprintln(a.stdout, tok)
			}
			return nil
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
