package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/arith"
)

// outcome is the evaluation of one expression in a batch.
type outcome struct {
	src  string
	tree *arith.Expr
	res  arith.Result
}

// printer writes results.
type printer struct {
	out    io.Writer
	format string
	echo   bool
	errc   *color.Color
}

func (p *printer) print(o outcome) {
	if p.echo && o.tree != nil {
		fmt.Fprintf(p.out, "%v : ", o.tree)
	}
	if !o.res.OK() {
		p.fail(o.res.Err)
		return
	}
	fmt.Fprintf(p.out, p.format+"\n", o.res.Value)
}

func (p *printer) fail(err error) {
	p.errc.Fprintf(p.out, "Error: %v\n", err)
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	exprs := args
	if len(args) == 0 || a.inName != "" {
		in, closer, err := a.input(len(args) == 0)
		if err != nil {
			return err
		}
		lines, err := readLines(in)
		if closer != nil {
			closer.Close()
		}
		if err != nil {
			return err
		}
		exprs = append(lines, args...)
	}
	a.log.Debug("evaluating batch", "count", len(exprs), "jobs", a.cfg.Jobs)
	res, err := evalAll(cmd.Context(), a.ctx, exprs, a.cfg.Jobs, a.cfg.Echo)
	if err != nil {
		return err
	}
	p := a.printer(a.stdout)
	failed := false
	for _, o := range res {
		p.print(o)
		failed = failed || !o.res.OK()
	}
	if failed {
		return errFailed
	}
	return nil
}

// input opens the batch input. std selects stdin when no file is named.
func (a *app) input(std bool) (io.Reader, io.Closer, error) {
	switch {
	case a.inName != "" && a.inName != "-":
		f, err := os.Open(a.inName)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	case a.inName == "-", std:
		return a.stdin, nil, nil
	}
	return strings.NewReader(""), nil, nil
}

// readLines reads one expression per line, skipping blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}

// evalAll evaluates exprs with up to jobs running concurrently. Outcomes
// are in the same order as exprs.
func evalAll(ctx context.Context, actx *arith.Context, exprs []string, jobs int, echo bool) ([]outcome, error) {
	out := make([]outcome, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, src := range exprs {
		i, src := i, src
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = evalOne(actx, src, echo)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation can stop the loop before any goroutine notices.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func evalOne(actx *arith.Context, src string, echo bool) outcome {
	o := outcome{src: src, res: actx.Evaluate(src)}
	if echo {
		o.tree, _ = actx.Parse(src)
	}
	return o
}
