// internal/seriesapp/app.go
package seriesapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"picalc/internal/cmdutil"
	"picalc/internal/seriescli"
	"picalc/internal/version"
	"picalc/internal/writers"

	"picalc-core/series"
)

// RunContext sums the requested number of Nilakantha terms and prints the
// approximation, optionally with its absolute error.
// Exit codes: 0 ok, 1 evaluator failure, 2 usage error, 3 write failure.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := flag.NewFlagSet("picalc-nilakantha", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts, err := seriescli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "picalc-nilakantha version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.Iterations < 100 {
		cmdutil.Warnf(stderr, opts.Quiet, "%d term(s) gives a rough approximation; try --iterations 100000", opts.Iterations)
	}

	pi, err := series.Nilakantha(opts.Iterations)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	_, _ = fmt.Fprintf(outw, "pi ≈ %.15f\n", pi)
	if opts.ShowError {
		_, _ = fmt.Fprintf(outw, "absolute error: %.3e\n", math.Abs(math.Pi-pi))
	}
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
