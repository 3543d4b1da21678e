// internal/benchapp/app.go
package benchapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"picalc/internal/benchcli"
	"picalc/internal/cmdutil"
	"picalc/internal/jsonutil"
	"picalc/internal/version"
	"picalc/internal/writers"
	"picalc/pkg/api"

	"picalc-core/series"
)

// RunContext runs every baseline evaluator, timing each and comparing it
// against math.Pi, then renders the rows as TSV or JSON. The context is
// checked between methods so an interrupt stops the remaining ones.
// Exit codes: 0 ok, 1 evaluator failure, 2 usage error, 3 write failure.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := flag.NewFlagSet("picalc-bench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts, err := benchcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "picalc-bench version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.Seed == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "--seed not set; the Monte Carlo row is not reproducible")
	}

	methods := []struct {
		name       string
		iterations int
		eval       func() (float64, error)
	}{
		{"leibniz", opts.Iterations, func() (float64, error) { return series.Leibniz(opts.Iterations) }},
		{"monte-carlo", opts.Iterations, func() (float64, error) { return series.MonteCarlo(opts.Iterations, opts.Seed) }},
		{"nilakantha", opts.Terms, func() (float64, error) { return series.Nilakantha(opts.Terms) }},
		{"chudnovsky", opts.ChudnovskyTerms, func() (float64, error) { return series.Chudnovsky(opts.ChudnovskyTerms) }},
		{"machin", 0, func() (float64, error) { return series.Machin(), nil }},
	}

	rows := make([]api.ApproximationV1, 0, len(methods))
	for _, m := range methods {
		if err := ctx.Err(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		value, took, err := cmdutil.Timed(m.eval)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%s: %v\n", m.name, err)
			return 1
		}
		rows = append(rows, api.ApproximationV1{
			Method:     m.name,
			Iterations: m.iterations,
			Value:      value,
			AbsError:   math.Abs(value - math.Pi),
			Seconds:    took.Seconds(),
		})
	}

	switch opts.Output {
	case "json":
		if err := jsonutil.EncodePretty(outw, rows); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	default:
		if opts.Header {
			_, _ = fmt.Fprintf(outw, "# reference: math.Pi = %.15f\n", math.Pi)
			_, _ = fmt.Fprintln(outw, "method\titerations\tvalue\tabs_error\tseconds")
		}
		for _, r := range rows {
			_, _ = fmt.Fprintf(outw, "%s\t%d\t%.15f\t%.3e\t%.4f\n",
				r.Method, r.Iterations, r.Value, r.AbsError, r.Seconds)
		}
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
