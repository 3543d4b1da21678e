// internal/benchcli/options.go
package benchcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"picalc/internal/clibase"
)

// Options holds all CLI flags for the picalc-bench tool.
type Options struct {
	clibase.Common

	// Work per method
	Iterations      int // Leibniz and Monte Carlo
	Terms           int // Nilakantha
	ChudnovskyTerms int

	// Sampling
	Seed int64

	// Output
	Output string // text | json
	Header bool   // true unless --no-header
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)

	fs.IntVar(&opt.Iterations, "iterations", 1_000_000, "iterations for Leibniz and Monte Carlo [1000000]")
	fs.IntVar(&opt.Iterations, "n", 1_000_000, "alias of --iterations")
	fs.IntVar(&opt.Terms, "terms", 10_000, "terms for the Nilakantha series [10000]")
	fs.IntVar(&opt.ChudnovskyTerms, "chudnovsky-terms", 3, "terms for the Chudnovsky series [3]")
	fs.Int64Var(&opt.Seed, "seed", 0, "Monte Carlo RNG seed (0 = seed from the clock) [0]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	Usage(fs)

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.Iterations < 1 {
		return opt, errors.New("--iterations must be ≥ 1")
	}
	if opt.Terms < 1 {
		return opt, errors.New("--terms must be ≥ 1")
	}
	if opt.ChudnovskyTerms < 1 {
		return opt, errors.New("--chudnovsky-terms must be ≥ 1")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// Usage installs the picalc-bench help text on fs.
func Usage(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "picalc-bench", "π approximation baselines, timed and compared", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nWork:")
		fmt.Fprintf(out, "  -n, --iterations int        Iterations for Leibniz and Monte Carlo [%s]\n", def("iterations"))
		fmt.Fprintf(out, "      --terms int             Terms for the Nilakantha series [%s]\n", def("terms"))
		fmt.Fprintf(out, "      --chudnovsky-terms int  Terms for the Chudnovsky series [%s]\n", def("chudnovsky-terms"))
		fmt.Fprintf(out, "      --seed int              Monte Carlo RNG seed (0 = clock) [%s]\n", def("seed"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
	})
}
