// internal/seriescli/options.go
package seriescli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"picalc/internal/clibase"
)

// Options holds all CLI flags for the picalc-nilakantha tool.
type Options struct {
	clibase.Common

	Iterations int
	ShowError  bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)

	fs.IntVar(&opt.Iterations, "iterations", 100_000, "number of terms to sum [100000]")
	fs.IntVar(&opt.Iterations, "n", 100_000, "alias of --iterations")
	fs.BoolVar(&opt.ShowError, "show-error", false, "display the absolute error versus math.Pi [false]")

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

	if opt.Iterations < 1 {
		return opt, errors.New("--iterations must be ≥ 1")
	}
	return opt, nil
}

// Usage installs the picalc-nilakantha help text on fs.
func Usage(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "picalc-nilakantha", "π via the Nilakantha series (float64)", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nWork:")
		fmt.Fprintf(out, "  -n, --iterations int        Number of terms to sum [%s]\n", def("iterations"))
		fmt.Fprintf(out, "      --show-error            Display the absolute error versus math.Pi [%s]\n", def("show-error"))
	})
}
