// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"picalc/internal/clibase"

	"picalc-core/gauss"
)

// Options holds all CLI flags for the picalc tool.
type Options struct {
	clibase.Common

	// Precision
	Digits      int
	GuardDigits int

	// Diagnostics
	Verbose bool
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples bool

	clibase.Register(fs, &opt.Common)

	fs.IntVar(&opt.Digits, "digits", 50, "significant decimal digits of π to compute [50]")
	fs.IntVar(&opt.Digits, "d", 50, "alias of --digits")
	fs.IntVar(&opt.GuardDigits, "guard-digits", gauss.DefaultGuardDigits,
		fmt.Sprintf("extra working-precision digits absorbing rounding error [%d]", gauss.DefaultGuardDigits))
	fs.BoolVar(&opt.Verbose, "verbose", false, "log per-iteration convergence to stderr [false]")

	fs.BoolVar(&examples, "examples", false, "show usage examples and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	Usage(fs)

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Digits < 1 || opt.Digits > gauss.MaxDigits {
		return opt, fmt.Errorf("--digits must be in 1..%d", gauss.MaxDigits)
	}
	if opt.GuardDigits < 1 {
		return opt, errors.New("--guard-digits must be ≥ 1")
	}
	return opt, nil
}

// PrintExamples writes the picalc quickstart to w.
func PrintExamples(w io.Writer) {
	clibase.PrintExamples(w, "picalc", func(out io.Writer) {
		fmt.Fprintln(out, "  picalc                      # 50 digits of π")
		fmt.Fprintln(out, "  picalc --digits 1000        # go arbitrarily high")
		fmt.Fprintln(out, "  picalc -d 15 --verbose      # watch the iteration converge")
	})
}

// Usage installs the picalc help text on fs.
func Usage(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "picalc", "arbitrary-precision π (Gauss-Legendre)", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nPrecision:")
		fmt.Fprintf(out, "  -d, --digits int            Significant decimal digits of π [%s]\n", def("digits"))
		fmt.Fprintf(out, "      --guard-digits int      Extra working-precision digits [%s]\n", def("guard-digits"))

		fmt.Fprintln(out, "\nDiagnostics:")
		fmt.Fprintf(out, "      --verbose               Log per-iteration convergence to stderr [%s]\n", def("verbose"))
		fmt.Fprintf(out, "      --examples              Show usage examples and exit [%s]\n", def("examples"))
	})
}
