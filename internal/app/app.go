// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"picalc/internal/cli"
	"picalc/internal/clibase"
	"picalc/internal/version"
	"picalc/internal/writers"

	"picalc-core/gauss"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunContext parses argv, runs the Gauss-Legendre engine, and writes
// `pi ≈ <value>` to stdout. Exit codes: 0 ok, 1 compute failure,
// 2 usage error, 3 write failure.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("picalc")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
		default:
			_, _ = fmt.Fprintln(stderr, err)
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 2
		}
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "picalc version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	logger := zap.NewNop()
	if opts.Verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(stderr),
			zapcore.DebugLevel,
		)
		logger = zap.New(core)
	}
	defer func() { _ = logger.Sync() }()

	eng := gauss.New(gauss.Config{GuardDigits: opts.GuardDigits, Logger: logger})
	res, err := eng.Compute(opts.Digits)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	_, _ = fmt.Fprintf(outw, "pi ≈ %s\n", res.Value.Text('f'))
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
