// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"picalc/internal/clibase"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Digits != 50 || o.GuardDigits != 10 || o.Verbose || o.Quiet {
		t.Errorf("unexpected defaults: %+v", o)
	}
}

func TestDigitsLongAndShort(t *testing.T) {
	if o := mustParse(t, "--digits", "1000"); o.Digits != 1000 {
		t.Errorf("want 1000 digits, got %+v", o)
	}
	if o := mustParse(t, "-d", "15"); o.Digits != 15 {
		t.Errorf("want 15 digits, got %+v", o)
	}
}

func TestGuardDigitsOverride(t *testing.T) {
	o := mustParse(t, "--guard-digits", "20")
	if o.GuardDigits != 20 {
		t.Errorf("want 20 guard digits, got %+v", o)
	}
}

func TestErrorOutOfRangeDigits(t *testing.T) {
	for _, v := range []string{"0", "-3", "2000000000"} {
		if _, err := ParseArgs(newFS(), []string{"--digits", v}); err == nil {
			t.Errorf("expected error for --digits %s", v)
		}
	}
}

func TestErrorNonPositiveGuard(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--guard-digits", "0"}); err == nil {
		t.Error("expected error for --guard-digits 0")
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version", "--digits", "50"})
	if err != nil || !o.Version {
		t.Fatalf("version parse: %+v err=%v", o, err)
	}
}

func TestExamplesRequested(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--examples"})
	if !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
}
