// internal/app/app_test.go
package app

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(args, &out, &errBuf)
	return out.String(), errBuf.String(), code
}

func TestRunFifteenDigits(t *testing.T) {
	out, errOut, code := run(t, "--digits", "15")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	if out != "pi ≈ 3.14159265358979\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunSingleDigitRoundsToThree(t *testing.T) {
	out, _, code := run(t, "-d", "1")
	if code != 0 || out != "pi ≈ 3\n" {
		t.Errorf("exit %d, output %q", code, out)
	}
}

func TestRunDefaultDigits(t *testing.T) {
	out, _, code := run(t)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	// 50 significant digits: "3." plus 49 fractional digits.
	want := "pi ≈ 3.1415926535897932384626433832795028841971693993751\n"
	if out != want {
		t.Errorf("output %q, want %q", out, want)
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--digits", "0"},
		{"--digits", "-3"},
		{"--guard-digits", "0"},
		{"--digits", "nope"},
	} {
		_, errOut, code := run(t, args...)
		if code != 2 {
			t.Errorf("args %v: exit %d, want 2 (stderr %q)", args, code, errOut)
		}
		if errOut == "" {
			t.Errorf("args %v: expected a diagnostic on stderr", args)
		}
	}
}

func TestRunVersion(t *testing.T) {
	out, _, code := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "picalc version ") {
		t.Errorf("exit %d, output %q", code, out)
	}
}

func TestRunHelp(t *testing.T) {
	out, _, code := run(t, "-h")
	if code != 0 || !strings.Contains(out, "--digits") {
		t.Errorf("exit %d, output %q", code, out)
	}
}

func TestRunExamples(t *testing.T) {
	out, _, code := run(t, "--examples")
	if code != 0 || !strings.Contains(out, "quickstart") {
		t.Errorf("exit %d, output %q", code, out)
	}
}
