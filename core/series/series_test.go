package series

import (
	"errors"
	"math"
	"testing"
)

func TestLeibnizConverges(t *testing.T) {
	got, err := Leibniz(1_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if e := math.Abs(got - math.Pi); e > 1e-5 {
		t.Errorf("Leibniz(1e6) = %.15f, error %.3e too large", got, e)
	}
}

func TestLeibnizSingleTerm(t *testing.T) {
	got, err := Leibniz(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4.0 {
		t.Errorf("Leibniz(1) = %v, want 4", got)
	}
}

func TestNilakanthaConverges(t *testing.T) {
	got, err := Nilakantha(10_000)
	if err != nil {
		t.Fatal(err)
	}
	if e := math.Abs(got - math.Pi); e > 1e-9 {
		t.Errorf("Nilakantha(1e4) = %.15f, error %.3e too large", got, e)
	}
}

// The Nilakantha error shrinks as O(1/n³); check the trend, not a model.
func TestNilakanthaErrorShrinks(t *testing.T) {
	small, err := Nilakantha(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := Nilakantha(1000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(large-math.Pi) >= math.Abs(small-math.Pi) {
		t.Errorf("error did not shrink: n=10 → %.3e, n=1000 → %.3e",
			math.Abs(small-math.Pi), math.Abs(large-math.Pi))
	}
}

func TestMonteCarloFixedSeed(t *testing.T) {
	got, err := MonteCarlo(100_000, 42)
	if err != nil {
		t.Fatal(err)
	}
	// ~10 sigma for 1e5 samples; loose on purpose, sampling is noisy.
	if e := math.Abs(got - math.Pi); e > 0.05 {
		t.Errorf("MonteCarlo(1e5, seed 42) = %v, error %.3e too large", got, e)
	}
}

func TestMonteCarloReproducible(t *testing.T) {
	a, err := MonteCarlo(10_000, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MonteCarlo(10_000, 7)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestChudnovskyFirstTerms(t *testing.T) {
	// One term already carries ~13 correct digits.
	one, err := Chudnovsky(1)
	if err != nil {
		t.Fatal(err)
	}
	if e := math.Abs(one - math.Pi); e > 1e-12 {
		t.Errorf("Chudnovsky(1) = %.15f, error %.3e too large", one, e)
	}

	three, err := Chudnovsky(3)
	if err != nil {
		t.Fatal(err)
	}
	if e := math.Abs(three - math.Pi); e > 1e-13 {
		t.Errorf("Chudnovsky(3) = %.15f, error %.3e too large", three, e)
	}
}

// Extra terms vanish below double precision instead of corrupting the sum.
func TestChudnovskyManyTermsStable(t *testing.T) {
	got, err := Chudnovsky(50)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Chudnovsky(50) = %v", got)
	}
	if e := math.Abs(got - math.Pi); e > 1e-13 {
		t.Errorf("Chudnovsky(50) = %.15f, error %.3e too large", got, e)
	}
}

func TestMachin(t *testing.T) {
	if e := math.Abs(Machin() - math.Pi); e > 1e-14 {
		t.Errorf("Machin() = %.15f, error %.3e too large", Machin(), e)
	}
}

func TestInvalidIterationCounts(t *testing.T) {
	cases := []struct {
		name string
		call func(int) (float64, error)
	}{
		{"leibniz", Leibniz},
		{"nilakantha", Nilakantha},
		{"montecarlo", func(n int) (float64, error) { return MonteCarlo(n, 1) }},
		{"chudnovsky", Chudnovsky},
	}
	for _, tc := range cases {
		for _, n := range []int{0, -5} {
			if _, err := tc.call(n); !errors.Is(err, ErrInvalidIterations) {
				t.Errorf("%s(%d) err = %v, want ErrInvalidIterations", tc.name, n, err)
			}
		}
	}
}
