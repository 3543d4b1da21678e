// core/gauss/gauss.go
package gauss

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"go.uber.org/zap"
)

// DefaultGuardDigits is the extra working precision carried through the
// iteration to absorb accumulated rounding error. The final result is
// rounded back down to the requested precision, so the guard never leaks
// into the output.
const DefaultGuardDigits = 10

// MaxDigits caps a single request. The cap keeps digits plus the guard
// inside the decimal context's uint32 precision and int32 exponent
// ranges with room to spare.
const MaxDigits = 1 << 30

// ErrInvalidDigits is returned when the requested digit count is outside
// [1, MaxDigits].
var ErrInvalidDigits = errors.New("digits must be in [1, MaxDigits]")

// Config holds engine parameters.
type Config struct {
	GuardDigits int         // extra working precision (0 = DefaultGuardDigits)
	Logger      *zap.Logger // nil = no logging
}

// Engine computes π to an arbitrary number of significant decimal digits
// using the Gauss-Legendre (Brent-Salamin) iteration. Each call to Compute
// is independent: the decimal precision context is created per call and
// never shared, so concurrent calls with different digit counts are safe.
type Engine struct {
	cfg Config
	log *zap.Logger
}

// New creates a new Engine.
func New(c Config) *Engine {
	if c.GuardDigits <= 0 {
		c.GuardDigits = DefaultGuardDigits
	}
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: c, log: log}
}

// Result is the outcome of one Compute call.
type Result struct {
	// Value is π rounded (half-even) to exactly the requested number of
	// significant decimal digits.
	Value *apd.Decimal
	// Iterations is how many times the mean pair was updated.
	Iterations int
	// WorkingPrec is the precision all intermediate arithmetic ran at.
	WorkingPrec uint32
	// Delta is |a-b| at loop exit: below the convergence threshold on a
	// normal exit, or the residual difference when working-precision
	// rounding pinned the means first.
	Delta *apd.Decimal
}

// Compute returns π correct to digits significant decimal digits.
//
// The iteration doubles the number of correct digits each pass, so the
// loop runs O(log2(digits)) times. The stopping test compares |a-b|
// against 10^-(digits+2). If rounding at fixed working precision pins
// the means before the threshold is reached, the no-longer-shrinking
// difference ends the loop instead, so termination never depends on the
// threshold being representable.
func (e *Engine) Compute(digits int) (Result, error) {
	if digits < 1 || digits > MaxDigits {
		return Result{}, fmt.Errorf("compute π to %d digit(s): %w", digits, ErrInvalidDigits)
	}

	work := uint32(digits + e.cfg.GuardDigits)
	ctx := apd.BaseContext.WithPrecision(work)
	ctx.Rounding = apd.RoundHalfEven

	var (
		one  = apd.New(1, 0)
		two  = apd.New(2, 0)
		four = apd.New(4, 0)

		a = apd.New(1, 0)    // arithmetic mean
		b = new(apd.Decimal) // geometric mean, set to 1/√2 below
		t = apd.New(25, -2)  // partial sum, starts at 1/4
		p = apd.New(1, 0)    // doubling power-of-two weight
	)
	if _, err := ctx.Sqrt(b, two); err != nil {
		return Result{}, fmt.Errorf("initialize √2: %w", err)
	}
	if _, err := ctx.Quo(b, one, b); err != nil {
		return Result{}, fmt.Errorf("initialize 1/√2: %w", err)
	}

	threshold := apd.New(1, int32(-(digits + 2)))

	var (
		aNext = new(apd.Decimal)
		diff  = new(apd.Decimal)
		prev  = new(apd.Decimal)
		tmp   = new(apd.Decimal)
		est   = new(apd.Decimal)
	)

	iters := 0
	for {
		iters++

		// aNext = (a+b)/2; b = √(a·b) from the pre-update a.
		_, _ = ctx.Add(aNext, a, b)
		if _, err := ctx.Quo(aNext, aNext, two); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", iters, err)
		}
		_, _ = ctx.Mul(tmp, a, b)
		if _, err := ctx.Sqrt(b, tmp); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", iters, err)
		}

		// t -= p·(a - aNext)²
		_, _ = ctx.Sub(diff, a, aNext)
		_, _ = ctx.Mul(tmp, diff, diff)
		_, _ = ctx.Mul(tmp, tmp, p)
		_, _ = ctx.Sub(t, t, tmp)

		a.Set(aNext)
		_, _ = ctx.Mul(p, p, two)

		// Estimate from this same iteration: (a+b)² / (4t).
		_, _ = ctx.Add(est, a, b)
		_, _ = ctx.Mul(est, est, est)
		_, _ = ctx.Mul(tmp, four, t)
		if _, err := ctx.Quo(est, est, tmp); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", iters, err)
		}

		_, _ = ctx.Sub(diff, a, b)
		_, _ = ctx.Abs(diff, diff)
		e.log.Debug("gauss: iteration",
			zap.Int("n", iters),
			zap.String("delta", diff.Text('e')),
		)
		if diff.Cmp(threshold) < 0 {
			break
		}
		// At working precision the difference strictly shrinks until the
		// means collapse; a non-shrinking difference means rounding has
		// pinned them, so more iterations cannot help.
		if iters > 1 && diff.Cmp(prev) >= 0 {
			break
		}
		prev.Set(diff)
	}

	out := apd.BaseContext.WithPrecision(uint32(digits))
	out.Rounding = apd.RoundHalfEven
	value := new(apd.Decimal)
	if _, err := out.Round(value, est); err != nil {
		return Result{}, fmt.Errorf("round to %d digit(s): %w", digits, err)
	}

	e.log.Debug("gauss: converged",
		zap.Int("iterations", iters),
		zap.Uint32("working_precision", work),
	)
	return Result{
		Value:       value,
		Iterations:  iters,
		WorkingPrec: work,
		Delta:       diff,
	}, nil
}
