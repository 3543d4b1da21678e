package series

import (
	"fmt"
	"math"
)

// Chudnovsky evaluates n terms of the Chudnovsky series
//
//	1/π = 12 Σ (-1)^k (6k)! (545140134k + 13591409) / ((3k)! (k!)³ 640320^(3k+3/2))
//
// Each term adds roughly 14 digits, so double precision is exhausted
// after two or three terms. Terms are produced with a term-to-term
// ratio rather than raw factorials, which would overflow float64 long
// before the requested term count becomes unreasonable.
func Chudnovsky(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("chudnovsky with %d term(s): %w", n, ErrInvalidIterations)
	}

	const x = 640320.0
	const x3 = x * x * x // exact in float64

	sum := 0.0
	c := 1.0 // (6k)! / ((3k)! (k!)³ 640320^(3k)), signed
	for k := 0; k < n; k++ {
		sum += c * (13591409.0 + 545140134.0*float64(k))

		fk := float64(k)
		num := (6*fk + 1) * (6*fk + 2) * (6*fk + 3) * (6*fk + 4) * (6*fk + 5) * (6*fk + 6)
		den := (3*fk + 1) * (3*fk + 2) * (3*fk + 3) * (fk + 1) * (fk + 1) * (fk + 1) * x3
		c *= -num / den
	}

	return math.Pow(x, 1.5) / (12.0 * sum), nil
}
