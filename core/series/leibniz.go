package series

import "fmt"

// Leibniz sums n terms of the alternating series
//
//	π/4 = 1 - 1/3 + 1/5 - 1/7 + ...
//
// Convergence is painfully slow: the error after n terms is about 1/n.
func Leibniz(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("leibniz with %d term(s): %w", n, ErrInvalidIterations)
	}
	sum := 0.0
	sign := 1.0
	for k := 0; k < n; k++ {
		sum += sign / (2.0*float64(k) + 1.0)
		sign = -sign
	}
	return 4.0 * sum, nil
}
