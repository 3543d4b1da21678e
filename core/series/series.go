// Package series implements fixed-precision (float64) π approximations
// used as comparison baselines for the arbitrary-precision engine. Each
// evaluator trades accuracy for iteration count directly; none of them
// carries a convergence test or a precision guarantee beyond double
// precision.
package series

import "errors"

// ErrInvalidIterations is returned when an evaluator is asked to run
// fewer than one iteration.
var ErrInvalidIterations = errors.New("iterations must be a positive integer")
