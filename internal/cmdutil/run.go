// internal/cmdutil/run.go
package cmdutil

import "time"

// Timed runs f and returns its result along with the wall-clock time it
// took. Used by the benchmark front end to compare approximation cost.
func Timed[T any](f func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	v, err := f()
	return v, time.Since(start), err
}
