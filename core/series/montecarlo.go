package series

import (
	"fmt"
	"math/rand"
	"time"
)

// MonteCarlo estimates π by sampling n points uniformly in the unit
// square and counting those inside the quarter circle; the hit ratio
// approximates π/4. A seed of 0 seeds from the clock, any other value
// makes the run reproducible.
func MonteCarlo(n int, seed int64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("monte carlo with %d sample(s): %w", n, ErrInvalidIterations)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	inside := 0
	for i := 0; i < n; i++ {
		x := rng.Float64()
		y := rng.Float64()
		if x*x+y*y <= 1.0 {
			inside++
		}
	}
	return 4.0 * float64(inside) / float64(n), nil
}
