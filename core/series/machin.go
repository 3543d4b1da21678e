package series

import "math"

// Machin evaluates Machin's 1706 arctangent formula
//
//	π/4 = 4·arctan(1/5) - arctan(1/239)
//
// in double precision. There is no iteration knob; the result is as
// good as math.Atan.
func Machin() float64 {
	return 4.0 * (4.0*math.Atan(1.0/5.0) - math.Atan(1.0/239.0))
}
