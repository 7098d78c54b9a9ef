package pcr

import "math"

// roundHalf rounds a volume to the nearest 0.5 µL, half up: 0.25 becomes
// 0.5, 2.2 becomes 2.0. Go's math.Round is half away from zero, which is
// half up on the non-negative volumes handled here.
func roundHalf(v float64) float64 {
	return math.Round(roundHighPrecision(v)*2) / 2
}

// roundHighPrecision collapses float accumulation noise onto a 1e-8 grid
// before a rounding or ceiling decision is made on the value. Without it a
// dose like 6*2/5 arrives as 2.4000000000000004 and a count like 10*1.1 as
// 11.000000000000002, and threshold decisions land on the wrong side.
func roundHighPrecision(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
