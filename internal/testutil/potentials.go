package testutil

import "math"

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

// HarmonicWell evaluates k*(x-x0)^2 + e0 at each position: a symmetric well
// with minimum e0 at x0 and quadratic Taylor coefficient k.
func HarmonicWell(x []float64, k, x0, e0 float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := v - x0
		out[i] = k*d*d + e0
	}

	return out
}

// MorseWell evaluates de*(1-exp(-a*(x-x0)))^2 + e0 at each position: an
// anharmonic well with minimum e0 at x0, dissociating to e0+de.
func MorseWell(x []float64, de, a, x0, e0 float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		u := 1 - math.Exp(-a*(v-x0))
		out[i] = de*u*u + e0
	}

	return out
}

// Monotonic evaluates a strictly increasing curve slope*x + offset at each
// position; it has no interior critical point.
func Monotonic(x []float64, slope, offset float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = slope*v + offset
	}

	return out
}
