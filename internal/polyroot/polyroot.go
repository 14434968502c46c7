// Package polyroot provides complex polynomial root finding shared by the
// curve fitting packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegenerate is returned when a polynomial has degenerate coefficients
// (all-zero coefficients, too few terms, convergence failure).
var ErrDegenerate = errors.New("polyroot: degenerate polynomial")

// leadTol is the relative magnitude below which a leading coefficient is
// treated as zero. Least-squares fits of low-degree data leave leading
// coefficients at amplified round-off level (observed up to ~1e-10 relative),
// which would otherwise force the iteration onto root estimates of enormous
// magnitude. Coefficients this far below the dominant one carry no
// information at fit precision.
const leadTol = 1e-9

// Roots finds all complex roots of a real-coefficient polynomial given in
// descending power order: coeff[0]*x^n + ... + coeff[n]. Leading
// coefficients at round-off level relative to the largest coefficient are
// stripped before the solve. A constant polynomial has no roots and yields
// an empty slice.
func Roots(coeff []float64) ([]complex128, error) {
	if len(coeff) == 0 {
		return nil, ErrDegenerate
	}

	maxAbs := 0.0
	for _, c := range coeff {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}

	if maxAbs == 0 {
		return nil, ErrDegenerate
	}

	start := 0
	for start < len(coeff)-1 && math.Abs(coeff[start]) <= leadTol*maxAbs {
		start++
	}

	trimmed := coeff[start:]
	if len(trimmed) < 2 {
		return []complex128{}, nil
	}

	c := make([]complex128, len(trimmed))
	for i, v := range trimmed {
		c[i] = complex(v, 0)
	}

	return DurandKerner(c)
}

// FilterReal extracts the real parts of roots whose imaginary part is within
// imagTol of zero, preserving input order.
func FilterReal(roots []complex128, imagTol float64) []float64 {
	out := make([]float64, 0, len(roots))
	for _, r := range roots {
		if math.Abs(imag(r)) < imagTol {
			out = append(out, real(r))
		}
	}

	return out
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegenerate
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegenerate
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegenerate
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
