// Package poly provides a small real-coefficient polynomial type used by the
// curve fitting pipeline.
package poly

import (
	"github.com/cwbudde/algo-spectro/internal/polyroot"
)

// Poly is a polynomial in descending power order:
// p[0]*x^n + p[1]*x^(n-1) + ... + p[n].
type Poly []float64

// Degree returns the nominal degree, len(p)-1. Leading zero coefficients are
// not stripped; an empty polynomial has degree -1.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Eval evaluates p at x using Horner's method. An empty polynomial
// evaluates to zero.
func (p Poly) Eval(x float64) float64 {
	if len(p) == 0 {
		return 0
	}

	v := p[0]
	for i := 1; i < len(p); i++ {
		v = v*x + p[i]
	}

	return v
}

// Deriv returns the first derivative of p. The derivative of a constant is
// the zero polynomial {0}.
func (p Poly) Deriv() Poly {
	if len(p) <= 1 {
		return Poly{0}
	}

	n := len(p) - 1
	d := make(Poly, n)

	for i := range n {
		d[i] = p[i] * float64(n-i)
	}

	return d
}

// Taylor returns the first terms+1 coefficients of the Taylor expansion of p
// about x: out[i] = p⁽ⁱ⁾(x) / i!.
func (p Poly) Taylor(x float64, terms int) []float64 {
	out := make([]float64, terms+1)
	d := p
	fact := 1.0

	for i := 0; i <= terms; i++ {
		if i > 0 {
			d = d.Deriv()
			fact *= float64(i)
		}

		out[i] = d.Eval(x) / fact
	}

	return out
}

// Roots returns all complex roots of p. Leading coefficients at round-off
// level are stripped before the solve; a constant polynomial yields an empty
// slice.
func (p Poly) Roots() ([]complex128, error) {
	return polyroot.Roots(p)
}
