package curvefit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/openacid/slimarray/polyfit"

	"github.com/cwbudde/algo-spectro/internal/polyroot"
	"github.com/cwbudde/algo-spectro/poly"
)

const (
	// DefaultOrder is the polynomial degree used when Config.Order is zero.
	// Anharmonic corrections downstream need Taylor terms up to sixth order.
	DefaultOrder = 6

	// DefaultImagTol is the imaginary-part magnitude below which a root of
	// the derivative counts as a real critical point.
	DefaultImagTol = 1e-8

	// DefaultDomainPad is the margin beyond the sampled domain, in shifted
	// coordinates, within which critical points are accepted.
	DefaultDomainPad = 0.1

	// TaylorTerms is the number of Taylor coefficients produced (0th..6th).
	TaylorTerms = 7
)

var (
	// ErrUnderdetermined is returned when there are fewer samples than
	// polynomial coefficients.
	ErrUnderdetermined = errors.New("curvefit: fewer samples than coefficients")

	// ErrInvalidInput is returned for mismatched slices or a non-positive
	// polynomial order.
	ErrInvalidInput = errors.New("curvefit: invalid input")
)

// Config holds curve fitting parameters. Zero values select defaults.
type Config struct {
	Order     int     // polynomial degree of the fit
	ImagTol   float64 // |imag| tolerance for real critical points
	DomainPad float64 // domain margin for critical points, shifted coordinates
}

// Result holds the fitted model and its Taylor expansion about the located
// minimum, in shifted coordinates relative to XRef.
type Result struct {
	// Poly is the fitted polynomial in shifted coordinates (x - XRef),
	// coefficients in descending power order, length Order+1.
	Poly poly.Poly

	// XRef is the position of the lowest-energy sample. Ties go to the first
	// occurrence in input order.
	XRef float64

	// Re is the equilibrium position, XRef plus the selected critical-point
	// offset. Equal to XRef when MinimumFound is false.
	Re float64

	// Taylor holds the 0th through 6th derivatives of Poly at the critical
	// offset, each divided by the factorial of its index. All zero when
	// MinimumFound is false.
	Taylor [TaylorTerms]float64

	// MinimumFound reports whether a real critical point was located inside
	// the padded sample domain. When false the remaining fields hold the
	// documented defaults; treat any constants derived from them as
	// physically meaningless.
	MinimumFound bool

	// RMSResidual is the root-mean-square residual of the fit over the
	// input samples.
	RMSResidual float64
}

// Eval evaluates the fitted model at an absolute position.
func (r Result) Eval(x float64) float64 {
	return r.Poly.Eval(x - r.XRef)
}

// Fitter fits polynomial models to sampled potential-energy curves.
type Fitter struct {
	cfg Config
}

// NewFitter creates a fitter, applying defaults for zero Config fields.
func NewFitter(cfg Config) *Fitter {
	return &Fitter{cfg: normalizeConfig(cfg)}
}

// Config returns the fitter's configuration with defaults resolved.
func (f *Fitter) Config() Config {
	return f.cfg
}

// Fit is a one-shot fit with the given configuration.
func Fit(x, y []float64, cfg Config) (Result, error) {
	return NewFitter(cfg).Fit(x, y)
}

// Fit fits a polynomial to the (x, y) samples, locates the true minimum by
// root-finding on the derivative, and expands the model about it.
//
// The reference XRef is the position of the lowest-energy sample; all
// positions are shifted by -XRef before the least-squares solve to keep the
// system well conditioned. Critical points are the roots of the derivative
// with |imag| < ImagTol and real part strictly inside the sampled domain
// padded by DomainPad. When several qualify, the one closest to XRef
// (minimum |dx|) is selected; the choice is deterministic regardless of the
// order the root solver reports them in. When none qualify the result is the
// MinimumFound=false variant with Re = XRef and zero Taylor coefficients.
func (f *Fitter) Fit(x, y []float64) (Result, error) {
	cfg := f.cfg

	if len(x) != len(y) {
		return Result{}, fmt.Errorf("%w: %d positions vs %d energies", ErrInvalidInput, len(x), len(y))
	}

	if cfg.Order < 1 {
		return Result{}, fmt.Errorf("%w: order %d", ErrInvalidInput, cfg.Order)
	}

	if len(x) < cfg.Order+1 {
		return Result{}, fmt.Errorf("%w: %d samples for order %d", ErrUnderdetermined, len(x), cfg.Order)
	}

	xref := x[argmin(y)]

	shifted := make([]float64, len(x))
	for i, v := range x {
		shifted[i] = v - xref
	}

	p := leastSquares(shifted, y, cfg.Order)

	res := Result{
		Poly:        p,
		XRef:        xref,
		Re:          xref,
		RMSResidual: rmsResidual(p, shifted, y),
	}

	dx, found, err := f.criticalPoint(p, shifted)
	if err != nil {
		return Result{}, err
	}

	if !found {
		return res, nil
	}

	res.MinimumFound = true
	res.Re = xref + dx
	copy(res.Taylor[:], p.Taylor(dx, TaylorTerms-1))

	return res, nil
}

// criticalPoint selects the in-domain real root of the derivative closest to
// the shifted origin. The bool result reports whether any qualified.
func (f *Fitter) criticalPoint(p poly.Poly, shifted []float64) (float64, bool, error) {
	roots, err := p.Deriv().Roots()
	if err != nil {
		return 0, false, fmt.Errorf("curvefit: derivative roots: %w", err)
	}

	lo := shifted[0]
	hi := shifted[0]

	for _, v := range shifted[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	lo -= f.cfg.DomainPad
	hi += f.cfg.DomainPad

	best := 0.0
	found := false

	for _, r := range polyroot.FilterReal(roots, f.cfg.ImagTol) {
		if r <= lo || r >= hi {
			continue
		}

		if !found || math.Abs(r) < math.Abs(best) {
			best = r
			found = true
		}
	}

	return best, found, nil
}

// leastSquares fits a degree-order polynomial to the samples by ordinary
// least squares and returns it in descending power order.
func leastSquares(x, y []float64, order int) poly.Poly {
	fit := polyfit.NewFit(x, y, order)
	asc := fit.Solve()

	p := make(poly.Poly, len(asc))
	for i, c := range asc {
		p[len(asc)-1-i] = c
	}

	return p
}

// rmsResidual computes the root-mean-square residual of the model over the
// samples.
func rmsResidual(p poly.Poly, x, y []float64) float64 {
	resid := make([]float64, len(x))
	for i := range x {
		resid[i] = y[i] - p.Eval(x[i])
	}

	sq := make([]float64, len(resid))
	vecmath.MulBlock(sq, resid, resid)

	sum := 0.0
	for _, v := range sq {
		sum += v
	}

	return math.Sqrt(sum / float64(len(sq)))
}

// argmin returns the index of the smallest value, first occurrence on ties.
func argmin(values []float64) int {
	idx := 0
	for i, v := range values {
		if v < values[idx] {
			idx = i
		}
	}

	return idx
}

func normalizeConfig(cfg Config) Config {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}

	if cfg.ImagTol == 0 {
		cfg.ImagTol = DefaultImagTol
	}

	if cfg.DomainPad == 0 {
		cfg.DomainPad = DefaultDomainPad
	}

	return cfg
}
