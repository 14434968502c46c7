package dunham

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/units"
)

var (
	// ErrInvalidInput is returned for a non-positive reduced mass.
	ErrInvalidInput = errors.New("dunham: invalid input")

	// ErrDegenerateFit is returned when the expansion has zero curvature at
	// the minimum or a formula would divide by zero.
	ErrDegenerateFit = errors.New("dunham: degenerate fit")
)

// Constants holds the spectroscopic constants of one diatomic curve.
// Ee is in Hartree, Be, Ae, We, Wexe and Weye in cm^-1, De and D0 in eV.
type Constants struct {
	Ee   float64 // energy at the minimum
	Be   float64 // first rotational constant
	Ae   float64 // second rotational constant
	We   float64 // first vibrational constant
	Wexe float64 // first anharmonic correction, zero for order <= 5
	Weye float64 // second anharmonic correction, zero for order <= 5
	De   float64 // dissociation energy from the minimum, zero without maxEnergy
	D0   float64 // dissociation energy from the vibrational ground state
}

// Analyze derives Dunham spectroscopic constants from the equilibrium
// position re (Bohr), the Taylor coefficients of the fitted potential about
// that minimum, and the reduced mass (amu).
//
// order is the polynomial degree of the upstream fit; the anharmonic
// corrections Wexe and Weye need Taylor terms to sixth order and stay zero
// unless order > 5. maxEnergy (Hartree) is the upper energy of the curve;
// zero means not supplied, leaving De and D0 zero.
func Analyze(re float64, taylor [7]float64, reducedMass float64, order int, maxEnergy float64) (Constants, error) {
	if reducedMass <= 0 {
		return Constants{}, fmt.Errorf("%w: reduced mass %v", ErrInvalidInput, reducedMass)
	}

	if taylor[2] == 0 {
		return Constants{}, fmt.Errorf("%w: zero curvature at minimum", ErrDegenerateFit)
	}

	an := reducedMass * units.ForceMass

	c := Constants{
		Ee: taylor[0],
		Be: 0.5 * units.HartreeToInvCm / (an * re * re),
		We: units.HartreeToInvCm * math.Sqrt(2*math.Abs(taylor[2])/an),
	}

	// re^2 underflowing to zero makes the rotational constant infinite.
	if math.IsInf(c.Be, 0) || math.IsNaN(c.Be) {
		return Constants{}, fmt.Errorf("%w: non-finite rotational constant for re=%g", ErrDegenerateFit, re)
	}

	// Higher derivatives normalised by the curvature, npt[i] = t[i+3]/t[2] * re^(i+1).
	var npt [4]float64

	scale := re
	for i := range npt {
		npt[i] = taylor[i+3] / taylor[2] * scale
		scale *= re
	}

	c.Ae = -6 * c.Be * c.Be * (1 + npt[0]) / c.We

	if order > 5 {
		c.Wexe = -1.5 * (npt[1] - 1.25*npt[0]*npt[0]) * c.Be
		c.Weye = 0.5 * (10*npt[3] - 35*npt[0]*npt[2] - 8.5*npt[1]*npt[1] +
			56.125*npt[1]*npt[0]*npt[0] - 22.03125*npt[0]*npt[0]*npt[0]*npt[0]) *
			c.Be * c.Be / c.We
	}

	if maxEnergy != 0 {
		c.De = (maxEnergy - c.Ee) * units.HartreeToEV
		c.D0 = c.De - 0.5*(c.We-0.5*c.Wexe)*units.HartreeToEV/units.HartreeToInvCm
	}

	return c, nil
}
