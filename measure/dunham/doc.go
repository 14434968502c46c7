// Package dunham derives spectroscopic constants of a diatomic molecule
// from the Taylor expansion of its potential-energy curve about the
// equilibrium bond length.
//
// The analysis expresses the vibrational/rotational spectrum as a power
// series in the quantum numbers; its leading coefficients follow in closed
// form from the normalised derivatives of the potential at the minimum:
//
//   - Ee: electronic energy at the minimum (Hartree)
//   - Be, Ae: rotational constants (cm^-1)
//   - We: harmonic vibrational constant (cm^-1)
//   - Wexe, Weye: first anharmonic corrections (cm^-1), defined only when
//     the upstream fit carries sixth-order Taylor terms
//   - De, D0: dissociation energies (eV), defined only when the curve's
//     upper energy is supplied
//
// Inputs come from [github.com/cwbudde/algo-spectro/measure/curvefit]; the
// function is pure and deterministic.
package dunham
