// Package units holds the physical conversion factors shared by the
// spectroscopic analysis packages.
//
// The analysis pipeline works in Hartree atomic units throughout: positions
// in Bohr, energies in Hartree, masses in atomic mass units scaled to
// electron masses via [ForceMass]. Derived spectroscopic constants are
// reported in wavenumbers (cm^-1) and dissociation energies in eV.
package units

const (
	// HartreeToInvCm converts an energy from Hartree to wavenumbers (cm^-1).
	HartreeToInvCm = 219474.63067

	// HartreeToEV converts an energy from Hartree to electron volts.
	HartreeToEV = 27.2113839

	// AngstromToBohr converts a length from Angstrom to Bohr.
	AngstromToBohr = 1.88973

	// BohrToAngstrom converts a length from Bohr to Angstrom.
	BohrToAngstrom = 0.5291761

	// ForceMass converts a mass from atomic mass units to electron masses.
	ForceMass = 1822.88853
)
