package main

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-spectro/measure/curvefit"
)

// config holds the resolved CLI configuration.
type config struct {
	File        string
	ReducedMass float64
	Order       int
	ImagTol     float64
	DomainPad   float64
	Angstrom    bool
	MaxEnergy   float64
	PlotColumns []int
	PlotOut     string
	Verbose     bool
}

func defaultConfig() config {
	return config{
		Order:     curvefit.DefaultOrder,
		ImagTol:   curvefit.DefaultImagTol,
		DomainPad: curvefit.DefaultDomainPad,
		PlotOut:   "polfit.png",
	}
}

// fileConfig mirrors config for the optional TOML file.
type fileConfig struct {
	File        string  `toml:"file"`
	ReducedMass float64 `toml:"reduced_mass"`
	Order       int     `toml:"order"`
	ImagTol     float64 `toml:"imag_tol"`
	DomainPad   float64 `toml:"domain_pad"`
	Angstrom    *bool   `toml:"angstrom"`
	MaxEnergy   float64 `toml:"max_energy"`
	PlotOut     string  `toml:"plot_out"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig

	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("%s: %w", path, err)
	}

	return fc, nil
}

// applyFileConfig merges file values into cfg. Flags set explicitly on the
// command line win over file values.
func applyFileConfig(cfg *config, fc fileConfig, flags *pflag.FlagSet) {
	if fc.File != "" && !flags.Changed("file") {
		cfg.File = fc.File
	}

	if fc.ReducedMass != 0 && !flags.Changed("mu") {
		cfg.ReducedMass = fc.ReducedMass
	}

	if fc.Order != 0 && !flags.Changed("order") {
		cfg.Order = fc.Order
	}

	if fc.ImagTol != 0 && !flags.Changed("imag-tol") {
		cfg.ImagTol = fc.ImagTol
	}

	if fc.DomainPad != 0 && !flags.Changed("domain-pad") {
		cfg.DomainPad = fc.DomainPad
	}

	if fc.Angstrom != nil && !flags.Changed("angstrom") {
		cfg.Angstrom = *fc.Angstrom
	}

	if fc.MaxEnergy != 0 && !flags.Changed("emax") {
		cfg.MaxEnergy = fc.MaxEnergy
	}

	if fc.PlotOut != "" && !flags.Changed("out") {
		cfg.PlotOut = fc.PlotOut
	}
}

func (c *config) validate() error {
	if c.File == "" {
		return errors.New("an input file is required (--file or config)")
	}

	if c.ReducedMass <= 0 {
		return fmt.Errorf("reduced mass must be positive, got %v (--mu or config)", c.ReducedMass)
	}

	if c.Order < 1 {
		return fmt.Errorf("polynomial order must be at least 1, got %d", c.Order)
	}

	return nil
}
