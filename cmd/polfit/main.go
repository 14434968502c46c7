// Command polfit runs a Dunham analysis over the potential-energy curves in
// a multi-column data table.
//
// The input file starts with a header row of column names; the first column
// holds bond lengths (Bohr by default, Angstrom with --angstrom), each
// further column the energies (Hartree) of one electronic state. Every
// energy column is fitted and analysed independently, and the resulting
// spectroscopic constants are printed as a table.
//
// Examples:
//
//	polfit -f curves.dat --mu 0.9796
//	polfit -f curves.dat --mu 6.8562 --order 8 --emax -0.45
//	polfit -f curves.dat --mu 0.9796 --plot 1,2 --out states.png
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/batch"
	"github.com/cwbudde/algo-spectro/curveplot"
	"github.com/cwbudde/algo-spectro/measure/curvefit"
	"github.com/cwbudde/algo-spectro/report"
	"github.com/cwbudde/algo-spectro/tableio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:           "polfit",
		Short:         "Dunham analysis of diatomic potential-energy curves",
		Long:          "Fits polynomial models to sampled potential-energy curves, locates the\nequilibrium bond length of each, and derives rotational and vibrational\nspectroscopic constants.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				fc, err := loadFileConfig(configPath)
				if err != nil {
					return err
				}

				applyFileConfig(&cfg, fc, cmd.Flags())
			}

			if err := cfg.validate(); err != nil {
				return err
			}

			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.File, "file", "f", "", "file with the data table")
	flags.Float64Var(&cfg.ReducedMass, "mu", 0, "reduced mass of the diatomic, in atomic mass units")
	flags.IntVar(&cfg.Order, "order", cfg.Order, "order of the fitted polynomial (>= 6 enables Wexe and Weye)")
	flags.Float64Var(&cfg.ImagTol, "imag-tol", cfg.ImagTol, "imaginary-part tolerance for real critical points")
	flags.Float64Var(&cfg.DomainPad, "domain-pad", cfg.DomainPad, "domain margin for critical-point selection")
	flags.BoolVar(&cfg.Angstrom, "angstrom", false, "positions are in Angstrom instead of Bohr")
	flags.Float64Var(&cfg.MaxEnergy, "emax", 0, "upper curve energy in Hartree, enables De and D0")
	flags.IntSliceVar(&cfg.PlotColumns, "plot", nil, "1-based energy column indices to plot")
	flags.StringVar(&cfg.PlotOut, "out", cfg.PlotOut, "output file for the plot")
	flags.StringVar(&configPath, "config", "", "optional TOML config file")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(cfg config) error {
	logger := newLogger(cfg.Verbose)

	table, err := tableio.ReadFile(cfg.File)
	if err != nil {
		return err
	}

	if cfg.Angstrom {
		table.ConvertAngstromToBohr()
	}

	logger.Debug().Str("file", cfg.File).Int("columns", len(table.Names)).
		Int("samples", len(table.X)).Msg("table loaded")

	columns := make([]batch.Column, len(table.Names))
	for i, name := range table.Names {
		columns[i] = batch.Column{Name: name, Energies: table.Y[i]}
	}

	results := batch.Run(table.X, columns, batch.Config{
		Fit: curvefit.Config{
			Order:     cfg.Order,
			ImagTol:   cfg.ImagTol,
			DomainPad: cfg.DomainPad,
		},
		ReducedMass: cfg.ReducedMass,
		MaxEnergy:   cfg.MaxEnergy,
		Logger:      &logger,
	})

	if err := report.Write(os.Stdout, results); err != nil {
		return err
	}

	if len(cfg.PlotColumns) == 0 {
		return nil
	}

	series := selectSeries(table, results, cfg.PlotColumns, logger)
	if len(series) == 0 {
		return nil
	}

	if err := curveplot.Render(series, cfg.PlotOut); err != nil {
		return err
	}

	logger.Info().Str("out", cfg.PlotOut).Int("curves", len(series)).Msg("plot written")

	return nil
}

// selectSeries maps 1-based column indices to plot series, skipping indices
// out of range and columns whose fit failed.
func selectSeries(table *tableio.Table, results []batch.ColumnResult, indices []int, logger zerolog.Logger) []curveplot.Series {
	series := make([]curveplot.Series, 0, len(indices))

	for _, ix := range indices {
		if ix < 1 || ix > len(results) {
			logger.Warn().Int("column", ix).Msg("plot index out of range")
			continue
		}

		res := results[ix-1]
		if res.Status == batch.StatusFailed {
			logger.Warn().Str("column", res.Name).Msg("skipping failed column in plot")
			continue
		}

		series = append(series, curveplot.Series{
			Name: res.Name,
			X:    table.X,
			Y:    table.Y[ix-1],
			Eval: res.Fit.Eval,
		})
	}

	return series
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
