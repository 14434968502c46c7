// Package batch runs the curve fit and Dunham analysis over the named
// energy columns of one data table.
//
// Columns are independent and processed concurrently; results come back in
// input order. One column's failure never aborts the batch: the failed
// column is recorded with its error and the remaining columns proceed.
package batch

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-spectro/measure/curvefit"
	"github.com/cwbudde/algo-spectro/measure/dunham"
)

// Status classifies the outcome of one column's analysis.
type Status int

const (
	// StatusOK means fit and analysis both succeeded.
	StatusOK Status = iota

	// StatusNoMinimum means the fit found no critical point inside the
	// padded sample domain. The fit fields hold their documented defaults
	// and no constants were derived.
	StatusNoMinimum

	// StatusFailed means fit or analysis returned an error.
	StatusFailed
)

// String returns the marker used in reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoMinimum:
		return "no minimum"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Column is one named energy column sharing the batch's position grid.
type Column struct {
	Name     string
	Energies []float64
}

// ColumnResult is the outcome of one column's analysis.
type ColumnResult struct {
	Name      string
	Fit       curvefit.Result
	Constants dunham.Constants
	Status    Status
	Err       error
}

// Config holds batch parameters.
type Config struct {
	Fit         curvefit.Config
	ReducedMass float64 // amu, must be > 0
	MaxEnergy   float64 // Hartree; 0 leaves dissociation energies unset
	Logger      *zerolog.Logger
}

// Runner analyses batches of potential-energy columns.
type Runner struct {
	fitter *curvefit.Fitter
	cfg    Config
	log    zerolog.Logger
}

// NewRunner creates a runner. A nil Config.Logger disables logging.
func NewRunner(cfg Config) *Runner {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Runner{
		fitter: curvefit.NewFitter(cfg.Fit),
		cfg:    cfg,
		log:    logger,
	}
}

// Run is a one-shot batch analysis.
func Run(x []float64, columns []Column, cfg Config) []ColumnResult {
	return NewRunner(cfg).Run(x, columns)
}

// Run analyses every column against the shared position grid, one goroutine
// per column, and returns the results in input order.
func (r *Runner) Run(x []float64, columns []Column) []ColumnResult {
	results := make([]ColumnResult, len(columns))

	var wg sync.WaitGroup
	for i, col := range columns {
		wg.Add(1)

		go func() {
			defer wg.Done()
			results[i] = r.analyze(x, col)
		}()
	}

	wg.Wait()

	return results
}

func (r *Runner) analyze(x []float64, col Column) ColumnResult {
	res := ColumnResult{Name: col.Name}

	fit, err := r.fitter.Fit(x, col.Energies)
	if err != nil {
		r.log.Warn().Str("column", col.Name).Err(err).Msg("curve fit failed")
		res.Status = StatusFailed
		res.Err = err

		return res
	}

	res.Fit = fit

	if !fit.MinimumFound {
		r.log.Warn().Str("column", col.Name).Float64("xref", fit.XRef).
			Msg("no minimum inside sampled domain")
		res.Status = StatusNoMinimum

		return res
	}

	order := r.fitter.Config().Order

	constants, err := dunham.Analyze(fit.Re, fit.Taylor, r.cfg.ReducedMass, order, r.cfg.MaxEnergy)
	if err != nil {
		r.log.Warn().Str("column", col.Name).Err(err).Msg("analysis failed")
		res.Status = StatusFailed
		res.Err = err

		return res
	}

	res.Constants = constants

	r.log.Debug().Str("column", col.Name).
		Float64("re", fit.Re).
		Float64("we", constants.We).
		Float64("rms_residual", fit.RMSResidual).
		Msg("column analysed")

	return res
}
