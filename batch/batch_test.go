package batch

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/measure/curvefit"
	"github.com/cwbudde/algo-spectro/measure/dunham"
)

func TestRunAnalysesAllColumns(t *testing.T) {
	x := testutil.Linspace(1.0, 3.0, 15)

	columns := []Column{
		{Name: "singlet", Energies: testutil.MorseWell(x, 0.2, 1.1, 1.8, -0.6)},
		{Name: "triplet", Energies: testutil.MorseWell(x, 0.15, 1.0, 2.1, -0.4)},
	}

	results := Run(x, columns, Config{ReducedMass: 0.9796})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	for i, res := range results {
		if res.Name != columns[i].Name {
			t.Errorf("result %d: name %q, want %q (input order)", i, res.Name, columns[i].Name)
		}

		if res.Status != StatusOK {
			t.Errorf("column %q: status %v, err %v", res.Name, res.Status, res.Err)
		}

		testutil.RequireFinite(t, res.Constants.Be, res.Constants.We, res.Constants.Ae)

		if res.Constants.We <= 0 {
			t.Errorf("column %q: We = %v, want > 0", res.Name, res.Constants.We)
		}

		// Zero fit config resolves to order 6, which enables the
		// anharmonic corrections; a Morse well has nonzero ones.
		if res.Constants.Wexe == 0 {
			t.Errorf("column %q: Wexe = 0, anharmonic gate not enabled", res.Name)
		}
	}

	testutil.RequireNearlyEqual(t, results[0].Fit.Re, 1.8, 1e-2)
	testutil.RequireNearlyEqual(t, results[1].Fit.Re, 2.1, 1e-2)
}

func TestRunFailSoft(t *testing.T) {
	x := testutil.Linspace(1.0, 3.0, 15)

	columns := []Column{
		{Name: "good", Energies: testutil.MorseWell(x, 0.2, 1.1, 1.8, -0.6)},
		{Name: "short", Energies: []float64{1, 2, 3}},
		{Name: "uphill", Energies: testutil.Monotonic(x, 0.5, 0)},
		{Name: "also-good", Energies: testutil.HarmonicWell(x, 0.4, 2.0, -0.3)},
	}

	results := Run(x, columns, Config{ReducedMass: 1.0})

	if got := results[0].Status; got != StatusOK {
		t.Errorf("good: status %v, err %v", got, results[0].Err)
	}

	if got := results[1].Status; got != StatusFailed {
		t.Errorf("short: status %v, want failed", got)
	}

	if !errors.Is(results[1].Err, curvefit.ErrInvalidInput) {
		t.Errorf("short: err %v, want ErrInvalidInput", results[1].Err)
	}

	if got := results[2].Status; got != StatusNoMinimum {
		t.Errorf("uphill: status %v, want no minimum", got)
	}

	if results[2].Err != nil {
		t.Errorf("uphill: err %v, no-minimum is not an error", results[2].Err)
	}

	if results[2].Fit.Re != results[2].Fit.XRef {
		t.Errorf("uphill: Re %v != XRef %v", results[2].Fit.Re, results[2].Fit.XRef)
	}

	if got := results[3].Status; got != StatusOK {
		t.Errorf("also-good: status %v, err %v", got, results[3].Err)
	}
}

func TestRunInvalidMassFailsEveryColumn(t *testing.T) {
	x := testutil.Linspace(1.0, 3.0, 15)

	columns := []Column{
		{Name: "a", Energies: testutil.MorseWell(x, 0.2, 1.1, 1.8, -0.6)},
	}

	results := Run(x, columns, Config{ReducedMass: -1})

	if results[0].Status != StatusFailed {
		t.Fatalf("status %v, want failed", results[0].Status)
	}

	if !errors.Is(results[0].Err, dunham.ErrInvalidInput) {
		t.Errorf("err %v, want dunham.ErrInvalidInput", results[0].Err)
	}
}

func TestRunSevenPointQuadraticWellAtOrigin(t *testing.T) {
	x := []float64{-0.3, -0.2, -0.1, 0, 0.1, 0.2, 0.3}
	y := []float64{0.09, 0.04, 0.01, 0, 0.01, 0.04, 0.09}

	results := Run(x, []Column{{Name: "well", Energies: y}}, Config{
		Fit:         curvefit.Config{Order: 6},
		ReducedMass: 1.0,
	})

	res := results[0]

	if !res.Fit.MinimumFound {
		t.Fatal("minimum not found")
	}

	if math.Abs(res.Fit.Re) > 1e-9 {
		t.Errorf("Re = %v, want ~0", res.Fit.Re)
	}

	testutil.RequireNearlyEqual(t, res.Fit.Taylor[0], 0, 1e-8)
	testutil.RequireNearlyEqual(t, res.Fit.Taylor[2], 1.0, 1e-6)

	// A well centred on the origin has zero bond length; the rotational
	// constant diverges and the constants stage rejects the column.
	if res.Status != StatusFailed {
		t.Fatalf("status %v, err %v, want failed", res.Status, res.Err)
	}

	if !errors.Is(res.Err, dunham.ErrDegenerateFit) {
		t.Errorf("err %v, want dunham.ErrDegenerateFit", res.Err)
	}
}

func TestRunSevenPointQuadraticWellAtBondLength(t *testing.T) {
	x := []float64{1.7, 1.8, 1.9, 2.0, 2.1, 2.2, 2.3}
	y := testutil.HarmonicWell(x, 1.0, 2.0, 0)

	results := Run(x, []Column{{Name: "well", Energies: y}}, Config{
		Fit:         curvefit.Config{Order: 6},
		ReducedMass: 1.0,
	})

	res := results[0]
	if res.Status != StatusOK {
		t.Fatalf("status %v, err %v", res.Status, res.Err)
	}

	testutil.RequireNearlyEqual(t, res.Fit.Re, 2.0, 1e-6)
	testutil.RequireNearlyEqual(t, res.Constants.Ee, 0, 1e-8)
	testutil.RequireFinite(t, res.Constants.Be, res.Constants.We)

	if res.Constants.Be <= 0 || res.Constants.We <= 0 {
		t.Errorf("Be = %v, We = %v, want both > 0", res.Constants.Be, res.Constants.We)
	}

	// Pure quadratic: anharmonic corrections vanish up to fit round-off.
	if math.Abs(res.Constants.Wexe) > 1e-6 {
		t.Errorf("Wexe = %v, want ~0", res.Constants.Wexe)
	}

	if res.Constants.De != 0 || res.Constants.D0 != 0 {
		t.Errorf("De=%v D0=%v without max energy, want 0", res.Constants.De, res.Constants.D0)
	}
}

func TestRunPreservesOrderAcrossManyColumns(t *testing.T) {
	x := testutil.Linspace(1.0, 3.0, 15)

	names := []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7"}
	columns := make([]Column, len(names))

	for i, name := range names {
		x0 := 1.5 + 0.05*float64(i)
		columns[i] = Column{Name: name, Energies: testutil.HarmonicWell(x, 0.5, x0, 0)}
	}

	results := Run(x, columns, Config{ReducedMass: 1.0})

	for i, res := range results {
		if res.Name != names[i] {
			t.Fatalf("result %d: name %q, want %q", i, res.Name, names[i])
		}

		wantRe := 1.5 + 0.05*float64(i)
		testutil.RequireNearlyEqual(t, res.Fit.Re, wantRe, 1e-6)
	}
}
