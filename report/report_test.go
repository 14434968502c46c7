package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectro/batch"
	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestWriteDistinguishesStatuses(t *testing.T) {
	x := testutil.Linspace(1.0, 3.0, 15)

	columns := []batch.Column{
		{Name: "bound", Energies: testutil.MorseWell(x, 0.2, 1.1, 1.8, -0.6)},
		{Name: "repulsive", Energies: testutil.Monotonic(x, 0.5, 0)},
		{Name: "broken", Energies: []float64{1, 2}},
	}

	results := batch.Run(x, columns, batch.Config{ReducedMass: 1.0})

	var sb strings.Builder
	if err := Write(&sb, results); err != nil {
		t.Fatal(err)
	}

	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "Re (Bohr)") || !strings.Contains(lines[0], "Re (Ang)") {
		t.Errorf("header missing unit columns: %q", lines[0])
	}

	if !strings.Contains(lines[1], "bound") || !strings.Contains(lines[1], "ok") {
		t.Errorf("computed row not marked ok: %q", lines[1])
	}

	if !strings.Contains(lines[2], "no minimum") {
		t.Errorf("no-minimum row not marked: %q", lines[2])
	}

	if !strings.Contains(lines[3], "failed") {
		t.Errorf("failed row not marked: %q", lines[3])
	}
}

func TestWriteFailedRowCarriesError(t *testing.T) {
	results := []batch.ColumnResult{
		{Name: "bad", Status: batch.StatusFailed, Err: errors.New("boom")},
	}

	var sb strings.Builder
	if err := Write(&sb, results); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(sb.String(), "boom") {
		t.Errorf("error message missing from output:\n%s", sb.String())
	}
}
