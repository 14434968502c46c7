// Package tableio reads whitespace-separated multi-column data tables.
//
// The expected layout is a header row of column names followed by numeric
// rows: the first column holds positions, every further column the energies
// of one named curve. Rows with fewer fields than the header are skipped.
package tableio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectro/units"
)

// ErrMalformed is returned for tables without enough columns or with
// non-numeric fields.
var ErrMalformed = errors.New("tableio: malformed table")

// Table holds one parsed data table. X is the shared position grid; Y holds
// one energy slice per named column, each the same length as X.
type Table struct {
	XName string   // name of the position column
	Names []string // names of the energy columns, input order
	X     []float64
	Y     [][]float64
}

// ReadFile parses the table in the named file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tableio: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return t, nil
}

// Read parses a table from r.
func Read(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("tableio: %w", err)
		}

		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	names := strings.Fields(sc.Text())
	if len(names) < 2 {
		return nil, fmt.Errorf("%w: need a position column and at least one energy column, got %d", ErrMalformed, len(names))
	}

	t := &Table{
		XName: names[0],
		Names: names[1:],
		Y:     make([][]float64, len(names)-1),
	}

	line := 1

	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) < len(names) {
			// Short rows (including blank lines) are skipped, not fatal.
			continue
		}

		for col := 0; col < len(names); col++ {
			v, err := strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrMalformed, line, col+1, fields[col])
			}

			if col == 0 {
				t.X = append(t.X, v)
			} else {
				t.Y[col-1] = append(t.Y[col-1], v)
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tableio: %w", err)
	}

	if len(t.X) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrMalformed)
	}

	return t, nil
}

// ConvertAngstromToBohr rescales the position grid in place from Angstrom to
// the Bohr lengths the analysis expects.
func (t *Table) ConvertAngstromToBohr() {
	for i := range t.X {
		t.X[i] *= units.AngstromToBohr
	}
}
