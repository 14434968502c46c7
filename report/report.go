// Package report renders batch analysis results as a text table.
//
// Every column of the batch gets a row. Rows that failed or found no
// minimum carry an explicit status marker instead of numbers, so defaulted
// values are never mistaken for computed constants.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/batch"
	"github.com/cwbudde/algo-spectro/units"
)

// Write renders the results as an aligned text table.
func Write(w io.Writer, results []batch.ColumnResult) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Name\tStatus\tEmin (Ha)\tRe (Bohr)\tRe (Ang)\tBe (cm-1)\tAe (cm-1)\tWe (cm-1)\tWexe (cm-1)\tWeye (cm-1)\tDe (eV)\tD0 (eV)")

	for _, res := range results {
		switch res.Status {
		case batch.StatusOK:
			c := res.Constants
			fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
				res.Name, res.Status,
				c.Ee, res.Fit.Re, res.Fit.Re*units.BohrToAngstrom,
				c.Be, c.Ae, c.We, c.Wexe, c.Weye, c.De, c.D0)

		case batch.StatusNoMinimum:
			fmt.Fprintf(tw, "%s\t%s\t-\t%.6f\t%.6f\t-\t-\t-\t-\t-\t-\t-\n",
				res.Name, res.Status,
				res.Fit.XRef, res.Fit.XRef*units.BohrToAngstrom)

		case batch.StatusFailed:
			fmt.Fprintf(tw, "%s\t%s: %v\t-\t-\t-\t-\t-\t-\t-\t-\t-\t-\n",
				res.Name, res.Status, res.Err)

		default:
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t-\t-\t-\t-\t-\t-\n", res.Name, res.Status)
		}
	}

	return tw.Flush()
}
