// Package curveplot renders sampled potential-energy curves with their
// fitted models overlaid.
package curveplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoSeries is returned when there is nothing to plot.
var ErrNoSeries = errors.New("curveplot: no series")

// Series is one curve: the raw samples and the fitted model as an evaluable
// function of absolute position.
type Series struct {
	Name string
	X    []float64
	Y    []float64
	Eval func(x float64) float64
}

// margin beyond the sampled domain covered by the fitted-curve overlay.
const margin = 0.05

// curveSamples is the number of points used to draw each fitted model.
const curveSamples = 100

var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// Render draws every series into one figure and writes it to path; the
// format follows the file extension (png, svg, pdf, ...).
func Render(series []Series, path string) error {
	p, err := build(series)
	if err != nil {
		return err
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("curveplot: %w", err)
	}

	return nil
}

func build(series []Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.X.Label.Text = "R (Bohr)"
	p.Y.Label.Text = "Energy (Ha)"
	p.Legend.Top = true

	for i, s := range series {
		if len(s.X) == 0 || len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("curveplot: series %q: %d positions vs %d energies",
				s.Name, len(s.X), len(s.Y))
		}

		col := palette[i%len(palette)]

		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("curveplot: %w", err)
		}

		scatter.GlyphStyle.Color = col
		p.Add(scatter)

		if s.Eval == nil {
			p.Legend.Add(s.Name, scatter)
			continue
		}

		line, err := plotter.NewLine(sampleModel(s))
		if err != nil {
			return nil, fmt.Errorf("curveplot: %w", err)
		}

		line.Color = col
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	return p, nil
}

// sampleModel evaluates the fitted model on a dense grid spanning the
// samples plus a small margin.
func sampleModel(s Series) plotter.XYs {
	lo := s.X[0]
	hi := s.X[0]

	for _, v := range s.X[1:] {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	lo -= margin
	hi += margin

	out := make(plotter.XYs, curveSamples)
	step := (hi - lo) / float64(curveSamples-1)

	for i := range out {
		x := lo + float64(i)*step
		out[i].X = x
		out[i].Y = s.Eval(x)
	}

	return out
}
