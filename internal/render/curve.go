// Package render draws the numeric outputs of a recall session as figures.
// It is a pure consumer: it never touches network state or randomness.
package render

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"mnemos/internal/model"
)

// Curve renders the recall-performance curve (success rate vs percentage of
// flipped pixels) to the given image file.
func Curve(points []model.SweepPoint, path string) error {
	if len(points) == 0 {
		return errors.New("no sweep points to render")
	}

	p := plot.New()
	p.Title.Text = "simulation"
	p.X.Label.Text = "% of pixels flipped"
	p.Y.Label.Text = "recall performance in %"
	p.X.Min, p.X.Max = 0, 50
	p.Y.Min, p.Y.Max = 0, 101
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.FlipPercent, Y: pt.SuccessPercent}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
