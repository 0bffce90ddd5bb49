package render

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"mnemos/internal/model"
	"mnemos/internal/pattern"
)

// DemoGrid renders one row per recalled pattern with three panels each:
// the memorized pattern, the corrupted pattern that was presented, and the
// retrieved state. Patterns are reshaped to a square grid, so the unit
// count must be a perfect square.
func DemoGrid(set *pattern.Set, outcomes []model.DemoOutcome, path string) error {
	if set == nil || len(outcomes) == 0 {
		return fmt.Errorf("nothing to render")
	}
	side := int(math.Sqrt(float64(set.Units())))
	if side*side != set.Units() {
		return fmt.Errorf("unit count %d is not a perfect square", set.Units())
	}

	plots := make([][]*plot.Plot, len(outcomes))
	for r, out := range outcomes {
		stored, ok := set.Find(out.Pattern)
		if !ok {
			return fmt.Errorf("unknown pattern %q in outcomes", out.Pattern)
		}
		if len(out.Presented) != set.Units() || len(out.Retrieved) != set.Units() {
			return fmt.Errorf("outcome %q has wrong vector length", out.Pattern)
		}
		plots[r] = []*plot.Plot{
			panel(stored.Data, side, "memorized"),
			panel(out.Presented, side, "presented"),
			panel(out.Retrieved, side, "retrieved"),
		}
	}

	img := vgimg.New(6*vg.Inch, 6*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: 3,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func panel(data []float64, side int, title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	h := plotter.NewHeatMap(unitGrid{side: side, data: data}, greys{levels: 12})
	h.Min, h.Max = -1, 1
	p.Add(h)
	return p
}

// unitGrid adapts a flattened pattern to the plotter grid interface, with
// row 0 of the pattern at the top of the panel.
type unitGrid struct {
	side int
	data []float64
}

func (g unitGrid) Dims() (c, r int) { return g.side, g.side }

func (g unitGrid) Z(c, r int) float64 { return g.data[(g.side-1-r)*g.side+c] }

func (g unitGrid) X(c int) float64 { return float64(c) }

func (g unitGrid) Y(r int) float64 { return float64(r) }

// greys is a white-to-black palette, so -1 units draw white and +1 units
// draw black.
type greys struct {
	levels int
}

func (g greys) Colors() []color.Color {
	if g.levels < 2 {
		return []color.Color{color.Gray{Y: 255}, color.Gray{Y: 0}}
	}
	colors := make([]color.Color, g.levels)
	for i := range colors {
		colors[i] = color.Gray{Y: uint8(255 - i*255/(g.levels-1))}
	}
	return colors
}
