package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportMomentCurve exports the moment capacity curve to an image file.
// The format follows the file extension (png, svg, pdf).
func ExportMomentCurve(curve MomentCurve, shapeName, filename string) error {
	p := plot.New()
	p.Title.Text = shapeName + " - Flexural Capacity vs Unbraced Length"
	p.X.Label.Text = "Lb (cm)"
	p.Y.Label.Text = "φMn (kgf-cm)"

	pts := make(plotter.XYs, len(curve.Points))
	var maxY float64
	for i, cp := range curve.Points {
		pts[i] = plotter.XY{X: cp.X, Y: cp.Y}
		if cp.Y > maxY {
			maxY = cp.Y
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	// Mark the zone breakpoints with dashed verticals
	for _, breakpoint := range []float64{curve.Lp, curve.Lr} {
		marker, err := plotter.NewLine(plotter.XYs{
			{X: breakpoint, Y: 0},
			{X: breakpoint, Y: maxY},
		})
		if err != nil {
			return err
		}
		marker.LineStyle.Width = vg.Points(1.5)
		marker.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		marker.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(marker)
	}

	return savePlot(p, filename)
}

// ExportColumnCurve exports the column capacity curve to an image file.
func ExportColumnCurve(curve ColumnCurve, shapeName, filename string) error {
	p := plot.New()
	p.Title.Text = shapeName + " - Compressive Capacity vs Effective Length"
	p.X.Label.Text = "KL (cm)"
	p.Y.Label.Text = "φPn (kgf)"

	pts := make(plotter.XYs, len(curve.Points))
	for i, cp := range curve.Points {
		pts[i] = plotter.XY{X: cp.X, Y: cp.Y}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	return savePlot(p, filename)
}

func savePlot(p *plot.Plot, filename string) error {
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
