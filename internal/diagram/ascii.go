package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// RenderMomentCurve draws the moment capacity curve in the terminal.
func RenderMomentCurve(curve MomentCurve, shapeName string) string {
	values := make([]float64, len(curve.Points))
	for i, pt := range curve.Points {
		values[i] = pt.Y
	}
	caption := fmt.Sprintf("%s  φMn vs Lb   (Lp=%.1f  Lr=%.1f  φMp=%.0f)",
		shapeName, curve.Lp, curve.Lr, 0.90*curve.Mp)
	return asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Width(64),
		asciigraph.Caption(caption),
	)
}

// RenderColumnCurve draws the column capacity curve in the terminal.
func RenderColumnCurve(curve ColumnCurve, shapeName string) string {
	values := make([]float64, len(curve.Points))
	for i, pt := range curve.Points {
		values[i] = pt.Y
	}
	caption := fmt.Sprintf("%s  φPn vs KL", shapeName)
	return asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Width(64),
		asciigraph.Caption(caption),
	)
}
