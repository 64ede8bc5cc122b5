package diagram

import (
	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// CurvePoint is one sample of a capacity curve.
type CurvePoint struct {
	X float64 // unbraced length or slenderness parameter
	Y float64 // design strength
}

// MomentCurve holds a sampled φMn-vs-Lb curve together with the
// lateral-torsional buckling breakpoints.
type MomentCurve struct {
	Points []CurvePoint
	Lp     float64
	Lr     float64
	Mp     float64
}

// SampleMomentCurve evaluates the strong-axis design moment over
// unbraced lengths from 0 to maxLb.
func SampleMomentCurve(p section.Properties, m section.Material, cfg member.Config, maxLb float64, n int) (MomentCurve, error) {
	if n < 2 {
		n = 2
	}
	curve := MomentCurve{Points: make([]CurvePoint, 0, n)}
	step := maxLb / float64(n-1)
	for i := 0; i < n; i++ {
		cfg.Lb = float64(i) * step
		res, err := member.EvaluateFlexure(p, m, cfg, member.StrongAxis)
		if err != nil {
			return MomentCurve{}, err
		}
		curve.Points = append(curve.Points, CurvePoint{X: cfg.Lb, Y: res.Governing.Design})
		if i == 0 {
			curve.Lp = res.Lp
			curve.Lr = res.Lr
			curve.Mp = res.Mp
		}
	}
	return curve, nil
}

// ColumnCurve holds a sampled φPn-vs-L curve.
type ColumnCurve struct {
	Points []CurvePoint
}

// SampleColumnCurve evaluates the design compressive strength over
// unbraced lengths from just above zero to maxL, applied to both axes.
func SampleColumnCurve(p section.Properties, m section.Material, cfg member.Config, maxL float64, n int) (ColumnCurve, error) {
	if n < 2 {
		n = 2
	}
	curve := ColumnCurve{Points: make([]CurvePoint, 0, n)}
	step := maxL / float64(n)
	for i := 1; i <= n; i++ {
		l := float64(i) * step
		cfg.Lx = l
		cfg.Ly = l
		if cfg.Lz > 0 {
			cfg.Lz = l
		}
		res, err := member.EvaluateCompression(p, m, cfg)
		if err != nil {
			return ColumnCurve{}, err
		}
		curve.Points = append(curve.Points, CurvePoint{X: l, Y: res.Governing.Design})
	}
	return curve, nil
}
