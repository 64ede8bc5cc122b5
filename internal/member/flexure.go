package member

import (
	"math"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/section"
)

// EvaluateFlexure computes the chapter F flexural strength about the
// requested axis. Strong-axis bending follows F2: the unbraced length
// Lb against the Lp/Lr breakpoints selects the plastic, inelastic-LTB
// or elastic-LTB zone, with breakpoints taken on the lower-Lb side and
// Mn capped at Mp in every zone. Weak-axis bending follows F6, where
// flange compactness selects the branch.
func EvaluateFlexure(p section.Properties, m section.Material, cfg Config, axis FlexureAxis) (FlexureResult, error) {
	if err := p.Validate(); err != nil {
		return FlexureResult{}, err
	}
	if err := m.Validate(); err != nil {
		return FlexureResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return FlexureResult{}, err
	}
	cfg = cfg.normalized()

	cls, err := aisc.Classify(p.FlangeRatio(), p.WebRatio(), m.E, m.Fy)
	if err != nil {
		return FlexureResult{}, err
	}

	if axis == WeakAxis {
		return weakAxisFlexure(p, m, cls)
	}
	return strongAxisFlexure(p, m, cfg)
}

// strongAxisFlexure implements F2 for compact doubly symmetric I-shapes.
func strongAxisFlexure(p section.Properties, m section.Material, cfg Config) (FlexureResult, error) {
	mp := m.Fy * p.Zx

	// Equation F2-5
	lp := aisc.LpCoefficient * p.Ry * math.Sqrt(m.E/m.Fy)

	// Effective radius of gyration for lateral-torsional buckling
	rts := math.Sqrt(math.Sqrt(p.Iy*p.Cw) / p.Sx)

	// Equation F2-6; c = 1 for doubly symmetric shapes
	const c = 1.0
	x := p.J * c / (p.Sx * p.Ho)
	fyRatio := aisc.ResidualStressFactor * m.Fy / m.E
	lr := aisc.LrCoefficient * rts * (1 / fyRatio) *
		math.Sqrt(x+math.Sqrt(x*x+6.76*fyRatio*fyRatio))

	res := FlexureResult{
		Axis: StrongAxis,
		Mp:   mp,
		Cb:   cfg.Cb,
		Lp:   lp,
		Lr:   lr,
		Lb:   cfg.Lb,
		Rts:  rts,
	}

	var mn float64
	var state LimitState
	switch {
	case cfg.Lb <= lp:
		// F2.1: yielding
		mn = mp
		state = PlasticMoment
	case cfg.Lb <= lr:
		// Equation F2-2: inelastic lateral-torsional buckling
		mn = cfg.Cb * (mp - (mp-aisc.ResidualStressFactor*m.Fy*p.Sx)*(cfg.Lb-lp)/(lr-lp))
		if mn > mp {
			mn = mp
		}
		state = InelasticLTB
	default:
		// Equations F2-3, F2-4: elastic lateral-torsional buckling
		slender := cfg.Lb / rts
		fcr := cfg.Cb * math.Pi * math.Pi * m.E / (slender * slender) *
			math.Sqrt(1+0.078*x*slender*slender)
		res.Fcr = fcr
		mn = fcr * p.Sx
		if mn > mp {
			mn = mp
		}
		state = ElasticLTB
	}

	res.Governing = limitState(state, mn, aisc.PhiFlexure)
	return res, nil
}

// weakAxisFlexure implements F6 for I-shapes bent about their minor
// axis: no lateral-torsional buckling, flange local buckling branches
// on the flange flexure class.
func weakAxisFlexure(p section.Properties, m section.Material, cls aisc.SectionClassification) (FlexureResult, error) {
	mp := m.Fy * p.Zy
	// Equation F6-1 cap
	if cap16 := 1.6 * m.Fy * p.Sy; mp > cap16 {
		mp = cap16
	}

	res := FlexureResult{Axis: WeakAxis, Mp: mp, Cb: 1}

	var mn float64
	var state LimitState
	switch cls.FlangeFlexure {
	case aisc.Compact:
		mn = mp
		state = PlasticMoment
	case aisc.Noncompact:
		// Equation F6-2
		lambda := cls.LambdaFlange
		mn = mp - (mp-aisc.ResidualStressFactor*m.Fy*p.Sy)*
			(lambda-cls.LambdaPFlangeFlex)/(cls.LambdaRFlangeFlex-cls.LambdaPFlangeFlex)
		state = FlangeLocalBuckling
	default:
		// Equations F6-3, F6-4
		lambda := cls.LambdaFlange
		fcr := 0.69 * m.E / (lambda * lambda)
		res.Fcr = fcr
		mn = fcr * p.Sy
		if mn > mp {
			mn = mp
		}
		state = FlangeLocalBuckling
	}

	res.Governing = limitState(state, mn, aisc.PhiFlexure)
	return res, nil
}
