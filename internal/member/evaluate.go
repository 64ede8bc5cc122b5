package member

import (
	"math"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/section"
)

// Evaluate runs every limit-state family the demands call for and
// aggregates the results. Axial tension and compression are mutually
// exclusive by the sign of the axial demand (positive = tension);
// flexure is evaluated independently per axis. Any evaluator failure
// fails the whole call: a report missing a requested failure mode is
// unsafe to present as a design check.
func Evaluate(p section.Properties, m section.Material, cfg Config, d Demands) (Report, error) {
	if d.P == 0 && d.Mx == 0 && d.My == 0 {
		return Report{}, aisc.Validationf("no demands supplied: nothing to evaluate")
	}

	cls, err := aisc.Classify(p.FlangeRatio(), p.WebRatio(), m.E, m.Fy)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Classification: cls,
		Checks:         make(map[string]FamilyCheck),
	}

	if d.P > 0 {
		t, err := EvaluateTension(p, m, cfg)
		if err != nil {
			return Report{}, err
		}
		rep.Tension = &t
		rep.Checks["tension"] = check(t.Governing, d.P)
	}
	if d.P < 0 {
		c, err := EvaluateCompression(p, m, cfg)
		if err != nil {
			return Report{}, err
		}
		rep.Compression = &c
		rep.Checks["compression"] = check(c.Governing, -d.P)
	}
	if d.Mx != 0 {
		f, err := EvaluateFlexure(p, m, cfg, StrongAxis)
		if err != nil {
			return Report{}, err
		}
		rep.FlexureStrong = &f
		rep.Checks["flexure_strong"] = check(f.Governing, math.Abs(d.Mx))
	}
	if d.My != 0 {
		f, err := EvaluateFlexure(p, m, cfg, WeakAxis)
		if err != nil {
			return Report{}, err
		}
		rep.FlexureWeak = &f
		rep.Checks["flexure_weak"] = check(f.Governing, math.Abs(d.My))
	}

	if rep.Compression != nil && (d.Mx != 0 || d.My != 0) {
		rep.Interaction = interact(rep, d)
	}

	first := true
	for _, fc := range rep.Checks {
		if first || fc.Result.Design < rep.Governing.Design {
			rep.Governing = fc.Result
			first = false
		}
		if fc.Ratio > rep.MaxUtilization {
			rep.MaxUtilization = fc.Ratio
		}
	}
	if rep.Interaction != nil && rep.Interaction.Value > rep.MaxUtilization {
		rep.MaxUtilization = rep.Interaction.Value
	}
	rep.OK = rep.MaxUtilization <= 1.0

	return rep, nil
}

func check(r LimitStateResult, demand float64) FamilyCheck {
	ratio := demand / r.Design
	return FamilyCheck{
		Result: r,
		Demand: demand,
		Ratio:  ratio,
		OK:     ratio <= 1.0,
	}
}

// interact applies the H1 combined axial-and-flexure interaction:
// H1-1a when Pr/Pc >= 0.2, H1-1b below it. Moment terms enter only for
// the axes actually loaded.
func interact(rep Report, d Demands) *InteractionResult {
	pc := rep.Compression.Governing.Design
	pr := -d.P

	var momentSum float64
	if rep.FlexureStrong != nil {
		momentSum += math.Abs(d.Mx) / rep.FlexureStrong.Governing.Design
	}
	if rep.FlexureWeak != nil {
		momentSum += math.Abs(d.My) / rep.FlexureWeak.Governing.Design
	}

	prpc := pr / pc
	res := &InteractionResult{PrPc: prpc}
	if prpc >= 0.2 {
		// Equation H1-1a
		res.Equation = "H1-1a"
		res.Value = prpc + (8.0/9.0)*momentSum
	} else {
		// Equation H1-1b
		res.Equation = "H1-1b"
		res.Value = prpc/2 + momentSum
	}
	res.OK = res.Value <= 1.0
	return res
}
