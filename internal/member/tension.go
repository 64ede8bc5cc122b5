package member

import (
	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/section"
)

// EvaluateTension computes the chapter D tensile limit states:
// yielding on the gross section (D2-1) and rupture on the effective net
// section (D2-2). Both are always evaluated; the governing strength is
// the smaller design value.
func EvaluateTension(p section.Properties, m section.Material, cfg Config) (TensionResult, error) {
	if err := p.Validate(); err != nil {
		return TensionResult{}, err
	}
	if err := m.Validate(); err != nil {
		return TensionResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return TensionResult{}, err
	}
	cfg = cfg.normalized()

	ae := cfg.U * p.NetArea()
	if ae <= 0 {
		return TensionResult{}, aisc.Domainf("effective net area must be positive, got %.2f", ae)
	}

	res := TensionResult{
		Yielding:         limitState(Yielding, m.Fy*p.A, aisc.PhiTensionYielding),
		Rupture:          limitState(Rupture, m.Fu*ae, aisc.PhiTensionRupture),
		EffectiveNetArea: ae,
	}

	res.Governing = res.Yielding
	if res.Rupture.Design < res.Yielding.Design {
		res.Governing = res.Rupture
	}
	return res, nil
}
