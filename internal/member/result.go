package member

import "github.com/jiperezh/gosteel/internal/aisc"

// LimitState tags the failure mode that produced a strength value.
type LimitState int

const (
	Yielding LimitState = iota
	Rupture
	FlexuralBuckling
	TorsionalBuckling
	FlexuralTorsionalBuckling
	PlasticMoment
	InelasticLTB
	ElasticLTB
	FlangeLocalBuckling
)

func (s LimitState) String() string {
	switch s {
	case Yielding:
		return "yielding"
	case Rupture:
		return "rupture"
	case FlexuralBuckling:
		return "flexural buckling"
	case TorsionalBuckling:
		return "torsional buckling"
	case FlexuralTorsionalBuckling:
		return "flexural-torsional buckling"
	case PlasticMoment:
		return "plastic moment"
	case InelasticLTB:
		return "inelastic lateral-torsional buckling"
	case ElasticLTB:
		return "elastic lateral-torsional buckling"
	case FlangeLocalBuckling:
		return "flange local buckling"
	default:
		return "unknown"
	}
}

// MarshalText lets JSON reports carry the mode name instead of an index.
func (s LimitState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText restores a limit state from its mode name, so API
// clients can round-trip reports.
func (s *LimitState) UnmarshalText(text []byte) error {
	name := string(text)
	for ls := Yielding; ls <= FlangeLocalBuckling; ls++ {
		if ls.String() == name {
			*s = ls
			return nil
		}
	}
	return aisc.Validationf("unknown limit state %q", name)
}

// LimitStateResult is one evaluated limit state: nominal strength,
// resistance factor and the resulting design strength. Produced fresh
// per evaluation and never mutated.
type LimitStateResult struct {
	State   LimitState `json:"state"`
	Nominal float64    `json:"nominal"`
	Phi     float64    `json:"phi"`
	Design  float64    `json:"design"`
}

func limitState(state LimitState, nominal, phi float64) LimitStateResult {
	return LimitStateResult{
		State:   state,
		Nominal: nominal,
		Phi:     phi,
		Design:  phi * nominal,
	}
}

// TensionResult reports the chapter D limit states. Both are always
// evaluated; Governing is the smaller design strength.
type TensionResult struct {
	Yielding  LimitStateResult `json:"yielding"`
	Rupture   LimitStateResult `json:"rupture"`
	Governing LimitStateResult `json:"governing"`

	EffectiveNetArea float64 `json:"effective_net_area"`
}

// CompressionResult reports the chapter E evaluation.
type CompressionResult struct {
	// Slenderness ratios
	KLrX      float64 `json:"klr_x"`
	KLrY      float64 `json:"klr_y"`
	Governing LimitStateResult `json:"governing"`

	// Elastic buckling stresses per mode; zero when not applicable
	FeFlexural          float64 `json:"fe_flexural"`
	FeTorsional         float64 `json:"fe_torsional,omitempty"`
	FeFlexuralTorsional float64 `json:"fe_flexural_torsional,omitempty"`
	Fe                  float64 `json:"fe"` // governing (minimum) elastic buckling stress

	Q         float64 `json:"q"`   // slender-element reduction, 1.0 for nonslender sections
	Fcr       float64 `json:"fcr"` // critical stress
	Inelastic bool    `json:"inelastic"`
}

// FlexureAxis selects the bending axis for a flexure evaluation.
type FlexureAxis int

const (
	StrongAxis FlexureAxis = iota
	WeakAxis
)

func (a FlexureAxis) String() string {
	if a == WeakAxis {
		return "weak axis"
	}
	return "strong axis"
}

// FlexureResult reports a chapter F evaluation about one axis.
type FlexureResult struct {
	Axis      FlexureAxis      `json:"axis"`
	Governing LimitStateResult `json:"governing"`

	Mp float64 `json:"mp"` // plastic moment
	Cb float64 `json:"cb"`

	// Lateral-torsional buckling parameters (strong axis only)
	Lp  float64 `json:"lp,omitempty"`
	Lr  float64 `json:"lr,omitempty"`
	Lb  float64 `json:"lb,omitempty"`
	Rts float64 `json:"rts,omitempty"`
	Fcr float64 `json:"fcr,omitempty"` // elastic LTB stress, set in the elastic zone
}

// InteractionResult reports the H1 combined-force check.
type InteractionResult struct {
	Equation string  `json:"equation"` // "H1-1a" or "H1-1b"
	Value    float64 `json:"value"`
	PrPc     float64 `json:"pr_pc"`
	OK       bool    `json:"ok"`
}

// FamilyCheck pairs a failure family's governing result with the demand
// placed on it.
type FamilyCheck struct {
	Result LimitStateResult `json:"result"`
	Demand float64          `json:"demand"`
	Ratio  float64          `json:"ratio"` // demand / design strength
	OK     bool             `json:"ok"`
}

// Report aggregates every limit state considered for a member under one
// loading scenario. Families not triggered by the demands are nil.
type Report struct {
	Classification aisc.SectionClassification `json:"classification"`

	Tension       *TensionResult     `json:"tension,omitempty"`
	Compression   *CompressionResult `json:"compression,omitempty"`
	FlexureStrong *FlexureResult     `json:"flexure_strong,omitempty"`
	FlexureWeak   *FlexureResult     `json:"flexure_weak,omitempty"`
	Interaction   *InteractionResult `json:"interaction,omitempty"`

	Checks map[string]FamilyCheck `json:"checks"`

	// Governing is the limit state with the minimum design strength
	// among the evaluated families.
	Governing      LimitStateResult `json:"governing"`
	MaxUtilization float64          `json:"max_utilization"`
	OK             bool             `json:"ok"`
}
