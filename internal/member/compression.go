package member

import (
	"math"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/section"
)

// qTorsionalComposition records, per shape category, whether the
// slender-element reduction composes into the torsional and
// flexural-torsional branch tests. Kept as a table entry rather than a
// rule baked into the evaluator.
var qTorsionalComposition = map[section.Category]bool{
	section.WideFlange: true,
	section.Channel:    true,
}

// EvaluateCompression computes the chapter E compressive strength.
// Elastic buckling stresses are computed for flexural buckling about
// both axes (E3-4) and, when a torsional unbraced length is supplied,
// for torsional buckling of doubly symmetric shapes (E4-2) or
// flexural-torsional buckling of singly symmetric shapes (E4-3). The
// minimum Fe governs. The critical stress uses the inelastic column
// curve when Fy/Fe <= 2.25 (boundary inclusive) and the elastic curve
// otherwise, with the slender-element reduction Q multiplying Fy
// throughout.
func EvaluateCompression(p section.Properties, m section.Material, cfg Config) (CompressionResult, error) {
	if err := p.Validate(); err != nil {
		return CompressionResult{}, err
	}
	if err := m.Validate(); err != nil {
		return CompressionResult{}, err
	}
	if err := cfg.validate(); err != nil {
		return CompressionResult{}, err
	}
	cfg = cfg.normalized()

	if cfg.Lx <= 0 || cfg.Ly <= 0 {
		return CompressionResult{}, aisc.Domainf("effective lengths must be positive for compression (Lx=%.2f Ly=%.2f)", cfg.Lx, cfg.Ly)
	}

	cls, err := aisc.Classify(p.FlangeRatio(), p.WebRatio(), m.E, m.Fy)
	if err != nil {
		return CompressionResult{}, err
	}

	q := 1.0
	if cls.SlenderForCompression() {
		q = slenderReduction(p, m, cls)
	}

	res := CompressionResult{
		KLrX: cfg.Kx * cfg.Lx / p.Rx,
		KLrY: cfg.Ky * cfg.Ly / p.Ry,
		Q:    q,
	}

	feX := math.Pi * math.Pi * m.E / (res.KLrX * res.KLrX)
	feY := math.Pi * math.Pi * m.E / (res.KLrY * res.KLrY)
	res.FeFlexural = math.Min(feX, feY)

	mode := FlexuralBuckling
	fe := res.FeFlexural

	if cfg.Lz > 0 {
		r0sq := p.PolarRadiusSq()
		fez := (math.Pi*math.Pi*m.E*p.Cw/(cfg.Kz*cfg.Lz*cfg.Kz*cfg.Lz) + m.G*p.J) / (p.A * r0sq)

		switch p.Symmetry {
		case section.DoublySymmetric:
			res.FeTorsional = fez
			if fez < fe {
				mode = TorsionalBuckling
				fe = fez
			}
		case section.SinglySymmetric:
			// Flexural buckling about the axis of symmetry couples
			// with torsion; the closed-form quadratic resolves the
			// combined mode analytically.
			h := 1 - (p.X0*p.X0+p.Y0*p.Y0)/r0sq
			if h <= 0 {
				return CompressionResult{}, aisc.Domainf("flexural-torsional coefficient H must be positive, got %.4f", h)
			}
			sum := feY + fez
			disc := 1 - 4*feY*fez*h/(sum*sum)
			if disc < 0 {
				return CompressionResult{}, aisc.Domainf("negative discriminant %.6f in flexural-torsional buckling", disc)
			}
			feFT := (sum / (2 * h)) * (1 - math.Sqrt(disc))
			res.FeTorsional = fez
			res.FeFlexuralTorsional = feFT
			if feFT < fe {
				mode = FlexuralTorsionalBuckling
				fe = feFT
			}
		}
	}
	res.Fe = fe

	// Q multiplies Fy in the slenderness check and inelastic curve.
	// Whether it carries into the torsional modes is a per-category
	// table decision.
	fyEff := q * m.Fy
	if mode != FlexuralBuckling && !qTorsionalComposition[p.Category] {
		fyEff = m.Fy
	}

	lambda := fyEff / fe
	var fcr float64
	if lambda <= aisc.SlendernessBranchLimit {
		// Equation E3-2: inelastic buckling
		fcr = math.Pow(aisc.InelasticBucklingBase, lambda) * fyEff
		res.Inelastic = true
	} else {
		// Equation E3-3: elastic buckling
		fcr = aisc.ElasticBucklingFactor * fe
	}
	res.Fcr = fcr

	res.Governing = limitState(mode, fcr*p.A, aisc.PhiCompression)
	return res, nil
}

// slenderReduction returns the Q factor for sections with slender
// compression elements: Qs for the unstiffened flanges (E7.1 closed
// form) times Qa for the stiffened web. The web's effective width is
// taken at f = Fy, which keeps the evaluation closed-form and errs on
// the safe side.
func slenderReduction(p section.Properties, m section.Material, cls aisc.SectionClassification) float64 {
	qs := 1.0
	if cls.FlangeCompression == aisc.Slender {
		lambda := p.FlangeRatio()
		root := math.Sqrt(m.E / m.Fy)
		switch {
		case lambda <= 0.56*root:
			qs = 1.0
		case lambda < 1.03*root:
			qs = 1.415 - 0.74*lambda*math.Sqrt(m.Fy/m.E)
		default:
			qs = 0.69 * m.E / (m.Fy * lambda * lambda)
		}
	}

	qa := 1.0
	if cls.WebFlexure == aisc.Slender {
		h := p.D - 2*p.Tf
		rootF := math.Sqrt(m.E / m.Fy)
		be := 1.92 * p.Tw * rootF * (1 - 0.34/(h/p.Tw)*rootF)
		if be > h {
			be = h
		}
		if be < 0 {
			be = 0
		}
		aeff := p.A - (h-be)*p.Tw
		qa = aeff / p.A
	}

	return qs * qa
}
