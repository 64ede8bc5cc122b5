package aisc

import "math"

// Width-to-thickness classification per AISC 360-22 Tables B4.1a and B4.1b.

// ElementClass is the compactness class of a single compression element.
type ElementClass int

const (
	Compact ElementClass = iota
	Noncompact
	Slender
)

func (c ElementClass) String() string {
	switch c {
	case Compact:
		return "compact"
	case Noncompact:
		return "noncompact"
	case Slender:
		return "slender"
	default:
		return "unknown"
	}
}

// ElementCase identifies a row of the width-to-thickness limit table.
type ElementCase int

const (
	// FlangeCompression - unstiffened flange of a rolled I-shape under
	// uniform compression (Table B4.1a)
	FlangeCompression ElementCase = iota
	// FlangeFlexure - flange of a rolled I-shape in flexure
	// (Table B4.1b, Case 10)
	FlangeFlexure
	// WebFlexure - web of a doubly symmetric I-shape in flexure
	// (Table B4.1b, Case 15)
	WebFlexure
)

// limitCoefficients hold the λp and λr multipliers of √(E/Fy) for one
// table case. The differences between cases are parametric, so the table
// is data, not behavior.
type limitCoefficients struct {
	P float64 // compact limit λp
	R float64 // noncompact limit λr
}

var widthThicknessLimits = map[ElementCase]limitCoefficients{
	FlangeCompression: {P: 0.56, R: 1.49},
	FlangeFlexure:     {P: 0.38, R: 1.00},
	WebFlexure:        {P: 3.76, R: 5.70},
}

// LambdaP returns the compact limit for the given element case.
func LambdaP(c ElementCase, e, fy float64) float64 {
	return widthThicknessLimits[c].P * math.Sqrt(e/fy)
}

// LambdaR returns the noncompact limit for the given element case.
func LambdaR(c ElementCase, e, fy float64) float64 {
	return widthThicknessLimits[c].R * math.Sqrt(e/fy)
}

// ClassifyElement places a width-to-thickness ratio in its compactness
// class. Ratios exactly at a limit take the more restrictive side:
// λ ≤ λp is compact, λ ≤ λr is noncompact.
func ClassifyElement(lambda, lambdaP, lambdaR float64) ElementClass {
	switch {
	case lambda <= lambdaP:
		return Compact
	case lambda <= lambdaR:
		return Noncompact
	default:
		return Slender
	}
}

// SectionClassification holds the per-element classes of an I-shaped
// section together with the ratios and limits that produced them.
type SectionClassification struct {
	// Element classes
	FlangeCompression ElementClass
	FlangeFlexure     ElementClass
	WebFlexure        ElementClass

	// Width-to-thickness ratios
	LambdaFlange float64 // bf/(2·tf)
	LambdaWeb    float64 // (d - 2·tf)/tw

	// Limits
	LambdaPFlangeComp float64
	LambdaRFlangeComp float64
	LambdaPFlangeFlex float64
	LambdaRFlangeFlex float64
	LambdaPWebFlex    float64
	LambdaRWebFlex    float64
}

// Worst returns the least favorable class among the section's elements.
func (s SectionClassification) Worst() ElementClass {
	worst := s.FlangeCompression
	if s.FlangeFlexure > worst {
		worst = s.FlangeFlexure
	}
	if s.WebFlexure > worst {
		worst = s.WebFlexure
	}
	return worst
}

// SlenderForCompression reports whether any compression element is
// slender, which triggers the reduced-stress provisions.
func (s SectionClassification) SlenderForCompression() bool {
	return s.FlangeCompression == Slender || s.WebFlexure == Slender
}

// Classify classifies an I-shaped section from its flange and web
// width-to-thickness ratios.
func Classify(lambdaFlange, lambdaWeb, e, fy float64) (SectionClassification, error) {
	if lambdaFlange <= 0 {
		return SectionClassification{}, Validationf("flange width-thickness ratio must be positive, got %.4f", lambdaFlange)
	}
	if lambdaWeb <= 0 {
		return SectionClassification{}, Validationf("web width-thickness ratio must be positive, got %.4f", lambdaWeb)
	}
	if e <= 0 || fy <= 0 {
		return SectionClassification{}, Validationf("E and Fy must be positive, got E=%.1f Fy=%.1f", e, fy)
	}

	s := SectionClassification{
		LambdaFlange:      lambdaFlange,
		LambdaWeb:         lambdaWeb,
		LambdaPFlangeComp: LambdaP(FlangeCompression, e, fy),
		LambdaRFlangeComp: LambdaR(FlangeCompression, e, fy),
		LambdaPFlangeFlex: LambdaP(FlangeFlexure, e, fy),
		LambdaRFlangeFlex: LambdaR(FlangeFlexure, e, fy),
		LambdaPWebFlex:    LambdaP(WebFlexure, e, fy),
		LambdaRWebFlex:    LambdaR(WebFlexure, e, fy),
	}
	s.FlangeCompression = ClassifyElement(lambdaFlange, s.LambdaPFlangeComp, s.LambdaRFlangeComp)
	s.FlangeFlexure = ClassifyElement(lambdaFlange, s.LambdaPFlangeFlex, s.LambdaRFlangeFlex)
	s.WebFlexure = ClassifyElement(lambdaWeb, s.LambdaPWebFlex, s.LambdaRWebFlex)
	return s, nil
}
