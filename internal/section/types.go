package section

import "github.com/jiperezh/gosteel/internal/aisc"

// Material holds steel material constants. Values are immutable once
// created; any consistent unit set works as long as E, Fy, Fu and the
// section dimensions agree.
type Material struct {
	Fy float64 `json:"fy"` // Yield stress
	Fu float64 `json:"fu"` // Ultimate tensile stress
	E  float64 `json:"e"`  // Modulus of elasticity
	G  float64 `json:"g"`  // Shear modulus
}

// DefaultSteel returns A992-grade material constants in the catalog's
// metric unit set (kgf/cm²).
func DefaultSteel() Material {
	return Material{
		Fy: 3515,
		Fu: 4570,
		E:  aisc.Es,
		G:  aisc.Gs,
	}
}

// Validate checks material constants for positivity.
func (m Material) Validate() error {
	if m.Fy <= 0 || m.Fu <= 0 {
		return aisc.Validationf("yield and ultimate stress must be positive, got Fy=%.1f Fu=%.1f", m.Fy, m.Fu)
	}
	if m.Fu < m.Fy {
		return aisc.Validationf("ultimate stress %.1f must not be below yield stress %.1f", m.Fu, m.Fy)
	}
	if m.E <= 0 {
		return aisc.Validationf("modulus of elasticity must be positive, got E=%.1f", m.E)
	}
	if m.G <= 0 {
		return aisc.Validationf("shear modulus must be positive, got G=%.1f", m.G)
	}
	return nil
}

// Symmetry classifies the cross-section's axes of symmetry, which
// selects the applicable torsional buckling provisions.
type Symmetry int

const (
	// DoublySymmetric - symmetric about both principal axes (W, HP)
	DoublySymmetric Symmetry = iota
	// SinglySymmetric - symmetric about the y axis only (C, WT)
	SinglySymmetric
)

// Category is the rolled-shape family, used to key shape-dependent
// provisions such as slender-element reduction composition.
type Category int

const (
	WideFlange Category = iota
	Channel
)

// Properties holds the geometric constants of a cross-section.
// Dimensions in cm, areas in cm², inertias in cm⁴, moduli in cm³,
// warping constant in cm⁶ for catalog shapes.
type Properties struct {
	Name string `json:"name"`

	// Overall dimensions
	D  float64 `json:"d"`  // Total depth
	Bf float64 `json:"bf"` // Flange width
	Tf float64 `json:"tf"` // Flange thickness
	Tw float64 `json:"tw"` // Web thickness

	// Areas
	A  float64 `json:"a"`            // Gross area
	An float64 `json:"an,omitempty"` // Net area; zero means no holes (An = A)

	// Strong axis (x-x)
	Ix float64 `json:"ix"`
	Sx float64 `json:"sx"`
	Zx float64 `json:"zx"`
	Rx float64 `json:"rx"`

	// Weak axis (y-y)
	Iy float64 `json:"iy"`
	Sy float64 `json:"sy"`
	Zy float64 `json:"zy"`
	Ry float64 `json:"ry"`

	// Torsional properties
	J  float64 `json:"j"`  // St. Venant torsional constant
	Cw float64 `json:"cw"` // Warping constant
	Ho float64 `json:"ho"` // Distance between flange centroids

	// Shear center offsets from the centroid; zero for doubly
	// symmetric shapes
	X0 float64 `json:"x0,omitempty"`
	Y0 float64 `json:"y0,omitempty"`

	Symmetry Symmetry `json:"symmetry"`
	Category Category `json:"category"`
}

// NetArea returns An, falling back to the gross area when no net area
// was supplied.
func (p Properties) NetArea() float64 {
	if p.An > 0 {
		return p.An
	}
	return p.A
}

// FlangeRatio returns the flange width-to-thickness ratio bf/(2·tf).
func (p Properties) FlangeRatio() float64 {
	return p.Bf / (2 * p.Tf)
}

// WebRatio returns the web width-to-thickness ratio h/tw with
// h = d - 2·tf.
func (p Properties) WebRatio() float64 {
	return (p.D - 2*p.Tf) / p.Tw
}

// PolarRadiusSq returns the squared polar radius of gyration about the
// shear center, r̄0² = x0² + y0² + (Ix + Iy)/A.
func (p Properties) PolarRadiusSq() float64 {
	return p.X0*p.X0 + p.Y0*p.Y0 + (p.Ix+p.Iy)/p.A
}

// Validate checks the geometric invariants the evaluators rely on.
func (p Properties) Validate() error {
	if p.D <= 0 || p.Bf <= 0 || p.Tf <= 0 || p.Tw <= 0 {
		return aisc.Validationf("section %q: dimensions must be positive (d=%.2f bf=%.2f tf=%.2f tw=%.2f)",
			p.Name, p.D, p.Bf, p.Tf, p.Tw)
	}
	if p.D <= 2*p.Tf {
		return aisc.Validationf("section %q: depth %.2f does not clear two flange thicknesses %.2f", p.Name, p.D, 2*p.Tf)
	}
	if p.A <= 0 {
		return aisc.Validationf("section %q: gross area must be positive, got %.2f", p.Name, p.A)
	}
	if p.An < 0 || p.An > p.A {
		return aisc.Validationf("section %q: net area %.2f must satisfy 0 <= An <= Ag (%.2f)", p.Name, p.An, p.A)
	}
	if p.Ix <= 0 || p.Iy <= 0 || p.Sx <= 0 || p.Sy <= 0 || p.Zx <= 0 || p.Zy <= 0 {
		return aisc.Validationf("section %q: inertias and section moduli must be positive", p.Name)
	}
	if p.Rx <= 0 || p.Ry <= 0 {
		return aisc.Validationf("section %q: radii of gyration must be positive (rx=%.2f ry=%.2f)", p.Name, p.Rx, p.Ry)
	}
	if p.J <= 0 || p.Cw <= 0 || p.Ho <= 0 {
		return aisc.Validationf("section %q: torsional properties must be positive (J=%.2f Cw=%.2f ho=%.2f)", p.Name, p.J, p.Cw, p.Ho)
	}
	return nil
}
