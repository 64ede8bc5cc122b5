package member

import "github.com/jiperezh/gosteel/internal/aisc"

// Config holds the member-level parameters of one evaluation: unbraced
// lengths per buckling mode, effective length factors, the moment
// gradient coefficient and the shear-lag factor. Supplied per analysis,
// never persisted.
type Config struct {
	// Unbraced lengths (same length unit as the section properties)
	Lx float64 // flexural buckling about x
	Ly float64 // flexural buckling about y
	Lz float64 // torsional buckling; zero skips the torsional modes
	Lb float64 // lateral-torsional buckling of the compression flange

	// Effective length factors; zero defaults to 1.0
	Kx float64
	Ky float64
	Kz float64

	// Cb is the lateral-torsional buckling modification factor;
	// zero defaults to 1.0 (uniform moment)
	Cb float64

	// U is the shear-lag factor for net-section rupture;
	// zero defaults to 1.0
	U float64
}

// normalized returns a copy with the defaulted fields filled in.
func (c Config) normalized() Config {
	if c.Kx == 0 {
		c.Kx = 1
	}
	if c.Ky == 0 {
		c.Ky = 1
	}
	if c.Kz == 0 {
		c.Kz = 1
	}
	if c.Cb == 0 {
		c.Cb = 1
	}
	if c.U == 0 {
		c.U = 1
	}
	return c
}

func (c Config) validate() error {
	if c.Kx < 0 || c.Ky < 0 || c.Kz < 0 {
		return aisc.Validationf("effective length factors must not be negative (Kx=%.2f Ky=%.2f Kz=%.2f)", c.Kx, c.Ky, c.Kz)
	}
	if c.Cb < 0 {
		return aisc.Validationf("Cb must not be negative, got %.2f", c.Cb)
	}
	if c.U < 0 || c.U > 1 {
		return aisc.Validationf("shear-lag factor U must be in (0, 1], got %.2f", c.U)
	}
	if c.Lx < 0 || c.Ly < 0 || c.Lz < 0 || c.Lb < 0 {
		return aisc.Validationf("unbraced lengths must not be negative (Lx=%.2f Ly=%.2f Lz=%.2f Lb=%.2f)", c.Lx, c.Ly, c.Lz, c.Lb)
	}
	return nil
}

// Demands are the factored forces placed on the member. Axial force is
// positive in tension and negative in compression, matching the sign
// convention of the load-combination output.
type Demands struct {
	P  float64 // axial force
	Mx float64 // moment about the strong axis
	My float64 // moment about the weak axis
}
