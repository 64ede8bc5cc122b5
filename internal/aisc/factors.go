package aisc

// AISC 360-22 LRFD Constants

const (
	// Resistance factors
	// Section D2 - Tensile strength
	PhiTensionYielding = 0.90
	PhiTensionRupture  = 0.75
	// Section E1 - Compressive strength
	PhiCompression = 0.90
	// Section F1 - Flexural strength
	PhiFlexure = 0.90

	// Column curve constants (Equations E3-2, E3-3)
	InelasticBucklingBase   = 0.658 // 0.658^(Fy/Fe) multiplier base
	ElasticBucklingFactor   = 0.877 // 0.877·Fe
	SlendernessBranchLimit  = 2.25  // Fy/Fe boundary between the two branches

	// Lateral-torsional buckling (Equations F2-5, F2-6)
	LpCoefficient        = 1.76 // Lp = 1.76·ry·√(E/Fy)
	LrCoefficient        = 1.95 // leading coefficient of Lr
	ResidualStressFactor = 0.70 // 0.7·Fy compression-flange residual stress level

	// Modulus of elasticity for structural steel (kgf/cm²)
	Es = 2038902.0
	// Shear modulus, G = E/(2(1+ν)) with ν = 0.3
	Gs = Es / 2.6
)
