package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/report"
	"github.com/jiperezh/gosteel/internal/section"
)

var (
	// Section and material inputs
	verifyShape string
	verifyFy    float64
	verifyFu    float64
	verifyE     float64

	// Demand inputs (kgf, kgf-cm)
	verifyP  float64
	verifyMx float64
	verifyMy float64

	// Member configuration (cm)
	verifyLx float64
	verifyLy float64
	verifyLz float64
	verifyLb float64
	verifyKx float64
	verifyKy float64
	verifyKz float64
	verifyCb float64
	verifyU  float64

	// Output
	verifyPDF string
)

var memberVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a steel member against factored loads",
	Long: `Verify a W-shape member against factored demands using the
AISC 360-22 limit states (LRFD).

Axial force is positive in tension, negative in compression. The
applicable checks follow from the demands supplied: tension or
compression from the axial sign, flexure per loaded axis, and H1
interaction when compression combines with moment.

Examples:
  # Beam under strong-axis moment (kgf-cm), braced every 300 cm
  gosteel member verify --shape W18X50 --mx 2500000 --lb 300

  # Column under compression with both axes unbraced over 400 cm
  gosteel member verify --shape W12X72 -p -80000 --lx 400 --ly 400 --lz 400

  # Beam-column, write the calc sheet to PDF
  gosteel member verify --shape W14X90 -p -50000 --mx 1800000 --lx 350 --ly 350 --lb 350 --pdf member.pdf`,
	Run: runMemberVerify,
}

func init() {
	memberCmd.AddCommand(memberVerifyCmd)

	// Section flags
	memberVerifyCmd.Flags().StringVarP(&verifyShape, "shape", "s", "", "W-shape designation, e.g. W18X50 [required]")

	// Material flags (kgf/cm²)
	memberVerifyCmd.Flags().Float64Var(&verifyFy, "fy", 3515, "Steel yield stress Fy (kgf/cm²)")
	memberVerifyCmd.Flags().Float64Var(&verifyFu, "fu", 4570, "Steel ultimate stress Fu (kgf/cm²)")
	memberVerifyCmd.Flags().Float64Var(&verifyE, "e", 2038902, "Modulus of elasticity E (kgf/cm²)")

	// Demand flags
	memberVerifyCmd.Flags().Float64VarP(&verifyP, "axial", "p", 0, "Factored axial force, + tension / - compression (kgf)")
	memberVerifyCmd.Flags().Float64Var(&verifyMx, "mx", 0, "Factored strong-axis moment (kgf-cm)")
	memberVerifyCmd.Flags().Float64Var(&verifyMy, "my", 0, "Factored weak-axis moment (kgf-cm)")

	// Length flags
	memberVerifyCmd.Flags().Float64Var(&verifyLx, "lx", 0, "Unbraced length for buckling about x (cm)")
	memberVerifyCmd.Flags().Float64Var(&verifyLy, "ly", 0, "Unbraced length for buckling about y (cm)")
	memberVerifyCmd.Flags().Float64Var(&verifyLz, "lz", 0, "Unbraced length for torsional buckling (cm); 0 skips torsional modes")
	memberVerifyCmd.Flags().Float64Var(&verifyLb, "lb", 0, "Unbraced length of the compression flange (cm)")
	memberVerifyCmd.Flags().Float64Var(&verifyKx, "kx", 1, "Effective length factor about x")
	memberVerifyCmd.Flags().Float64Var(&verifyKy, "ky", 1, "Effective length factor about y")
	memberVerifyCmd.Flags().Float64Var(&verifyKz, "kz", 1, "Effective length factor for torsion")
	memberVerifyCmd.Flags().Float64Var(&verifyCb, "cb", 1, "Lateral-torsional buckling modification factor Cb")
	memberVerifyCmd.Flags().Float64VarP(&verifyU, "shear-lag", "u", 1, "Shear-lag factor U for net-section rupture")

	// Output flags
	memberVerifyCmd.Flags().StringVar(&verifyPDF, "pdf", "", "Write the calculation sheet to a PDF file")

	memberVerifyCmd.MarkFlagRequired("shape")
}

func runMemberVerify(cmd *cobra.Command, args []string) {
	props, ok := section.Lookup(verifyShape)
	if !ok {
		fmt.Printf("Error: shape %q not found in catalog (see 'gosteel catalog')\n", verifyShape)
		return
	}

	mat := section.DefaultSteel()
	mat.Fy = verifyFy
	mat.Fu = verifyFu
	mat.E = verifyE
	mat.G = verifyE / 2.6

	cfg := member.Config{
		Lx: verifyLx, Ly: verifyLy, Lz: verifyLz, Lb: verifyLb,
		Kx: verifyKx, Ky: verifyKy, Kz: verifyKz,
		Cb: verifyCb, U: verifyU,
	}
	demands := member.Demands{P: verifyP, Mx: verifyMx, My: verifyMy}

	rep, err := member.Evaluate(props, mat, cfg, demands)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STEEL MEMBER VERIFICATION - AISC 360-22 (LRFD)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s\n", props.Name)
	fmt.Fprintf(w, "  Fy:\t%.0f kgf/cm²\n", mat.Fy)
	fmt.Fprintf(w, "  Fu:\t%.0f kgf/cm²\n", mat.Fu)
	fmt.Fprintf(w, "  Axial force (Pu):\t%.1f kgf\n", demands.P)
	fmt.Fprintf(w, "  Moment Mux:\t%.1f kgf-cm\n", demands.Mx)
	fmt.Fprintf(w, "  Moment Muy:\t%.1f kgf-cm\n", demands.My)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	cls := rep.Classification
	fmt.Fprintf(w, "  λ flange (bf/2tf):\t%.2f\n", cls.LambdaFlange)
	fmt.Fprintf(w, "  λ web (h/tw):\t%.2f\n", cls.LambdaWeb)
	fmt.Fprintf(w, "  Flange (compression):\t%s\n", cls.FlangeCompression)
	fmt.Fprintf(w, "  Flange (flexure):\t%s\n", cls.FlangeFlexure)
	fmt.Fprintf(w, "  Web (flexure):\t%s\n", cls.WebFlexure)
	w.Flush()
	fmt.Println()

	printFamily := func(title, key string) {
		fc, ok := rep.Checks[key]
		if !ok {
			return
		}
		fmt.Println(title + ":")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Governing limit state:\t%s\n", fc.Result.State)
		fmt.Fprintf(w, "  Nominal strength (Rn):\t%.1f\n", fc.Result.Nominal)
		fmt.Fprintf(w, "  Resistance factor (φ):\t%.2f\n", fc.Result.Phi)
		fmt.Fprintf(w, "  Design strength (φRn):\t%.1f\n", fc.Result.Design)
		fmt.Fprintf(w, "  Demand:\t%.1f\n", fc.Demand)
		status := "✓"
		if !fc.OK {
			status = "⚠ FAILS"
		}
		fmt.Fprintf(w, "  Utilization:\t%.3f %s\n", fc.Ratio, status)
		w.Flush()
		fmt.Println()
	}

	printFamily("TENSION (CHAPTER D)", "tension")
	printFamily("COMPRESSION (CHAPTER E)", "compression")
	printFamily("FLEXURE, STRONG AXIS (CHAPTER F)", "flexure_strong")
	printFamily("FLEXURE, WEAK AXIS (CHAPTER F)", "flexure_weak")

	if rep.Compression != nil {
		fmt.Println("BUCKLING DETAIL:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  KL/r (x):\t%.1f\n", rep.Compression.KLrX)
		fmt.Fprintf(w, "  KL/r (y):\t%.1f\n", rep.Compression.KLrY)
		fmt.Fprintf(w, "  Fe (governing):\t%.1f kgf/cm²\n", rep.Compression.Fe)
		fmt.Fprintf(w, "  Fcr:\t%.1f kgf/cm²\n", rep.Compression.Fcr)
		fmt.Fprintf(w, "  Q:\t%.3f\n", rep.Compression.Q)
		branch := "elastic"
		if rep.Compression.Inelastic {
			branch = "inelastic"
		}
		fmt.Fprintf(w, "  Column curve branch:\t%s\n", branch)
		w.Flush()
		fmt.Println()
	}

	if rep.FlexureStrong != nil {
		fmt.Println("LATERAL-TORSIONAL BUCKLING DETAIL:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Lp:\t%.1f cm\n", rep.FlexureStrong.Lp)
		fmt.Fprintf(w, "  Lr:\t%.1f cm\n", rep.FlexureStrong.Lr)
		fmt.Fprintf(w, "  Lb:\t%.1f cm\n", rep.FlexureStrong.Lb)
		fmt.Fprintf(w, "  rts:\t%.2f cm\n", rep.FlexureStrong.Rts)
		fmt.Fprintf(w, "  Mp:\t%.1f kgf-cm\n", rep.FlexureStrong.Mp)
		w.Flush()
		fmt.Println()
	}

	if rep.Interaction != nil {
		fmt.Println("COMBINED FORCES (CHAPTER H):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Equation:\t%s\n", rep.Interaction.Equation)
		fmt.Fprintf(w, "  Pr/Pc:\t%.3f\n", rep.Interaction.PrPc)
		status := "✓"
		if !rep.Interaction.OK {
			status = "⚠ FAILS"
		}
		fmt.Fprintf(w, "  Interaction value:\t%.3f %s\n", rep.Interaction.Value, status)
		w.Flush()
		fmt.Println()
	}

	verdict := "MEMBER ADEQUATE"
	if !rep.OK {
		verdict = "MEMBER INADEQUATE"
	}
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  %s — max utilization %.3f     \n", verdict, rep.MaxUtilization)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	if verifyPDF != "" {
		if err := report.WritePDF(rep, props, mat, demands, verifyPDF); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
			return
		}
		fmt.Printf("  Calculation sheet written to %s\n", verifyPDF)
		fmt.Println()
	}
}
