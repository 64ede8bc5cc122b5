package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/section"
)

var (
	classifyShape string
	classifyFy    float64
	classifyE     float64
)

var memberClassifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a section's compression elements",
	Long: `Classify the flange and web of a W-shape as compact, noncompact
or slender per AISC 360-22 Tables B4.1a and B4.1b.

Examples:
  gosteel member classify --shape W21X44
  gosteel member classify --shape W21X44 --fy 2530`,
	Run: runMemberClassify,
}

func init() {
	memberCmd.AddCommand(memberClassifyCmd)

	memberClassifyCmd.Flags().StringVarP(&classifyShape, "shape", "s", "", "W-shape designation [required]")
	memberClassifyCmd.Flags().Float64Var(&classifyFy, "fy", 3515, "Steel yield stress Fy (kgf/cm²)")
	memberClassifyCmd.Flags().Float64Var(&classifyE, "e", 2038902, "Modulus of elasticity E (kgf/cm²)")

	memberClassifyCmd.MarkFlagRequired("shape")
}

func runMemberClassify(cmd *cobra.Command, args []string) {
	props, ok := section.Lookup(classifyShape)
	if !ok {
		fmt.Printf("Error: shape %q not found in catalog (see 'gosteel catalog')\n", classifyShape)
		return
	}

	cls, err := aisc.Classify(props.FlangeRatio(), props.WebRatio(), classifyE, classifyFy)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION CLASSIFICATION - AISC 360-22 TABLE B4.1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("WIDTH-THICKNESS RATIOS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s\n", props.Name)
	fmt.Fprintf(w, "  λ flange (bf/2tf):\t%.2f\n", cls.LambdaFlange)
	fmt.Fprintf(w, "  λ web (h/tw):\t%.2f\n", cls.LambdaWeb)
	w.Flush()
	fmt.Println()

	fmt.Println("LIMITS AND CLASSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flange, compression:\tλr=%.2f\t→ %s\n", cls.LambdaRFlangeComp, cls.FlangeCompression)
	fmt.Fprintf(w, "  Flange, flexure:\tλp=%.2f λr=%.2f\t→ %s\n", cls.LambdaPFlangeFlex, cls.LambdaRFlangeFlex, cls.FlangeFlexure)
	fmt.Fprintf(w, "  Web, flexure:\tλp=%.2f λr=%.2f\t→ %s\n", cls.LambdaPWebFlex, cls.LambdaRWebFlex, cls.WebFlexure)
	fmt.Fprintf(w, "  Section (worst element):\t\t→ %s\n", cls.Worst())
	w.Flush()
	fmt.Println()
}
