package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/diagram"
	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

var (
	curveShape  string
	curveKind   string
	curveMaxL   float64
	curvePoints int
	curveCb     float64
	curveOutput string
)

var memberCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Draw or export capacity curves",
	Long: `Draw a member capacity curve in the terminal, or export it to an
image file (png, svg or pdf by extension).

Curve kinds:
  moment  - φMn vs unbraced length Lb, with the Lp/Lr zone breakpoints
  column  - φPn vs effective length KL

Examples:
  gosteel member curve --shape W18X50 --kind moment --max-length 1200
  gosteel member curve --shape W12X72 --kind column --max-length 800 --output curve.png`,
	Run: runMemberCurve,
}

func init() {
	memberCmd.AddCommand(memberCurveCmd)

	memberCurveCmd.Flags().StringVarP(&curveShape, "shape", "s", "", "W-shape designation [required]")
	memberCurveCmd.Flags().StringVarP(&curveKind, "kind", "k", "moment", "Curve kind: moment or column")
	memberCurveCmd.Flags().Float64VarP(&curveMaxL, "max-length", "l", 0, "Maximum unbraced/effective length (cm) [required]")
	memberCurveCmd.Flags().IntVarP(&curvePoints, "points", "n", 60, "Number of curve samples")
	memberCurveCmd.Flags().Float64Var(&curveCb, "cb", 1, "Lateral-torsional buckling modification factor Cb")
	memberCurveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Export to image file instead of drawing in the terminal")

	memberCurveCmd.MarkFlagRequired("shape")
	memberCurveCmd.MarkFlagRequired("max-length")
}

func runMemberCurve(cmd *cobra.Command, args []string) {
	props, ok := section.Lookup(curveShape)
	if !ok {
		fmt.Printf("Error: shape %q not found in catalog (see 'gosteel catalog')\n", curveShape)
		return
	}

	mat := section.DefaultSteel()
	cfg := member.Config{Cb: curveCb}

	switch curveKind {
	case "moment":
		curve, err := diagram.SampleMomentCurve(props, mat, cfg, curveMaxL, curvePoints)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if curveOutput != "" {
			if err := diagram.ExportMomentCurve(curve, props.Name, curveOutput); err != nil {
				fmt.Printf("Error exporting curve: %v\n", err)
				return
			}
			fmt.Printf("Curve written to %s\n", curveOutput)
			return
		}
		fmt.Println()
		fmt.Println(diagram.RenderMomentCurve(curve, props.Name))
		fmt.Println()
	case "column":
		curve, err := diagram.SampleColumnCurve(props, mat, cfg, curveMaxL, curvePoints)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if curveOutput != "" {
			if err := diagram.ExportColumnCurve(curve, props.Name, curveOutput); err != nil {
				fmt.Printf("Error exporting curve: %v\n", err)
				return
			}
			fmt.Printf("Curve written to %s\n", curveOutput)
			return
		}
		fmt.Println()
		fmt.Println(diagram.RenderColumnCurve(curve, props.Name))
		fmt.Println()
	default:
		fmt.Printf("Error: unknown curve kind %q (expected moment or column)\n", curveKind)
	}
}
