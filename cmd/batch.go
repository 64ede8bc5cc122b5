package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/report"
	"github.com/jiperezh/gosteel/internal/section"
)

var (
	batchInput  string
	batchOutput string
	batchFy     float64
	batchFu     float64
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify members from a spreadsheet",
	Long: `Run member verifications from a spreadsheet and write the results
to a new workbook.

The first sheet must carry a header row followed by one member per
row with the columns:
  shape, P, Mx, My, Lx, Ly, Lb [, Lz, Cb, U]

Axial force P is positive in tension, negative in compression.

Example:
  gosteel batch --input members.xlsx --output results.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input workbook (.xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output workbook (.xlsx) [required]")
	batchCmd.Flags().Float64Var(&batchFy, "fy", 3515, "Steel yield stress Fy (kgf/cm²)")
	batchCmd.Flags().Float64Var(&batchFu, "fu", 4570, "Steel ultimate stress Fu (kgf/cm²)")

	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")
}

func runBatch(cmd *cobra.Command, args []string) {
	rows, err := report.ReadBatch(batchInput)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", batchInput, err)
		return
	}

	mat := section.DefaultSteel()
	mat.Fy = batchFy
	mat.Fu = batchFu

	results := report.RunBatch(rows, mat)

	var okCount, failCount, errCount int
	for _, res := range results {
		switch {
		case res.Err != nil:
			errCount++
		case res.Report.OK:
			okCount++
		default:
			failCount++
		}
	}

	if err := report.WriteBatch(results, batchOutput); err != nil {
		fmt.Printf("Error writing %s: %v\n", batchOutput, err)
		return
	}

	fmt.Println()
	fmt.Printf("  %d members verified: %d adequate, %d inadequate, %d errors\n", len(results), okCount, failCount, errCount)
	fmt.Printf("  Results written to %s\n", batchOutput)
	fmt.Println()
}
