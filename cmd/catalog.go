package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/section"
)

var catalogShape string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List or show W-shapes from the property catalog",
	Long: `List the W-shape designations in the property catalog, or show
the full geometric properties of one shape (metric units: cm).

Examples:
  gosteel catalog
  gosteel catalog --shape W18X50`,
	Run: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogShape, "shape", "s", "", "Show one shape's full properties")
}

func runCatalog(cmd *cobra.Command, args []string) {
	if catalogShape == "" {
		fmt.Println()
		fmt.Println("AVAILABLE W-SHAPES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		names := section.Names()
		for i, name := range names {
			fmt.Printf("  %-10s", name)
			if (i+1)%6 == 0 {
				fmt.Println()
			}
		}
		fmt.Println()
		fmt.Printf("\n  %d shapes in catalog\n\n", len(names))
		return
	}

	p, ok := section.Lookup(catalogShape)
	if !ok {
		fmt.Printf("Error: shape %q not found in catalog\n", catalogShape)
		return
	}

	fmt.Println()
	fmt.Printf("PROPERTIES OF %s (metric):\n", p.Name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Depth (d):\t%.2f cm\n", p.D)
	fmt.Fprintf(w, "  Flange width (bf):\t%.2f cm\n", p.Bf)
	fmt.Fprintf(w, "  Flange thickness (tf):\t%.2f cm\n", p.Tf)
	fmt.Fprintf(w, "  Web thickness (tw):\t%.2f cm\n", p.Tw)
	fmt.Fprintf(w, "  Area (A):\t%.2f cm²\n", p.A)
	fmt.Fprintf(w, "  Ix:\t%.2f cm⁴\n", p.Ix)
	fmt.Fprintf(w, "  Sx:\t%.2f cm³\n", p.Sx)
	fmt.Fprintf(w, "  Zx:\t%.2f cm³\n", p.Zx)
	fmt.Fprintf(w, "  rx:\t%.2f cm\n", p.Rx)
	fmt.Fprintf(w, "  Iy:\t%.2f cm⁴\n", p.Iy)
	fmt.Fprintf(w, "  Sy:\t%.2f cm³\n", p.Sy)
	fmt.Fprintf(w, "  Zy:\t%.2f cm³\n", p.Zy)
	fmt.Fprintf(w, "  ry:\t%.2f cm\n", p.Ry)
	fmt.Fprintf(w, "  J:\t%.2f cm⁴\n", p.J)
	fmt.Fprintf(w, "  Cw:\t%.2f cm⁶\n", p.Cw)
	fmt.Fprintf(w, "  ho:\t%.2f cm\n", p.Ho)
	w.Flush()
	fmt.Println()
}
