package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/aisc"
)

var (
	// Unfactored axial forces (kgf)
	loadsAxialDead       float64
	loadsAxialLive       float64
	loadsAxialRoof       float64
	loadsAxialWind       float64
	loadsAxialEarthquake float64
	loadsAxialRain       float64

	// Unfactored moments (kgf-cm)
	loadsMomentDead       float64
	loadsMomentLive       float64
	loadsMomentRoof       float64
	loadsMomentWind       float64
	loadsMomentEarthquake float64
	loadsMomentRain       float64

	// Options
	loadsShowAll    bool
	loadsSimplified bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate factored loads using LRFD load combinations",
	Long: `Calculate factored axial force (Pu) and moment (Mu) based on the
ASCE/SEI 7 strength load combinations.

Provide unfactored load effects from different load types and this
command will compute the factored values for all applicable
combinations.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity axial load and moment
  gosteel loads --pd 12000 --pl 8000 --md 500000 --ml 300000

  # Show all combinations
  gosteel loads --pd 12000 --pl 8000 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	// Axial load flags
	loadsCmd.Flags().Float64Var(&loadsAxialDead, "pd", 0, "Axial force due to dead load (kgf)")
	loadsCmd.Flags().Float64Var(&loadsAxialLive, "pl", 0, "Axial force due to live load (kgf)")
	loadsCmd.Flags().Float64Var(&loadsAxialRoof, "plr", 0, "Axial force due to roof live load (kgf)")
	loadsCmd.Flags().Float64Var(&loadsAxialWind, "pw", 0, "Axial force due to wind load (kgf)")
	loadsCmd.Flags().Float64Var(&loadsAxialEarthquake, "pe", 0, "Axial force due to earthquake load (kgf)")
	loadsCmd.Flags().Float64Var(&loadsAxialRain, "pr", 0, "Axial force due to rain load (kgf)")

	// Moment flags
	loadsCmd.Flags().Float64Var(&loadsMomentDead, "md", 0, "Moment due to dead load (kgf-cm)")
	loadsCmd.Flags().Float64Var(&loadsMomentLive, "ml", 0, "Moment due to live load (kgf-cm)")
	loadsCmd.Flags().Float64Var(&loadsMomentRoof, "mlr", 0, "Moment due to roof live load (kgf-cm)")
	loadsCmd.Flags().Float64Var(&loadsMomentWind, "mw", 0, "Moment due to wind load (kgf-cm)")
	loadsCmd.Flags().Float64Var(&loadsMomentEarthquake, "me", 0, "Moment due to earthquake load (kgf-cm)")
	loadsCmd.Flags().Float64Var(&loadsMomentRain, "mr", 0, "Moment due to rain load (kgf-cm)")

	// Options
	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadsSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) {
	axial := aisc.LoadEffects{
		Dead:       loadsAxialDead,
		Live:       loadsAxialLive,
		Roof:       loadsAxialRoof,
		Wind:       loadsAxialWind,
		Earthquake: loadsAxialEarthquake,
		Rain:       loadsAxialRain,
	}
	moment := aisc.LoadEffects{
		Dead:       loadsMomentDead,
		Live:       loadsMomentLive,
		Roof:       loadsMomentRoof,
		Wind:       loadsMomentWind,
		Earthquake: loadsMomentEarthquake,
		Rain:       loadsMomentRain,
	}

	combos := aisc.LoadCombinations
	if loadsSimplified {
		combos = aisc.SimplifiedCombinations
	}

	pu, puCombo := aisc.GoverningEffect(axial, combos)
	mu, muCombo := aisc.GoverningEffect(moment, combos)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FACTORED LOADS - ASCE/SEI 7 STRENGTH COMBINATIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if loadsShowAll {
		fmt.Println("ALL COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tCombination\tPu (kgf)\tMu (kgf-cm)\n")
		for _, combo := range combos {
			fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.1f\n", combo.ID, combo.Description, combo.Factor(axial), combo.Factor(moment))
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("GOVERNING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pu:\t%.1f kgf\t(%s)\n", pu, puCombo.Description)
	fmt.Fprintf(w, "  Mu:\t%.1f kgf-cm\t(%s)\n", mu, muCombo.Description)
	w.Flush()
	fmt.Println()
}
