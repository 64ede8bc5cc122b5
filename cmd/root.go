package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel Member Verification Tool",
	Long: `gosteel - Go Steel Member Validator

A CLI tool for the verification of hot-rolled steel members
under the AISC 360-22 specification (LRFD).

This tool helps structural engineers perform:
  - Tension member checks (Chapter D)
  - Compression member checks, including slender elements (Chapter E)
  - Flexural member checks about both axes (Chapter F)
  - Combined-force interaction (Chapter H)

All calculations follow AISC 360-22 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Member Validator                               ║")
		fmt.Printf("  ║   %s ©  %s                                      ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the verification of hot-rolled steel members")
		fmt.Println("  under the AISC 360-22 specification (LRFD).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored load calculation using LRFD load combinations")
		fmt.Println("    • Tension, compression and flexure limit-state checks")
		fmt.Println("    • Capacity curves (terminal and image export)")
		fmt.Println("    • W-shape property catalog")
		fmt.Println("    • Batch verification from spreadsheets")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
