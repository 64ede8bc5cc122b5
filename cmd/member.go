package cmd

import (
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Steel member verification and classification",
	Long: `Verify and classify hot-rolled steel members
under AISC 360-22 provisions.

Subcommands:
  verify    - Check a member against factored loads
  classify  - Classify a section's compression elements
  curve     - Draw or export capacity curves

All calculations follow the LRFD method.`,
}

func init() {
	rootCmd.AddCommand(memberCmd)
}
