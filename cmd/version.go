package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosteel v%s\n", version.Version)
		fmt.Println("Steel Member Verification Tool")
		fmt.Println("Based on AISC 360-22 (Specification for Structural Steel Buildings)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
