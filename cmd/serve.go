package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jiperezh/gosteel/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the member verification HTTP API",
	Long: `Run an HTTP API exposing the member verification engine.

Endpoints:
  POST /api/verify  - verify a member (JSON in/out)
  GET  /api/shapes  - list catalog shape designations

The listen address is taken from the GOSTEEL_ADDR environment
variable (a .env file is honored) and defaults to :8080.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := server.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
