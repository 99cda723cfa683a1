package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "recordsvc",
	Short:         "In-memory user record service over HTTP",
	Long:          "Recordsvc serves a small user-record store over HTTP: a health check, get-by-id, and create. Records live only for the lifetime of the process.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database (\":memory:\" or a file path; default in-memory map, env RS_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (YAML or JSON)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dbcheckCmd)
}
