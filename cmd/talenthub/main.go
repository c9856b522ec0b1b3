// Package main provides the entry point for the Talent Hub HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talenthub",
	Short: "Talent Hub recruitment API server",
	Long:  "Talent Hub manages job postings, candidate pipelines, talent pools, group dynamics and AI-assisted screening via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
