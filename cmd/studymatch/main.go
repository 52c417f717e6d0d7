// Package main provides the entry point for the studymatch CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studymatch",
	Short: "Study partner compatibility matcher",
	Long:  "studymatch scores and ranks study partner compatibility from subject overlap, timezone distance, skill level, availability and study style, as a CLI or via a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
