// Package main provides the entry point for the portfolio chat backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_chat",
	Short: "Portfolio chat backend",
	Long:  "Portfolio chat answers questions about my résumé, grounded in the structured résumé document with a generative-model and raw-text fallback chain.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
