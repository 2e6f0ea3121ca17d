// Package main provides the entry point for the supercomponents CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "supercomponents",
	Short: "Design system generator",
	Long: `supercomponents turns a design inspiration (an image, a website or a text description) into a
design system: W3C design tokens, brand principles, a phased component plan and an implementation guide.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
