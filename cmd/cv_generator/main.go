// Package main provides the entry point for the CV generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_generator",
	Short: "CV form-to-document generator",
	Long:  "CV generator serves a form-driven CV editor with a live preview, and exports the document as a PDF with optional Gemini-backed translation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
