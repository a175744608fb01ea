// Package main provides the entry point for the Career Advisor service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_advisor",
	Short: "Career Advisor API server and CLI",
	Long:  "Career Advisor analyzes a student profile (resume, academic scores, interests) with a generative model and produces career-path reports, falling back to a local catalog when the model is unavailable.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
