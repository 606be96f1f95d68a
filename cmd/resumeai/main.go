// Package main provides the entry point for the ResumeAI server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeai",
	Short: "ResumeAI - messy notes to professional CV",
	Long:  "ResumeAI converts unstructured career notes into a structured professional resume with an interactive preview and a PDF download.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
