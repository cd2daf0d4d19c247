// Package main provides the cv_scorer command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_scorer",
	Short: "Score plain-text resumes against a job description",
	Long:  "cv_scorer scores already-extracted resume text across education, experience, skills, formatting and job description match, and explains the result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
