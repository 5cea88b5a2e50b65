// Package main provides the entry point for the coach cross-reference CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crossref_agent",
	Short: "NMDP GITG coach cross-reference tool",
	Long:  "crossref_agent cross-references college football coaching staff career histories against the NMDP GITG school-year database to surface coaches with prior program exposure.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
