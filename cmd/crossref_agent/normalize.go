package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coach-crossref/internal/normalize"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <school name>",
	Short: "Normalize a school name against the program database",
	Long:  "Cleans a free-text school name and resolves it to canonical program-database form via exact match, alias lookup, and optional fuzzy matching.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

var (
	normalizeProgramDB string
	normalizeAliases   string
	normalizeFuzzy     bool
	normalizeThreshold float64
)

func init() {
	normalizeCmd.Flags().StringVar(&normalizeProgramDB, "program-db", "data/gitg_school_years.json", "Path to GITG school-years JSON file")
	normalizeCmd.Flags().StringVar(&normalizeAliases, "aliases", "data/school_aliases.json", "Path to school aliases JSON file")
	normalizeCmd.Flags().BoolVar(&normalizeFuzzy, "fuzzy", false, "Attempt fuzzy matching as a fallback")
	normalizeCmd.Flags().Float64Var(&normalizeThreshold, "fuzzy-threshold", normalize.DefaultFuzzyThreshold, "Minimum similarity ratio for a fuzzy match")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, args []string) error {
	name := args[0]

	normalizer, err := normalize.NewSchoolNormalizerFromFiles(normalizeProgramDB, normalizeAliases)
	if err != nil {
		return fmt.Errorf("failed to build normalizer: %w", err)
	}

	normalized, matchType := normalizer.Normalize(name, normalize.Options{
		UseFuzzy:       normalizeFuzzy,
		FuzzyThreshold: normalizeThreshold,
	})

	_, _ = fmt.Fprintf(os.Stdout, "Original:    %s\n", name)
	_, _ = fmt.Fprintf(os.Stdout, "Normalized:  %s\n", normalized)
	_, _ = fmt.Fprintf(os.Stdout, "Match type:  %s\n", matchType)
	_, _ = fmt.Fprintf(os.Stdout, "In database: %t\n", normalizer.InProgramDatabase(normalized))
	_, _ = fmt.Fprintf(os.Stdout, "NFL team:    %t\n", normalize.IsNFLTeam(name))

	if matches := normalizer.FuzzyMatches(); len(matches) > 0 {
		last := matches[len(matches)-1]
		_, _ = fmt.Fprintf(os.Stdout, "Fuzzy score: %.2f\n", last.Score)
	}

	return nil
}
