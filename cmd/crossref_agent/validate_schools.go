package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coach-crossref/internal/normalize"
	"github.com/jonathan/coach-crossref/internal/schoolcheck"
)

var validateSchoolsCmd = &cobra.Command{
	Use:   "validate-schools",
	Short: "Check that every target school resolves through the alias table",
	Long:  "Loads a target-schools list and reports which entries resolve to a canonical school via the alias table and which need a new alias before research can run.",
	RunE:  runValidateSchools,
}

var (
	validateTargets string
	validateAliases string
)

func init() {
	validateSchoolsCmd.Flags().StringVarP(&validateTargets, "targets", "t", "", "Path to target schools JSON file (required)")
	validateSchoolsCmd.Flags().StringVar(&validateAliases, "aliases", "data/school_aliases.json", "Path to school aliases JSON file")

	if err := validateSchoolsCmd.MarkFlagRequired("targets"); err != nil {
		panic(fmt.Sprintf("failed to mark targets flag as required: %v", err))
	}

	rootCmd.AddCommand(validateSchoolsCmd)
}

func runValidateSchools(_ *cobra.Command, _ []string) error {
	list, err := schoolcheck.LoadTargetList(validateTargets)
	if err != nil {
		return err
	}

	aliases, err := normalize.LoadAliasTable(validateAliases)
	if err != nil {
		return fmt.Errorf("failed to load alias table: %w", err)
	}

	matched, unmatched := schoolcheck.ValidateSchools(list, aliases)

	_, _ = fmt.Fprintf(os.Stdout, "Matched:   %d\n", len(matched))
	_, _ = fmt.Fprintf(os.Stdout, "Unmatched: %d\n", len(unmatched))

	if len(unmatched) > 0 {
		_, _ = fmt.Fprintln(os.Stdout, "\nSchools needing aliases:")
		for _, school := range unmatched {
			_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", school.Name)
		}
		return fmt.Errorf("%d target schools did not resolve", len(unmatched))
	}

	return nil
}
