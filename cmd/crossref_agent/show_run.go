package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coach-crossref/internal/db"
)

var showRunCmd = &cobra.Command{
	Use:   "show-run",
	Short: "Print the most recent stored cross-reference run",
	Long:  "Reads the latest completed cross-reference run back from PostgreSQL and prints its counters and stored overlaps.",
	RunE:  runShowRun,
}

var showRunDatabaseURL string

func init() {
	showRunCmd.Flags().StringVar(&showRunDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to COACHREF_DATABASE_URL)")

	rootCmd.AddCommand(showRunCmd)
}

func runShowRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	url := showRunDatabaseURL
	if url == "" {
		url = os.Getenv("COACHREF_DATABASE_URL")
	}
	if url == "" {
		return fmt.Errorf("no database URL; set --database-url or COACHREF_DATABASE_URL")
	}

	database, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to results database: %w", err)
	}
	defer database.Close()

	run, err := database.LatestRun(ctx)
	if err != nil {
		return err
	}
	if run == nil {
		_, _ = fmt.Fprintln(os.Stdout, "No completed runs stored")
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run:                  %s\n", run.ID)
	_, _ = fmt.Fprintf(os.Stdout, "Window:               %d-%d\n", run.YearStart, run.YearEnd)
	_, _ = fmt.Fprintf(os.Stdout, "Fuzzy matching:       %t\n", run.FuzzyUsed)
	_, _ = fmt.Fprintf(os.Stdout, "Coaches processed:    %d\n", run.CoachCount)
	_, _ = fmt.Fprintf(os.Stdout, "Coaches with overlap: %d\n", run.CoachesWithOverlap)
	_, _ = fmt.Fprintf(os.Stdout, "Total overlaps:       %d\n", run.OverlapCount)

	overlaps, err := database.RunOverlaps(ctx, run.ID)
	if err != nil {
		return err
	}
	if len(overlaps) > 0 {
		_, _ = fmt.Fprintln(os.Stdout, "\nOverlaps:")
		for _, overlap := range overlaps {
			_, _ = fmt.Fprintf(os.Stdout, "  - %s, %s (%s) [%s]\n",
				overlap.School, overlap.AcademicYear, overlap.CoachPosition, overlap.MatchType)
		}
	}

	return nil
}
