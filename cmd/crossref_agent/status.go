package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/coach-crossref/internal/cache"
	"github.com/jonathan/coach-crossref/internal/config"
	"github.com/jonathan/coach-crossref/internal/observability"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report coach cache freshness per school",
	Long:  "Walks the research cache and reports, per school, how many coaches are cached versus rostered and whether the cached roster has gone stale.",
	RunE:  runStatus,
}

var (
	statusCacheDir      string
	statusStalenessDays int
)

func init() {
	statusCmd.Flags().StringVar(&statusCacheDir, "cache-dir", "cache", "Directory of per-school coach caches")
	statusCmd.Flags().IntVar(&statusStalenessDays, "staleness-days", config.DefaultCacheStalenessDays, "Days before cached research counts as stale")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	entries, err := os.ReadDir(statusCacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory %s: %w", statusCacheDir, err)
	}

	var schools []string
	for _, entry := range entries {
		if entry.IsDir() {
			schools = append(schools, entry.Name())
		}
	}
	sort.Strings(schools)

	now := time.Now()
	statuses := make([]cache.SchoolStatus, 0, len(schools))
	for _, school := range schools {
		statuses = append(statuses, cache.SchoolCacheStatus(statusCacheDir, school, statusStalenessDays, now))
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCacheStatus(statuses)

	return nil
}
