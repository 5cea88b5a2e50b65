package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/coach-crossref/internal/cache"
	"github.com/jonathan/coach-crossref/internal/config"
	"github.com/jonathan/coach-crossref/internal/crossref"
	"github.com/jonathan/coach-crossref/internal/db"
	"github.com/jonathan/coach-crossref/internal/normalize"
	"github.com/jonathan/coach-crossref/internal/observability"
	"github.com/jonathan/coach-crossref/internal/types"
)

var crossrefCmd = &cobra.Command{
	Use:   "crossref",
	Short: "Cross-reference all cached coaches against the program database",
	Long:  "Loads every coach file from the research cache, normalizes each career stint's school name, and reports academic-year overlaps with the GITG program. Optionally writes results to a JSON file and/or PostgreSQL.",
	RunE:  runCrossref,
}

var (
	crossrefConfigPath  string
	crossrefCacheDir    string
	crossrefProgramDB   string
	crossrefAliases     string
	crossrefFuzzy       bool
	crossrefThreshold   float64
	crossrefYearStart   int
	crossrefYearEnd     int
	crossrefParallelism int
	crossrefOutFile     string
	crossrefVerbose     bool
)

func init() {
	crossrefCmd.Flags().StringVarP(&crossrefConfigPath, "config", "c", "", "Path to JSON config file")
	crossrefCmd.Flags().StringVar(&crossrefCacheDir, "cache-dir", "", "Directory of per-school coach caches")
	crossrefCmd.Flags().StringVar(&crossrefProgramDB, "program-db", "", "Path to GITG school-years JSON file")
	crossrefCmd.Flags().StringVar(&crossrefAliases, "aliases", "", "Path to school aliases JSON file")
	crossrefCmd.Flags().BoolVar(&crossrefFuzzy, "fuzzy", false, "Attempt fuzzy school-name matching")
	crossrefCmd.Flags().Float64Var(&crossrefThreshold, "fuzzy-threshold", 0, "Minimum similarity ratio for a fuzzy match")
	crossrefCmd.Flags().IntVar(&crossrefYearStart, "year-start", 0, "Earliest calendar year to consider")
	crossrefCmd.Flags().IntVar(&crossrefYearEnd, "year-end", 0, "Latest calendar year (exclusive), also the \"present\" reference")
	crossrefCmd.Flags().IntVar(&crossrefParallelism, "parallelism", 0, "Coaches cross-referenced concurrently (0 or 1 = sequential)")
	crossrefCmd.Flags().StringVarP(&crossrefOutFile, "out", "o", "", "Path to write full results JSON")
	crossrefCmd.Flags().BoolVarP(&crossrefVerbose, "verbose", "v", false, "Print per-coach overlap details")

	rootCmd.AddCommand(crossrefCmd)
}

// resolveCrossrefConfig merges flag values over config-file values over
// built-in defaults.
func resolveCrossrefConfig() (config.Config, error) {
	flags := config.Config{
		ProgramDB:      crossrefProgramDB,
		Aliases:        crossrefAliases,
		CacheDir:       crossrefCacheDir,
		UseFuzzy:       crossrefFuzzy,
		FuzzyThreshold: crossrefThreshold,
		YearRange:      config.YearRange{Start: crossrefYearStart, End: crossrefYearEnd},
		Parallelism:    crossrefParallelism,
		Verbose:        crossrefVerbose,
	}

	fileDefaults := config.Config{}
	if crossrefConfigPath != "" {
		loaded, err := config.LoadConfig(crossrefConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		fileDefaults = *loaded
		// Bools don't merge; the file enables them when flags did not.
		flags.UseFuzzy = flags.UseFuzzy || fileDefaults.UseFuzzy
		flags.Verbose = flags.Verbose || fileDefaults.Verbose
	}

	cfg := flags.MergeWithDefaults(fileDefaults)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("COACHREF_DATABASE_URL")
	}
	if cfg.ProgramDB == "" {
		cfg.ProgramDB = "data/gitg_school_years.json"
	}
	if cfg.Aliases == "" {
		cfg.Aliases = "data/school_aliases.json"
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "cache"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runCrossref(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveCrossrefConfig()
	if err != nil {
		return err
	}

	programDB, err := normalize.LoadProgramDatabase(cfg.ProgramDB)
	if err != nil {
		return fmt.Errorf("failed to load program database: %w", err)
	}
	aliases, err := normalize.LoadAliasTable(cfg.Aliases)
	if err != nil {
		return fmt.Errorf("failed to load alias table: %w", err)
	}
	normalizer := normalize.NewSchoolNormalizer(programDB, aliases)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAliasConflicts(normalizer.AliasConflicts())

	sources, skipped := cache.LoadAllCoaches(cfg.CacheDir)

	params := crossref.Params{
		YearStart: cfg.YearRange.Start,
		YearEnd:   cfg.YearRange.End,
		Fuzzy: normalize.Options{
			UseFuzzy:       cfg.UseFuzzy,
			FuzzyThreshold: cfg.FuzzyThreshold,
		},
		Parallelism: cfg.Parallelism,
	}

	results, err := crossref.CrossReferenceAll(ctx, sources, programDB, normalizer, params)
	if err != nil {
		return fmt.Errorf("cross-reference failed: %w", err)
	}

	printer.PrintRunSummary(results, skipped)
	printer.PrintSkippedFiles(skipped)
	if cfg.Verbose {
		for i := range results {
			printer.PrintCoachResult(&results[i])
		}
	}
	printer.PrintFuzzyAudit(normalizer.FuzzyMatches())

	if crossrefOutFile != "" {
		if err := writeResultsFile(crossrefOutFile, results); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", crossrefOutFile)
	}

	if cfg.DatabaseURL != "" {
		if err := persistResults(ctx, cfg, params, results); err != nil {
			return err
		}
	}

	return nil
}

func writeResultsFile(path string, results any) error {
	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}

func persistResults(ctx context.Context, cfg config.Config, params crossref.Params, results []types.CrossReferenceResult) error {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to results database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	runID, err := database.CreateRun(ctx, params.YearStart, params.YearEnd, params.Fuzzy.UseFuzzy)
	if err != nil {
		return err
	}
	if err := database.SaveResults(ctx, runID, results); err != nil {
		_ = database.CompleteRun(ctx, runID, db.RunStatusFailed)
		return err
	}
	if err := database.CompleteRun(ctx, runID, db.RunStatusCompleted); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run %s stored in database\n", runID)
	return nil
}
