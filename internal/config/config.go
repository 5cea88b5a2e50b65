// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultYearStart          = 2020
	DefaultYearEnd            = 2026
	DefaultCacheStalenessDays = 30
	DefaultFuzzyThreshold     = 0.85
)

// YearRange is the half-open window of calendar years considered by the
// cross-reference pass.
type YearRange struct {
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ProgramDB string `json:"program_db,omitempty"` // Path to gitg_school_years.json
	Aliases   string `json:"aliases,omitempty"`    // Path to school_aliases.json
	CacheDir  string `json:"cache_dir,omitempty"`  // Directory of coach research cache files

	// Matching
	YearRange      YearRange `json:"year_range,omitempty"`
	UseFuzzy       bool      `json:"use_fuzzy,omitempty"`       // Enable fuzzy name matching
	FuzzyThreshold float64   `json:"fuzzy_threshold,omitempty"` // Minimum fuzzy similarity (0.0-1.0)

	// Behavior
	CacheStalenessDays int    `json:"cache_staleness_days,omitempty"` // Days before cached research is stale
	Parallelism        int    `json:"parallelism,omitempty"`          // Coaches cross-referenced concurrently
	Verbose            bool   `json:"verbose,omitempty"`              // Print detailed progress information
	DatabaseURL        string `json:"database_url,omitempty"`         // PostgreSQL connection URL for result storage
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 1")
	}
	if c.CacheStalenessDays < 0 {
		return fmt.Errorf("config error: 'cache_staleness_days' must be non-negative")
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("config error: 'parallelism' must be non-negative")
	}
	if c.YearRange.Start != 0 && c.YearRange.End != 0 && c.YearRange.Start > c.YearRange.End {
		return fmt.Errorf("config error: 'year_range.start' must not exceed 'year_range.end'")
	}

	if c.ProgramDB != "" {
		if _, err := os.Stat(c.ProgramDB); os.IsNotExist(err) {
			return fmt.Errorf("config error: program database not found: %s", c.ProgramDB)
		}
	}
	if c.Aliases != "" {
		if _, err := os.Stat(c.Aliases); os.IsNotExist(err) {
			return fmt.Errorf("config error: alias table not found: %s", c.Aliases)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProgramDB == "" {
		result.ProgramDB = defaults.ProgramDB
	}
	if result.Aliases == "" {
		result.Aliases = defaults.Aliases
	}
	if result.CacheDir == "" {
		result.CacheDir = defaults.CacheDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.YearRange.Start == 0 {
		result.YearRange.Start = defaults.YearRange.Start
	}
	if result.YearRange.Start == 0 {
		result.YearRange.Start = DefaultYearStart
	}
	if result.YearRange.End == 0 {
		result.YearRange.End = defaults.YearRange.End
	}
	if result.YearRange.End == 0 {
		result.YearRange.End = DefaultYearEnd
	}

	if result.FuzzyThreshold == 0 {
		if defaults.FuzzyThreshold > 0 {
			result.FuzzyThreshold = defaults.FuzzyThreshold
		} else {
			result.FuzzyThreshold = DefaultFuzzyThreshold
		}
	}

	if result.CacheStalenessDays == 0 {
		if defaults.CacheStalenessDays > 0 {
			result.CacheStalenessDays = defaults.CacheStalenessDays
		} else {
			result.CacheStalenessDays = DefaultCacheStalenessDays
		}
	}

	if result.Parallelism == 0 {
		result.Parallelism = defaults.Parallelism
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
