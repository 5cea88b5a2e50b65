package cache

import (
	"encoding/json"
	"os"
	"time"
)

// Roster is the per-school roster.json written by the research layer.
type Roster struct {
	School      string        `json:"school"`
	FetchedDate string        `json:"fetched_date"` // YYYY-MM-DD
	Coaches     []RosterEntry `json:"coaches"`
}

// RosterEntry is one coach listed on a school's roster.
type RosterEntry struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

// SchoolStatus summarizes the cache state for one school.
type SchoolStatus struct {
	School       string `json:"school"`
	RosterExists bool   `json:"roster_exists"`
	AgeDays      int    `json:"age_days"` // -1 when unknown
	Stale        bool   `json:"stale"`
	RosterCount  int    `json:"roster_count"`
	CachedCount  int    `json:"cached_count"` // coach files with career data
}

// CacheAgeDays returns the age in days of a school's roster, or -1 when
// the roster is missing or carries no parseable fetched_date.
func CacheAgeDays(rosterPath string, now time.Time) int {
	content, err := os.ReadFile(rosterPath)
	if err != nil {
		return -1
	}

	var roster Roster
	if err := json.Unmarshal(content, &roster); err != nil {
		return -1
	}

	fetched, err := time.Parse("2006-01-02", roster.FetchedDate)
	if err != nil {
		return -1
	}

	return int(now.Sub(fetched).Hours() / 24)
}

// IsStale reports whether a school's cached roster is older than
// stalenessDays. A missing or unreadable roster counts as stale.
func IsStale(rosterPath string, stalenessDays int, now time.Time) bool {
	age := CacheAgeDays(rosterPath, now)
	if age < 0 {
		return true
	}
	return age > stalenessDays
}

// SchoolCacheStatus builds the status summary for one school.
func SchoolCacheStatus(cacheBase, school string, stalenessDays int, now time.Time) SchoolStatus {
	rosterPath := RosterPath(cacheBase, school)

	status := SchoolStatus{
		School:  school,
		AgeDays: CacheAgeDays(rosterPath, now),
		Stale:   IsStale(rosterPath, stalenessDays, now),
	}

	if content, err := os.ReadFile(rosterPath); err == nil {
		var roster Roster
		if err := json.Unmarshal(content, &roster); err == nil {
			status.RosterExists = true
			status.RosterCount = len(roster.Coaches)
		}
	}

	sources, _ := LoadCoachDir(CoachesDir(cacheBase, school))
	for _, source := range sources {
		status.CachedCount += len(source.Coaches)
	}

	return status
}
