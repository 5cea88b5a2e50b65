package types

// MatchType records how a school name was resolved to canonical form.
type MatchType string

// Match types, in priority order of the normalizer.
const (
	MatchExact MatchType = "exact"
	MatchAlias MatchType = "alias"
	MatchFuzzy MatchType = "fuzzy"
	MatchNone  MatchType = "none"
)

// OverlapRecord represents one academic year during which a coach was at a
// school while the NMDP GITG program also ran there.
type OverlapRecord struct {
	School         string    `json:"school"`
	SchoolOriginal string    `json:"school_original"`
	AcademicYear   string    `json:"academic_year"`
	CoachPosition  string    `json:"coach_position"`
	MatchType      MatchType `json:"match_type"`
}

// CrossReferenceResult is the outcome of cross-referencing one coach
// against the program database. Overlaps are ordered by stint order, then
// year ascending within a stint.
type CrossReferenceResult struct {
	CoachName       string          `json:"coach_name"`
	CurrentPosition string          `json:"current_position"`
	CurrentSchool   string          `json:"current_school"`
	ResearchStatus  ResearchStatus  `json:"research_status"`
	CareerHistory   []CareerStint   `json:"career_history"`
	HasOverlap      bool            `json:"has_overlap"`
	Overlaps        []OverlapRecord `json:"overlaps"`
	OverlapCount    int             `json:"overlap_count"`
}

// FuzzyMatch is one entry in the normalizer's fuzzy-match audit log,
// retained for human review rather than silently trusted.
type FuzzyMatch struct {
	Original  string  `json:"original"`
	MatchedTo string  `json:"matched_to"`
	Score     float64 `json:"score"`
}

// AliasConflict records an alias that appeared under two different
// canonical schools while building the reverse alias index. The later
// entry wins; the conflict is surfaced for review instead of being
// silently overwritten.
type AliasConflict struct {
	Alias     string `json:"alias"`
	Kept      string `json:"kept"`
	Discarded string `json:"discarded"`
}
