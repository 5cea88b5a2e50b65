package normalize

import (
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/coach-crossref/internal/types"
)

// DefaultFuzzyThreshold is the minimum similarity ratio accepted as a
// fuzzy match when the caller does not choose one.
const DefaultFuzzyThreshold = 0.85

// Options controls optional fuzzy matching for a single Normalize call.
// The zero value disables fuzzy matching entirely.
type Options struct {
	UseFuzzy       bool
	FuzzyThreshold float64 // 0 means DefaultFuzzyThreshold
}

// CleanSchoolName standardizes a school name for comparison: uppercase,
// internal whitespace runs collapsed to a single space, trimmed.
func CleanSchoolName(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), " ")
}

// SchoolNormalizer canonicalizes school names against the fixed universe
// of program-database school names, using exact match, alias lookup, and
// optional fuzzy similarity. It is immutable after construction except for
// the fuzzy-match audit log, which is synchronized so one instance can be
// shared across parallel per-coach evaluations.
type SchoolNormalizer struct {
	programSchools map[string]struct{}
	canonical      []string // sorted for deterministic fuzzy tie-breaks
	reverseAliases map[string]string
	conflicts      []types.AliasConflict

	mu       sync.Mutex
	fuzzyLog []types.FuzzyMatch
}

// NewSchoolNormalizer builds a normalizer from an in-memory program
// database and alias table.
func NewSchoolNormalizer(db types.ProgramYearDatabase, aliases types.AliasTable) *SchoolNormalizer {
	n := &SchoolNormalizer{
		programSchools: make(map[string]struct{}, len(db)),
		reverseAliases: make(map[string]string),
	}

	for school := range db {
		cleaned := CleanSchoolName(school)
		if _, ok := n.programSchools[cleaned]; !ok {
			n.programSchools[cleaned] = struct{}{}
			n.canonical = append(n.canonical, cleaned)
		}
	}
	sort.Strings(n.canonical)

	n.buildReverseAliases(aliases)
	return n
}

// buildReverseAliases maps each uppercased alias to its canonical name.
// An alias listed under two canonicals keeps the later entry and records
// the collision for review.
func (n *SchoolNormalizer) buildReverseAliases(aliases types.AliasTable) {
	// Map iteration order is not stable, so walk canonicals sorted to keep
	// the winning entry of a collision reproducible across runs.
	canonicals := make([]string, 0, len(aliases))
	for canonical := range aliases {
		if strings.HasPrefix(canonical, "_") { // comment fields
			continue
		}
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	for _, canonical := range canonicals {
		canonicalUpper := strings.ToUpper(canonical)
		for _, alias := range aliases[canonical] {
			aliasUpper := strings.ToUpper(alias)
			if prev, ok := n.reverseAliases[aliasUpper]; ok && prev != canonicalUpper {
				n.conflicts = append(n.conflicts, types.AliasConflict{
					Alias:     aliasUpper,
					Kept:      canonicalUpper,
					Discarded: prev,
				})
			}
			n.reverseAliases[aliasUpper] = canonicalUpper
		}
	}
}

// Normalize resolves a school name to canonical program-database form.
// Priority: exact match, alias lookup, fuzzy similarity (only when enabled
// in opts), none. The first hit wins; no lower-priority check runs after a
// match. Normalize never fails — an unmapped name comes back cleaned with
// MatchNone.
func (n *SchoolNormalizer) Normalize(name string, opts Options) (string, types.MatchType) {
	cleaned := CleanSchoolName(name)

	if _, ok := n.programSchools[cleaned]; ok {
		return cleaned, types.MatchExact
	}

	if canonical, ok := n.reverseAliases[cleaned]; ok {
		return canonical, types.MatchAlias
	}

	if opts.UseFuzzy {
		threshold := opts.FuzzyThreshold
		if threshold == 0 {
			threshold = DefaultFuzzyThreshold
		}
		if match, score, ok := n.bestFuzzyMatch(cleaned, threshold); ok {
			n.mu.Lock()
			n.fuzzyLog = append(n.fuzzyLog, types.FuzzyMatch{
				Original:  name,
				MatchedTo: match,
				Score:     score,
			})
			n.mu.Unlock()
			return match, types.MatchFuzzy
		}
	}

	return cleaned, types.MatchNone
}

// bestFuzzyMatch scores the cleaned name against every canonical school
// and returns the best candidate at or above the threshold. Candidates are
// visited in lexicographic order, so ties break deterministically to the
// lexicographically smallest name.
func (n *SchoolNormalizer) bestFuzzyMatch(cleaned string, threshold float64) (string, float64, bool) {
	var best string
	var bestScore float64

	for _, candidate := range n.canonical {
		score := SimilarityRatio(cleaned, candidate)
		if score > bestScore && score >= threshold {
			bestScore = score
			best = candidate
		}
	}

	if best == "" {
		return "", 0, false
	}
	return best, bestScore, true
}

// InProgramDatabase reports whether a cleaned name is a canonical
// program-database school.
func (n *SchoolNormalizer) InProgramDatabase(name string) bool {
	_, ok := n.programSchools[CleanSchoolName(name)]
	return ok
}

// SchoolCount returns the number of canonical program schools.
func (n *SchoolNormalizer) SchoolCount() int {
	return len(n.canonical)
}

// AliasCount returns the number of reverse alias entries.
func (n *SchoolNormalizer) AliasCount() int {
	return len(n.reverseAliases)
}

// AliasConflicts returns the collisions detected while building the
// reverse alias index.
func (n *SchoolNormalizer) AliasConflicts() []types.AliasConflict {
	return n.conflicts
}

// FuzzyMatches returns a copy of the fuzzy-match audit log.
func (n *SchoolNormalizer) FuzzyMatches() []types.FuzzyMatch {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]types.FuzzyMatch, len(n.fuzzyLog))
	copy(out, n.fuzzyLog)
	return out
}

// ClearFuzzyMatches resets the fuzzy-match audit log.
func (n *SchoolNormalizer) ClearFuzzyMatches() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fuzzyLog = nil
}
