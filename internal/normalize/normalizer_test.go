package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/coach-crossref/internal/types"
)

func testNormalizer() *SchoolNormalizer {
	db := types.ProgramYearDatabase{
		"OREGON STATE UNIVERSITY": {"2020-2021", "2021-2022", "2022-2023"},
		"TEXAS STATE UNIVERSITY":  {"2021-2022"},
		"OHIO STATE UNIVERSITY":   {"2020-2021"},
	}
	aliases := types.AliasTable{
		"Oregon State University": {"Oregon State", "OSU", "Oregon St."},
		"Texas State University":  {"Texas State", "Texas St."},
	}
	return NewSchoolNormalizer(db, aliases)
}

func TestCleanSchoolName_UppercasesAndCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "OREGON STATE", CleanSchoolName("  oregon   state  "))
	assert.Equal(t, "TEXAS STATE", CleanSchoolName("Texas\tState"))
	assert.Equal(t, "", CleanSchoolName("   "))
}

func TestNormalize_ExactMatch(t *testing.T) {
	n := testNormalizer()

	normalized, matchType := n.Normalize("oregon state university", Options{})

	assert.Equal(t, "OREGON STATE UNIVERSITY", normalized)
	assert.Equal(t, types.MatchExact, matchType)
}

func TestNormalize_AliasMatch(t *testing.T) {
	n := testNormalizer()

	normalized, matchType := n.Normalize("Oregon State", Options{})

	assert.Equal(t, "OREGON STATE UNIVERSITY", normalized)
	assert.Equal(t, types.MatchAlias, matchType)
}

func TestNormalize_ExactWinsOverAlias(t *testing.T) {
	// A canonical name listed as another school's alias must still resolve
	// to itself: exact match has priority over alias lookup.
	db := types.ProgramYearDatabase{
		"OREGON STATE UNIVERSITY": {"2020-2021"},
		"TEXAS STATE UNIVERSITY":  {"2021-2022"},
	}
	aliases := types.AliasTable{
		"Texas State University": {"Oregon State University"},
	}
	n := NewSchoolNormalizer(db, aliases)

	normalized, matchType := n.Normalize("Oregon State University", Options{})

	assert.Equal(t, "OREGON STATE UNIVERSITY", normalized)
	assert.Equal(t, types.MatchExact, matchType)
}

func TestNormalize_NoMatchReturnsCleanedName(t *testing.T) {
	n := testNormalizer()

	normalized, matchType := n.Normalize("  unknown   college  ", Options{})

	assert.Equal(t, "UNKNOWN COLLEGE", normalized)
	assert.Equal(t, types.MatchNone, matchType)
}

func TestNormalize_FuzzyDisabledNeverReturnsFuzzy(t *testing.T) {
	n := testNormalizer()

	// One character off from the canonical name.
	normalized, matchType := n.Normalize("Oregon State Universit", Options{})

	assert.Equal(t, types.MatchNone, matchType)
	assert.Equal(t, "OREGON STATE UNIVERSIT", normalized)
	assert.Empty(t, n.FuzzyMatches())
}

func TestNormalize_FuzzyMatchAboveThreshold(t *testing.T) {
	n := testNormalizer()

	normalized, matchType := n.Normalize("Oregon State Universit", Options{UseFuzzy: true})

	assert.Equal(t, "OREGON STATE UNIVERSITY", normalized)
	assert.Equal(t, types.MatchFuzzy, matchType)

	log := n.FuzzyMatches()
	require.Len(t, log, 1)
	assert.Equal(t, "Oregon State Universit", log[0].Original)
	assert.Equal(t, "OREGON STATE UNIVERSITY", log[0].MatchedTo)
	assert.Greater(t, log[0].Score, 0.85)
}

func TestNormalize_FuzzyBelowThresholdReturnsNone(t *testing.T) {
	n := testNormalizer()

	_, matchType := n.Normalize("Completely Different", Options{UseFuzzy: true})

	assert.Equal(t, types.MatchNone, matchType)
	assert.Empty(t, n.FuzzyMatches())
}

func TestNormalize_FuzzyThresholdZeroUsesDefault(t *testing.T) {
	n := testNormalizer()

	_, matchType := n.Normalize("Oregon Statf University", Options{UseFuzzy: true, FuzzyThreshold: 0})

	// One substitution in 23 chars is well above the 0.85 default.
	assert.Equal(t, types.MatchFuzzy, matchType)
}

func TestClearFuzzyMatches_ResetsLog(t *testing.T) {
	n := testNormalizer()

	_, _ = n.Normalize("Oregon State Universit", Options{UseFuzzy: true})
	require.NotEmpty(t, n.FuzzyMatches())

	n.ClearFuzzyMatches()

	assert.Empty(t, n.FuzzyMatches())
}

func TestNewSchoolNormalizer_RecordsAliasConflicts(t *testing.T) {
	db := types.ProgramYearDatabase{
		"ALPHA UNIVERSITY": {"2020-2021"},
		"BETA UNIVERSITY":  {"2020-2021"},
	}
	aliases := types.AliasTable{
		"Alpha University": {"State U"},
		"Beta University":  {"State U"},
	}
	n := NewSchoolNormalizer(db, aliases)

	conflicts := n.AliasConflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "STATE U", conflicts[0].Alias)
	// Canonicals are walked sorted, so the later entry wins.
	assert.Equal(t, "BETA UNIVERSITY", conflicts[0].Kept)
	assert.Equal(t, "ALPHA UNIVERSITY", conflicts[0].Discarded)

	normalized, matchType := n.Normalize("State U", Options{})
	assert.Equal(t, "BETA UNIVERSITY", normalized)
	assert.Equal(t, types.MatchAlias, matchType)
}

func TestNewSchoolNormalizer_SkipsCommentKeys(t *testing.T) {
	aliases := types.AliasTable{
		"_comment":         {"this is not a school"},
		"Alpha University": {"Alpha"},
	}
	n := NewSchoolNormalizer(types.ProgramYearDatabase{"ALPHA UNIVERSITY": {"2020-2021"}}, aliases)

	_, matchType := n.Normalize("this is not a school", Options{})
	assert.Equal(t, types.MatchNone, matchType)

	normalized, _ := n.Normalize("Alpha", Options{})
	assert.Equal(t, "ALPHA UNIVERSITY", normalized)
}

func TestSchoolCount_AndAliasCount(t *testing.T) {
	n := testNormalizer()

	assert.Equal(t, 3, n.SchoolCount())
	assert.Equal(t, 5, n.AliasCount())
}
