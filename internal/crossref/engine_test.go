package crossref

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/coach-crossref/internal/normalize"
	"github.com/jonathan/coach-crossref/internal/types"
)

func testProgramDB() types.ProgramYearDatabase {
	return types.ProgramYearDatabase{
		"OREGON STATE UNIVERSITY": {"2020-2021", "2021-2022", "2022-2023"},
		"TEXAS STATE UNIVERSITY":  {"2021-2022"},
	}
}

func testEngineNormalizer() *normalize.SchoolNormalizer {
	return normalize.NewSchoolNormalizer(testProgramDB(), types.AliasTable{
		"Oregon State University": {"Oregon State"},
		"Texas State University":  {"Texas State"},
	})
}

func TestFindOverlapsForCoach_AliasMatchAcrossThreeSeasons(t *testing.T) {
	stints := []types.CareerStint{
		{School: "Oregon State", Position: "Defensive Coordinator", Years: "2020-2022"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), DefaultParams())

	require.Len(t, overlaps, 3)
	assert.Equal(t, "2020-2021", overlaps[0].AcademicYear)
	assert.Equal(t, "2021-2022", overlaps[1].AcademicYear)
	assert.Equal(t, "2022-2023", overlaps[2].AcademicYear)
	for _, overlap := range overlaps {
		assert.Equal(t, "OREGON STATE UNIVERSITY", overlap.School)
		assert.Equal(t, "Oregon State", overlap.SchoolOriginal)
		assert.Equal(t, "Defensive Coordinator", overlap.CoachPosition)
		assert.Equal(t, types.MatchAlias, overlap.MatchType)
	}
}

func TestFindOverlapsForCoach_SchoolNotInProgramDB(t *testing.T) {
	stints := []types.CareerStint{
		{School: "Georgia", Position: "Head Coach", Years: "2019-2021"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), DefaultParams())

	assert.Empty(t, overlaps)
}

func TestFindOverlapsForCoach_NFLStintSkipped(t *testing.T) {
	// Even a program-database school name inside an NFL stint must not
	// produce overlaps; the NFL filter runs before normalization.
	stints := []types.CareerStint{
		{School: "Denver Broncos", Position: "Linebackers Coach", Years: "2020-2022"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), DefaultParams())

	assert.Empty(t, overlaps)
}

func TestFindOverlapsForCoach_MissingFieldsSkipped(t *testing.T) {
	stints := []types.CareerStint{
		{School: "", Position: "Head Coach", Years: "2020-2022"},
		{School: "Oregon State", Position: "Head Coach", Years: ""},
		{School: "Oregon State", Position: "Head Coach", Years: "not a year"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), DefaultParams())

	assert.Empty(t, overlaps)
}

func TestFindOverlapsForCoach_YearWindowFilter(t *testing.T) {
	// 2019 is before the window; 2026 is at the exclusive upper bound.
	stints := []types.CareerStint{
		{School: "Oregon State", Position: "Head Coach", Years: "2019-2026"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), Params{
		YearStart: 2020,
		YearEnd:   2026,
	})

	// Window keeps 2020-2025; program years only cover seasons 2020-2022.
	require.Len(t, overlaps, 3)
	assert.Equal(t, "2020-2021", overlaps[0].AcademicYear)
	assert.Equal(t, "2022-2023", overlaps[2].AcademicYear)
}

func TestFindOverlapsForCoach_PresentUsesYearEnd(t *testing.T) {
	stints := []types.CareerStint{
		{School: "Texas State", Position: "Offensive Coordinator", Years: "2021-present"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), DefaultParams())

	require.Len(t, overlaps, 1)
	assert.Equal(t, "2021-2022", overlaps[0].AcademicYear)
}

func TestFindOverlapsForCoach_StintOrderPreserved(t *testing.T) {
	stints := []types.CareerStint{
		{School: "Texas State", Position: "OC", Years: "2021"},
		{School: "Oregon State", Position: "HC", Years: "2020-2021"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), DefaultParams())

	require.Len(t, overlaps, 3)
	assert.Equal(t, "TEXAS STATE UNIVERSITY", overlaps[0].School)
	assert.Equal(t, "OREGON STATE UNIVERSITY", overlaps[1].School)
	assert.Equal(t, "2020-2021", overlaps[1].AcademicYear)
	assert.Equal(t, "2021-2022", overlaps[2].AcademicYear)
}

func TestFindOverlapsForCoach_EmptyPositionBecomesUnknown(t *testing.T) {
	stints := []types.CareerStint{
		{School: "Oregon State", Years: "2020"},
	}

	overlaps := FindOverlapsForCoach(stints, testProgramDB(), testEngineNormalizer(), DefaultParams())

	require.Len(t, overlaps, 1)
	assert.Equal(t, "Unknown", overlaps[0].CoachPosition)
}

func TestCrossReferenceCoach_WrapsResult(t *testing.T) {
	coach := types.CoachRecord{
		Name:            "Dan Lanning",
		CurrentPosition: "Head Coach",
		CurrentSchool:   "Oregon",
		ResearchStatus:  types.ResearchFound,
		CareerHistory: []types.CareerStint{
			{School: "Oregon State", Position: "DC", Years: "2020-2022"},
		},
	}

	result := CrossReferenceCoach(coach, testProgramDB(), testEngineNormalizer(), DefaultParams())

	assert.Equal(t, "Dan Lanning", result.CoachName)
	assert.Equal(t, "Head Coach", result.CurrentPosition)
	assert.Equal(t, "Oregon", result.CurrentSchool)
	assert.Equal(t, types.ResearchFound, result.ResearchStatus)
	assert.True(t, result.HasOverlap)
	assert.Equal(t, 3, result.OverlapCount)
	assert.Len(t, result.Overlaps, 3)
}

func TestCrossReferenceCoach_NoOverlapIsValidResult(t *testing.T) {
	coach := types.CoachRecord{
		Name: "Somebody Else",
		CareerHistory: []types.CareerStint{
			{School: "Georgia", Position: "HC", Years: "2019-2021"},
		},
	}

	result := CrossReferenceCoach(coach, testProgramDB(), testEngineNormalizer(), DefaultParams())

	assert.False(t, result.HasOverlap)
	assert.Zero(t, result.OverlapCount)
	assert.Empty(t, result.Overlaps)
	assert.Equal(t, "Unknown", result.CurrentPosition)
}

func TestCrossReferenceCoach_EmptyCareerHistory(t *testing.T) {
	result := CrossReferenceCoach(types.CoachRecord{Name: "No History"}, testProgramDB(), testEngineNormalizer(), DefaultParams())

	assert.False(t, result.HasOverlap)
	assert.Zero(t, result.OverlapCount)
}

func TestCrossReferenceAll_FlattensSourcesInOrder(t *testing.T) {
	sources := []types.CoachSource{
		{Path: "a.json", Coaches: []types.CoachRecord{
			{Name: "Coach A", CareerHistory: []types.CareerStint{{School: "Oregon State", Position: "HC", Years: "2020"}}},
		}},
		{Path: "all_coaches.json", Coaches: []types.CoachRecord{
			{Name: "Coach B"},
			{Name: "Coach C", CareerHistory: []types.CareerStint{{School: "Texas State", Position: "OC", Years: "2021"}}},
		}},
	}

	results, err := CrossReferenceAll(context.Background(), sources, testProgramDB(), testEngineNormalizer(), DefaultParams())
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "Coach A", results[0].CoachName)
	assert.Equal(t, "Coach B", results[1].CoachName)
	assert.Equal(t, "Coach C", results[2].CoachName)
	assert.True(t, results[0].HasOverlap)
	assert.False(t, results[1].HasOverlap)
	assert.True(t, results[2].HasOverlap)
}

func TestCrossReferenceAll_ParallelMatchesSequential(t *testing.T) {
	var coaches []types.CoachRecord
	for i := 0; i < 20; i++ {
		coaches = append(coaches, types.CoachRecord{
			Name: "Coach",
			CareerHistory: []types.CareerStint{
				{School: "Oregon State", Position: "HC", Years: "2020-2022"},
			},
		})
	}
	sources := []types.CoachSource{{Coaches: coaches}}
	normalizer := testEngineNormalizer()

	sequential, err := CrossReferenceAll(context.Background(), sources, testProgramDB(), normalizer, DefaultParams())
	require.NoError(t, err)

	params := DefaultParams()
	params.Parallelism = 4
	parallel, err := CrossReferenceAll(context.Background(), sources, testProgramDB(), normalizer, params)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestCrossReferenceAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []types.CoachSource{{Coaches: []types.CoachRecord{{Name: "Coach"}}}}

	_, err := CrossReferenceAll(ctx, sources, testProgramDB(), testEngineNormalizer(), DefaultParams())
	assert.Error(t, err)
}
