package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoachRecord_ValidateRequiresName(t *testing.T) {
	coach := &CoachRecord{Name: "Dan Lanning"}
	assert.NoError(t, coach.Validate())

	coach = &CoachRecord{}
	assert.Error(t, coach.Validate())
}

func TestCoachRecord_JSONRoundTrip(t *testing.T) {
	raw := `{
		"name": "Dan Lanning",
		"current_position": "Head Coach",
		"current_school": "Oregon",
		"research_status": "FOUND",
		"career_history": [
			{"school": "Georgia", "position": "Defensive Coordinator", "years": "2019-2021", "source_url": "https://example.com"}
		]
	}`

	var coach CoachRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &coach))

	assert.Equal(t, ResearchFound, coach.ResearchStatus)
	require.Len(t, coach.CareerHistory, 1)
	assert.Equal(t, "Georgia", coach.CareerHistory[0].School)
	assert.Equal(t, "2019-2021", coach.CareerHistory[0].Years)
}

func TestCoachSource_Combined(t *testing.T) {
	single := &CoachSource{Coaches: []CoachRecord{{Name: "A"}}}
	assert.False(t, single.Combined())

	combined := &CoachSource{Coaches: []CoachRecord{{Name: "A"}, {Name: "B"}}}
	assert.True(t, combined.Combined())
}

func TestCrossReferenceResult_JSONFieldNames(t *testing.T) {
	result := CrossReferenceResult{
		CoachName:    "Dan Lanning",
		HasOverlap:   true,
		OverlapCount: 1,
		Overlaps: []OverlapRecord{
			{
				School:         "OREGON STATE UNIVERSITY",
				SchoolOriginal: "Oregon State",
				AcademicYear:   "2020-2021",
				CoachPosition:  "DC",
				MatchType:      MatchAlias,
			},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	// Downstream report generators key on these exact field names.
	assert.Contains(t, string(data), `"coach_name"`)
	assert.Contains(t, string(data), `"has_overlap"`)
	assert.Contains(t, string(data), `"overlap_count"`)
	assert.Contains(t, string(data), `"school_original"`)
	assert.Contains(t, string(data), `"academic_year"`)
	assert.Contains(t, string(data), `"match_type":"alias"`)
}
