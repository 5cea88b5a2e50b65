package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/coach-crossref/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoachSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "coach.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestCoachSchema_AcceptsSingleCoach(t *testing.T) {
	doc := `{
		"name": "Dan Lanning",
		"research_status": "FOUND",
		"career_history": [{"school": "Georgia", "years": "2019-2021"}]
	}`

	err := schemas.ValidateJSONBytes("coach.schema.json", []byte(doc))
	assert.NoError(t, err)
}

func TestCoachSchema_AcceptsCombinedArray(t *testing.T) {
	doc := `[{"name": "Coach One"}, {"name": "Coach Two", "research_status": "PARTIAL"}]`

	err := schemas.ValidateJSONBytes("coach.schema.json", []byte(doc))
	assert.NoError(t, err)
}

func TestCoachSchema_RejectsMissingName(t *testing.T) {
	err := schemas.ValidateJSONBytes("coach.schema.json", []byte(`{"current_school": "Oregon"}`))
	assert.Error(t, err)
}

func TestCoachSchema_RejectsUnknownResearchStatus(t *testing.T) {
	err := schemas.ValidateJSONBytes("coach.schema.json", []byte(`{"name": "X", "research_status": "MAYBE"}`))
	assert.Error(t, err)
}
