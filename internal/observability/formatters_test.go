package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/coach-crossref/internal/cache"
	"github.com/jonathan/coach-crossref/internal/types"
)

func TestPrintRunSummary_CountsOverlaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.CrossReferenceResult{
		{CoachName: "A", HasOverlap: true, OverlapCount: 2},
		{CoachName: "B"},
	}

	p.PrintRunSummary(results, nil)

	out := buf.String()
	assert.Contains(t, out, "CROSS-REFERENCE SUMMARY")
	assert.Contains(t, out, "Coaches processed:    2")
	assert.Contains(t, out, "Coaches with overlap: 1")
	assert.Contains(t, out, "Total overlaps:       2")
}

func TestPrintCoachResult_SkipsCoachesWithoutOverlap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCoachResult(&types.CrossReferenceResult{CoachName: "Quiet Coach"})

	assert.Empty(t, buf.String())
}

func TestPrintCoachResult_ShowsOverlapDetails(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCoachResult(&types.CrossReferenceResult{
		CoachName:       "Dan Lanning",
		CurrentPosition: "Head Coach",
		HasOverlap:      true,
		OverlapCount:    1,
		Overlaps: []types.OverlapRecord{
			{School: "OREGON STATE UNIVERSITY", AcademicYear: "2020-2021", CoachPosition: "DC", MatchType: types.MatchAlias},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Dan Lanning")
	assert.Contains(t, out, "OREGON STATE UNIVERSITY, 2020-2021")
	assert.Contains(t, out, "[alias]")
}

func TestPrintFuzzyAudit_EmptyLogPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFuzzyAudit(nil)

	assert.Empty(t, buf.String())
}

func TestPrintFuzzyAudit_ListsMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFuzzyAudit([]types.FuzzyMatch{
		{Original: "Oregon St Univ", MatchedTo: "OREGON STATE UNIVERSITY", Score: 0.91},
	})

	out := buf.String()
	assert.Contains(t, out, "FUZZY MATCH AUDIT")
	assert.Contains(t, out, "Oregon St Univ")
	assert.Contains(t, out, "0.91")
}

func TestPrintSkippedFiles_ListsPaths(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkippedFiles([]cache.SkippedFile{
		{Path: "cache/oregon_state/coaches/broken.json", Reason: "unexpected end of JSON input"},
	})

	assert.Contains(t, buf.String(), "SKIPPED FILES")
	assert.Contains(t, buf.String(), "broken.json")
}

func TestPrintCacheStatus_EmptyCache(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCacheStatus(nil)

	assert.Contains(t, buf.String(), "No schools found in cache")
}
