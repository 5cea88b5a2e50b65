package crossref

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/coach-crossref/internal/types"
)

// FormatOverlapsSummary renders overlaps as a compact human-readable
// string, grouped by school: "TEXAS STATE (2021-2022); OHIO STATE
// (2020-2021, 2021-2022)". Schools appear in first-overlap order; years
// within a school are sorted.
func FormatOverlapsSummary(overlaps []types.OverlapRecord) string {
	if len(overlaps) == 0 {
		return ""
	}

	var order []string
	bySchool := make(map[string][]string)
	for _, overlap := range overlaps {
		if _, ok := bySchool[overlap.School]; !ok {
			order = append(order, overlap.School)
		}
		bySchool[overlap.School] = append(bySchool[overlap.School], overlap.AcademicYear)
	}

	parts := make([]string, 0, len(order))
	for _, school := range order {
		years := bySchool[school]
		sort.Strings(years)
		parts = append(parts, fmt.Sprintf("%s (%s)", school, strings.Join(years, ", ")))
	}

	return strings.Join(parts, "; ")
}
