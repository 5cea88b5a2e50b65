package crossref

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/coach-crossref/internal/normalize"
	"github.com/jonathan/coach-crossref/internal/types"
)

// Default cross-reference window; program records before 2020 are out of
// the campaign's scope and the 2026 season is still open.
const (
	DefaultYearStart = 2020
	DefaultYearEnd   = 2026
)

// Params holds the tunables of one cross-reference pass.
type Params struct {
	YearStart   int
	YearEnd     int
	Fuzzy       normalize.Options
	Parallelism int // coaches evaluated concurrently in a batch; <=1 means sequential
}

// DefaultParams returns the standard cross-reference window with fuzzy
// matching disabled.
func DefaultParams() Params {
	return Params{
		YearStart: DefaultYearStart,
		YearEnd:   DefaultYearEnd,
	}
}

func (p Params) withDefaults() Params {
	if p.YearStart == 0 {
		p.YearStart = DefaultYearStart
	}
	if p.YearEnd == 0 {
		p.YearEnd = DefaultYearEnd
	}
	return p
}

// FindOverlapsForCoach walks a coach's career stints in order and returns
// one OverlapRecord per academic year in which the coach was at a school
// while the program ran there. Malformed stints contribute nothing; the
// pass is total over the input and never fails.
func FindOverlapsForCoach(
	stints []types.CareerStint,
	db types.ProgramYearDatabase,
	normalizer *normalize.SchoolNormalizer,
	params Params,
) []types.OverlapRecord {
	params = params.withDefaults()

	var overlaps []types.OverlapRecord

	for _, stint := range stints {
		if stint.School == "" || stint.Years == "" {
			continue
		}

		// Pro stints can never overlap; skipping them keeps NFL noise out
		// of the "none" match bucket.
		if normalize.IsNFLTeam(stint.School) {
			continue
		}

		canonical, matchType := normalizer.Normalize(stint.School, params.Fuzzy)

		programYears, ok := db[canonical]
		if !ok {
			continue
		}

		yearSet := make(map[string]struct{}, len(programYears))
		for _, ay := range programYears {
			yearSet[ay] = struct{}{}
		}

		position := stint.Position
		if position == "" {
			position = "Unknown"
		}

		for _, year := range ParseYearRange(stint.Years, params.YearEnd) {
			if year < params.YearStart || year >= params.YearEnd {
				continue
			}
			academicYear := YearToAcademicYear(year)
			if _, ok := yearSet[academicYear]; !ok {
				continue
			}
			overlaps = append(overlaps, types.OverlapRecord{
				School:         canonical,
				SchoolOriginal: stint.School,
				AcademicYear:   academicYear,
				CoachPosition:  position,
				MatchType:      matchType,
			})
		}
	}

	return overlaps
}

// CrossReferenceCoach cross-references one coach against the program
// database and wraps the overlaps with the coach's identity fields.
func CrossReferenceCoach(
	coach types.CoachRecord,
	db types.ProgramYearDatabase,
	normalizer *normalize.SchoolNormalizer,
	params Params,
) types.CrossReferenceResult {
	overlaps := FindOverlapsForCoach(coach.CareerHistory, db, normalizer, params)

	return types.CrossReferenceResult{
		CoachName:       orUnknown(coach.Name),
		CurrentPosition: orUnknown(coach.CurrentPosition),
		CurrentSchool:   orUnknown(coach.CurrentSchool),
		ResearchStatus:  coach.ResearchStatus,
		CareerHistory:   coach.CareerHistory,
		HasOverlap:      len(overlaps) > 0,
		Overlaps:        overlaps,
		OverlapCount:    len(overlaps),
	}
}

// CrossReferenceAll cross-references every coach from the given sources.
// Result order matches source order (coaches within a combined file stay
// in file order). With Parallelism > 1 coaches are evaluated concurrently;
// the normalizer's audit log is safe to share.
func CrossReferenceAll(
	ctx context.Context,
	sources []types.CoachSource,
	db types.ProgramYearDatabase,
	normalizer *normalize.SchoolNormalizer,
	params Params,
) ([]types.CrossReferenceResult, error) {
	var coaches []types.CoachRecord
	for _, source := range sources {
		coaches = append(coaches, source.Coaches...)
	}

	results := make([]types.CrossReferenceResult, len(coaches))

	if params.Parallelism <= 1 {
		for i, coach := range coaches {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("cross-reference canceled: %w", err)
			}
			results[i] = CrossReferenceCoach(coach, db, normalizer, params)
		}
		return results, nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(params.Parallelism)
	for i, coach := range coaches {
		i, coach := i, coach
		g.Go(func() error {
			results[i] = CrossReferenceCoach(coach, db, normalizer, params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cross-reference batch failed: %w", err)
	}

	return results, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
