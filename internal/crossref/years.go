// Package crossref deterministically cross-references coach career histories against the NMDP GITG program database.
package crossref

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	presentRangeRe = regexp.MustCompile(`^(\d{4})\s*-\s*present`)
	yearRangeRe    = regexp.MustCompile(`^(\d{4})\s*-\s*(\d{4})`)
	singleYearRe   = regexp.MustCompile(`^(\d{4})`)
)

// ParseYearRange parses a free-text year range into the calendar years of
// the football seasons it covers, ascending.
//
// "2020-2022" means the coach was there for the 2020, 2021, AND 2022
// seasons — the end year is the last season coached, not a departure year,
// so both endpoints are inclusive. "YYYY-present" runs up to but not
// including currentYear, because the current season's academic year is
// still open. A single "YYYY" is one season. Anything unparseable returns
// nil; this function never fails.
//
// currentYear <= 0 means "use the real current calendar year".
func ParseYearRange(text string, currentYear int) []int {
	if currentYear <= 0 {
		currentYear = time.Now().Year()
	}

	text = strings.ToLower(strings.TrimSpace(text))

	if strings.Contains(text, "present") {
		m := presentRangeRe.FindStringSubmatch(text)
		if m == nil {
			return nil
		}
		start := atoiYear(m[1])
		return yearSpan(start, currentYear-1)
	}

	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		return yearSpan(atoiYear(m[1]), atoiYear(m[2]))
	}

	if m := singleYearRe.FindStringSubmatch(text); m != nil {
		return []int{atoiYear(m[1])}
	}

	return nil
}

// YearToAcademicYear converts a calendar season year to its academic-year
// label: the 2020 season is the 2020-2021 academic year (Fall 2020 through
// Spring 2021).
func YearToAcademicYear(year int) string {
	return fmt.Sprintf("%d-%d", year, year+1)
}

// yearSpan returns [start..end] inclusive, or nil when the span is empty.
func yearSpan(start, end int) []int {
	if start > end {
		return nil
	}
	years := make([]int, 0, end-start+1)
	for y := start; y <= end; y++ {
		years = append(years, y)
	}
	return years
}

// atoiYear converts a regex-captured \d{4} group; the pattern guarantees
// it parses.
func atoiYear(s string) int {
	year := 0
	for _, c := range s {
		year = year*10 + int(c-'0')
	}
	return year
}
