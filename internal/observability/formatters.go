// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/coach-crossref/internal/cache"
	"github.com/jonathan/coach-crossref/internal/crossref"
	"github.com/jonathan/coach-crossref/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunSummary outputs the headline numbers of a cross-reference batch.
func (p *Printer) PrintRunSummary(results []types.CrossReferenceResult, skipped []cache.SkippedFile) {
	withOverlap := 0
	totalOverlaps := 0
	for _, result := range results {
		if result.HasOverlap {
			withOverlap++
		}
		totalOverlaps += result.OverlapCount
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coaches processed:    %d\n", len(results)))
	sb.WriteString(fmt.Sprintf("Coaches with overlap: %d\n", withOverlap))
	sb.WriteString(fmt.Sprintf("Total overlaps:       %d", totalOverlaps))
	if len(skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nFiles skipped:        %d", len(skipped)))
	}

	p.printBox("CROSS-REFERENCE SUMMARY", sb.String())
}

// PrintCoachResult outputs one coach's overlaps.
func (p *Printer) PrintCoachResult(result *types.CrossReferenceResult) {
	if result == nil || !result.HasOverlap {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%s)\n", result.CoachName, result.CurrentPosition))
	sb.WriteString(fmt.Sprintf("Overlaps: %d\n\n", result.OverlapCount))

	count := min(len(result.Overlaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		overlap := result.Overlaps[i]
		sb.WriteString(fmt.Sprintf("• %s, %s\n", overlap.School, overlap.AcademicYear))
		sb.WriteString(fmt.Sprintf("  %s [%s]\n", overlap.CoachPosition, overlap.MatchType))
	}
	if len(result.Overlaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Overlaps)-maxItemsToShow))
	}

	summary := crossref.FormatOverlapsSummary(result.Overlaps)
	if summary != "" {
		sb.WriteString("\n")
		sb.WriteString(summary)
	}

	p.printBox("COACH OVERLAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFuzzyAudit outputs fuzzy matches recorded during a run for human review.
func (p *Printer) PrintFuzzyAudit(matches []types.FuzzyMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fuzzy matches to review: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("• %s\n", m.Original))
		sb.WriteString(fmt.Sprintf("  → %s (%.2f)\n", m.MatchedTo, m.Score))
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(matches)-maxItemsToShow))
	}

	p.printBox("FUZZY MATCH AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAliasConflicts outputs alias collisions detected while building the
// reverse alias index.
func (p *Printer) PrintAliasConflicts(conflicts []types.AliasConflict) {
	if len(conflicts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d alias collisions:\n\n", len(conflicts)))

	count := min(len(conflicts), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := conflicts[i]
		sb.WriteString(fmt.Sprintf("⚠ %s\n", c.Alias))
		sb.WriteString(fmt.Sprintf("  kept %s, discarded %s\n", c.Kept, c.Discarded))
	}
	if len(conflicts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(conflicts)-maxItemsToShow))
	}

	p.printBox("ALIAS CONFLICTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkippedFiles outputs cache files that could not be loaded.
func (p *Printer) PrintSkippedFiles(skipped []cache.SkippedFile) {
	if len(skipped) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skipped %d files:\n\n", len(skipped)))

	count := min(len(skipped), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := skipped[i]
		sb.WriteString(fmt.Sprintf("⚠ %s\n", s.Path))
		reason := s.Reason
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", reason))
	}
	if len(skipped) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(skipped)-maxItemsToShow))
	}

	p.printBox("SKIPPED FILES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCacheStatus outputs per-school cache freshness.
func (p *Printer) PrintCacheStatus(statuses []cache.SchoolStatus) {
	if len(statuses) == 0 {
		p.printBox("CACHE STATUS", "No schools found in cache")
		return
	}

	var sb strings.Builder
	stale := 0
	for _, s := range statuses {
		if s.Stale {
			stale++
		}
	}
	sb.WriteString(fmt.Sprintf("Schools: %d (%d stale)\n\n", len(statuses), stale))

	for _, s := range statuses {
		marker := "✓"
		if s.Stale {
			marker = "⚠"
		}
		age := "unknown age"
		if s.AgeDays >= 0 {
			age = fmt.Sprintf("%dd old", s.AgeDays)
		}
		sb.WriteString(fmt.Sprintf("%s %s: %d/%d coaches, %s\n",
			marker, s.School, s.CachedCount, s.RosterCount, age))
	}

	p.printBox("CACHE STATUS", strings.TrimSuffix(sb.String(), "\n"))
}
