// Package types provides type definitions for structured data used throughout the coach-crossref system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResearchStatus describes how complete a coach's researched career history is.
type ResearchStatus string

// Research status values recorded by the research layer.
const (
	ResearchFound     ResearchStatus = "FOUND"
	ResearchPartial   ResearchStatus = "PARTIAL"
	ResearchNotFound  ResearchStatus = "NOT_FOUND"
	ResearchAmbiguous ResearchStatus = "AMBIGUOUS"
)

// CareerStint represents one entry in a coach's career history.
// School and Years are free text as scraped or entered by a human;
// the cross-reference engine never mutates a stint.
type CareerStint struct {
	School    string `json:"school"`
	Position  string `json:"position"`
	Years     string `json:"years"`
	SourceURL string `json:"source_url,omitempty"`
}

// CoachRecord represents a researched coach and their career history.
type CoachRecord struct {
	Name            string         `json:"name" validate:"required,min=1"`
	CurrentPosition string         `json:"current_position"`
	CurrentSchool   string         `json:"current_school"`
	ResearchStatus  ResearchStatus `json:"research_status"`
	CareerHistory   []CareerStint  `json:"career_history"`
}

// Validate validates the CoachRecord using the validator.
func (c *CoachRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// CoachSource is the resolved shape of one coach file on disk: either a
// single coach record or a combined file holding several. The union is
// resolved once at load time rather than checked downstream.
type CoachSource struct {
	Path    string
	Coaches []CoachRecord
}

// Combined reports whether the source file held more than one coach.
func (s *CoachSource) Combined() bool {
	return len(s.Coaches) > 1
}
