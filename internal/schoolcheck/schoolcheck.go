// Package schoolcheck validates target school lists against the alias table.
package schoolcheck

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/coach-crossref/internal/types"
)

// Target is one school on a recruitment target list.
type Target struct {
	Name      string `json:"name"`
	Canonical string `json:"canonical,omitempty"`
}

// TargetList is the shape of a target-schools JSON file.
type TargetList struct {
	Schools []Target `json:"schools"`
}

// Resolution records how a target school resolved through the alias table.
type Resolution struct {
	Name       string `json:"name"`
	Canonical  string `json:"canonical,omitempty"`
	ResolvedTo string `json:"resolved_to"`
}

// BuildLookup maps every name variation (the canonical name itself plus
// all its aliases, uppercased) to the canonical name.
func BuildLookup(aliases types.AliasTable) map[string]string {
	lookup := make(map[string]string)
	for canonical, variations := range aliases {
		if strings.HasPrefix(canonical, "_") { // comment fields
			continue
		}
		lookup[strings.ToUpper(canonical)] = canonical
		for _, alias := range variations {
			lookup[strings.ToUpper(alias)] = canonical
		}
	}
	return lookup
}

// LoadTargetList reads a target-schools JSON file.
func LoadTargetList(path string) (*TargetList, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target list %s: %w", path, err)
	}
	var list TargetList
	if err := json.Unmarshal(content, &list); err != nil {
		return nil, fmt.Errorf("failed to parse target list JSON: %w", err)
	}
	return &list, nil
}

// ValidateSchools checks every target school against the alias lookup.
// A target matches when either its name or its declared canonical form
// resolves; everything else is reported as unmatched so the alias table
// can be extended before a research run.
func ValidateSchools(list *TargetList, aliases types.AliasTable) (matched []Resolution, unmatched []Target) {
	lookup := BuildLookup(aliases)

	for _, school := range list.Schools {
		nameMatch := lookup[strings.ToUpper(school.Name)]
		canonicalMatch := lookup[strings.ToUpper(school.Canonical)]

		resolved := nameMatch
		if resolved == "" {
			resolved = canonicalMatch
		}

		if resolved != "" {
			matched = append(matched, Resolution{
				Name:       school.Name,
				Canonical:  school.Canonical,
				ResolvedTo: resolved,
			})
		} else {
			unmatched = append(unmatched, school)
		}
	}

	return matched, unmatched
}
