package normalize

import (
	"github.com/agnivade/levenshtein"
)

// SimilarityRatio computes a normalized edit-distance similarity between
// two strings: 1.0 for identical strings, 0.0 for no common length at all.
// The ratio is symmetric.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
