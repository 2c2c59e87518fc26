package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
)

// Thresholds for the human-readable notes attached to a match.
const (
	strongMatchThreshold   = 0.8
	moderateMatchThreshold = 0.6
	gapThreshold           = 0.5
	maxNamedDimensions     = 3
)

// generateNotes creates a brief explanation per scored category.
func generateNotes(scores []categoryScore) []string {
	notes := make([]string, 0, len(scores))

	for _, s := range scores {
		label := string(s.category)
		best := namedDimensions(s.details, func(m float64) bool { return m >= strongMatchThreshold }, true)

		switch {
		case s.score >= strongMatchThreshold:
			if len(best) > 0 {
				notes = append(notes, fmt.Sprintf("Strong %s match (%s)", label, strings.Join(best, ", ")))
			} else {
				notes = append(notes, fmt.Sprintf("Strong %s match", label))
			}
		case s.score >= moderateMatchThreshold:
			notes = append(notes, fmt.Sprintf("Moderate %s match", label))
		default:
			notes = append(notes, fmt.Sprintf("Weak %s match", label))
		}

		gaps := namedDimensions(s.details, func(m float64) bool { return m < gapThreshold }, false)
		if len(gaps) > 0 {
			notes = append(notes, fmt.Sprintf("Gaps in %s", strings.Join(gaps, ", ")))
		}
	}

	return notes
}

// namedDimensions returns up to maxNamedDimensions titles of the details
// accepted by keep, ordered by match.
func namedDimensions(details []types.DimensionMatch, keep func(float64) bool, descending bool) []string {
	picked := make([]types.DimensionMatch, 0, len(details))
	for _, d := range details {
		if keep(d.Match) {
			picked = append(picked, d)
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		if descending {
			return picked[i].Match > picked[j].Match
		}
		return picked[i].Match < picked[j].Match
	})

	if len(picked) > maxNamedDimensions {
		picked = picked[:maxNamedDimensions]
	}
	names := make([]string, 0, len(picked))
	for _, d := range picked {
		names = append(names, d.Title)
	}
	return names
}
