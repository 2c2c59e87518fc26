// Package insights provides ranking and summary statistics built on top of
// match results.
package insights

import (
	"math"
	"sort"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
)

// Thresholds on the 0–10 profile scale
const (
	strongScoreThreshold      = 7.0
	improvementScoreThreshold = 6.0
	maxDimensions             = 5
)

// HighMatchThreshold is the overall match at or above which an application
// counts as a high match.
const HighMatchThreshold = 0.8

// DefaultBestMatches is the number of jobs reported as best matches.
const DefaultBestMatches = 3

// Scored pairs a job with its match result.
type Scored[T any] struct {
	Item   T                 `json:"job"`
	Result types.MatchResult `json:"match_score"`
}

// TopN returns the n best items by overall match, highest first. Ties keep
// their input order. A non-positive n returns every item. The input slice is
// not modified.
func TopN[T any](items []Scored[T], n int) []Scored[T] {
	out := make([]Scored[T], len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.OverallMatch > out[j].Result.OverallMatch
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// DimensionScore is one dimension of a user profile, used by the strongest
// dimensions and improvement areas reports.
type DimensionScore struct {
	Dimension   types.Dimension `json:"dimension"`
	ProfileType string          `json:"profile_type"`
	Score       float64         `json:"score"`
	Title       string          `json:"title"`
}

// StrongestDimensions returns up to five dimensions scoring 7 or more across
// the completed profiles, highest first.
func StrongestDimensions(u types.UserProfiles) []DimensionScore {
	out := collectDimensions(u, func(s float64) bool { return s >= strongScoreThreshold })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return limit(out, maxDimensions)
}

// ImprovementAreas returns up to five dimensions scoring 6 or less across the
// completed profiles, lowest first.
func ImprovementAreas(u types.UserProfiles) []DimensionScore {
	out := collectDimensions(u, func(s float64) bool { return s <= improvementScoreThreshold })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	return limit(out, maxDimensions)
}

func collectDimensions(u types.UserProfiles, keep func(float64) bool) []DimensionScore {
	out := []DimensionScore{}
	for _, c := range u.Completed() {
		p := u.Get(c)
		for _, d := range p.Dimensions() {
			s := p[d]
			if !keep(s.Score) {
				continue
			}
			title := s.Title
			if title == "" {
				title = d.Title()
			}
			out = append(out, DimensionScore{
				Dimension:   d,
				ProfileType: c.ProfileKey(),
				Score:       s.Score,
				Title:       title,
			})
		}
	}
	return out
}

func limit(in []DimensionScore, n int) []DimensionScore {
	if len(in) > n {
		return in[:n]
	}
	return in
}

// Distribution holds the share of matches per quality tier, as percentages
// rounded to one decimal.
type Distribution struct {
	Excellent float64 `json:"excellent"`
	VeryGood  float64 `json:"very_good"`
	Good      float64 `json:"good"`
	Fair      float64 `json:"fair"`
	Poor      float64 `json:"poor"`
}

// Tier returns the quality tier name of an overall match.
func Tier(score float64) string {
	switch {
	case score >= 0.9:
		return "excellent"
	case score >= 0.8:
		return "very_good"
	case score >= 0.7:
		return "good"
	case score >= 0.6:
		return "fair"
	default:
		return "poor"
	}
}

// ScoreDistribution buckets overall match scores into quality tiers. Empty
// input yields all zeros.
func ScoreDistribution(scores []float64) Distribution {
	var d Distribution
	if len(scores) == 0 {
		return d
	}

	counts := map[string]int{}
	for _, s := range scores {
		counts[Tier(s)]++
	}

	total := float64(len(scores))
	pct := func(tier string) float64 {
		return roundTo(float64(counts[tier])/total*100, 1)
	}
	d.Excellent = pct("excellent")
	d.VeryGood = pct("very_good")
	d.Good = pct("good")
	d.Fair = pct("fair")
	d.Poor = pct("poor")
	return d
}

// ApplicationStats summarizes the applications of one job.
type ApplicationStats struct {
	TotalApplications int     `json:"total_applications"`
	AverageMatch      float64 `json:"average_match"`
	HighMatchCount    int     `json:"high_match_count"`
}

// Stats computes application statistics from overall match scores.
func Stats(scores []float64) ApplicationStats {
	if len(scores) == 0 {
		return ApplicationStats{}
	}

	sum := 0.0
	high := 0
	for _, s := range scores {
		sum += s
		if s >= HighMatchThreshold {
			high++
		}
	}
	return ApplicationStats{
		TotalApplications: len(scores),
		AverageMatch:      sum / float64(len(scores)),
		HighMatchCount:    high,
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Summary is the matching insights report of one user.
type Summary[T any] struct {
	BestMatches          []Scored[T]      `json:"best_matches"`
	CompletedAssessments []string         `json:"completed_assessments"`
	StrongestDimensions  []DimensionScore `json:"strongest_dimensions"`
	ImprovementAreas     []DimensionScore `json:"improvement_areas"`
	Distribution         Distribution     `json:"match_distribution"`
}

// Summarize builds the insights report for a user from the scored jobs.
func Summarize[T any](u types.UserProfiles, scored []Scored[T], best int) Summary[T] {
	scores := make([]float64, 0, len(scored))
	for _, s := range scored {
		scores = append(scores, s.Result.OverallMatch)
	}

	completed := []string{}
	for _, c := range u.Completed() {
		completed = append(completed, c.ProfileKey())
	}

	if best <= 0 {
		best = DefaultBestMatches
	}
	return Summary[T]{
		BestMatches:          TopN(scored, best),
		CompletedAssessments: completed,
		StrongestDimensions:  StrongestDimensions(u),
		ImprovementAreas:     ImprovementAreas(u),
		Distribution:         ScoreDistribution(scores),
	}
}
