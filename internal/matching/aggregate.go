package matching

import (
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
)

// categoryScore is the aggregated result of one category.
type categoryScore struct {
	category types.Category
	score    float64
	details  []types.DimensionMatch
}

// scoreCategory averages the dimension matches of one category. It reports
// false when the category must be skipped: the user has not completed it, or
// there is neither a job requirement nor a company profile to compare with.
func (e *Engine) scoreCategory(c types.Category, user types.Profile, reqs types.Requirements, company types.Profile) (categoryScore, bool) {
	if !user.Completed() {
		return categoryScore{}, false
	}
	if len(reqs) == 0 && len(company) == 0 {
		return categoryScore{}, false
	}

	dims := user.Dimensions()
	details := make([]types.DimensionMatch, 0, len(dims))
	total := 0.0

	// Only dimensions the user has are evaluated; job-only keys are ignored.
	for _, d := range dims {
		u := Normalize(user[d].Score)
		var m float64
		if c == types.CategorySkills {
			m = compareSkill(u, jobTarget(reqs, d))
		} else {
			m = e.compareDimension(u, jobTarget(reqs, d), companyTarget(company, d))
		}
		total += m
		details = append(details, types.DimensionMatch{
			Dimension: d,
			Title:     d.Title(),
			Match:     m,
		})
	}

	score := 0.0
	if len(details) > 0 {
		score = total / float64(len(details))
	}
	return categoryScore{category: c, score: score, details: details}, true
}

// combine blends category scores into the overall match, renormalized by the
// weights of the categories actually present.
func (e *Engine) combine(scores []categoryScore) float64 {
	weightedSum := 0.0
	totalWeight := 0.0
	for _, s := range scores {
		w := e.cfg.Weight(s.category)
		weightedSum += s.score * w
		totalWeight += w
	}
	if totalWeight <= 0 {
		return 0
	}
	return clamp01(weightedSum / totalWeight)
}
