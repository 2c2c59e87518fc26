package insights

import (
	"testing"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(id string, overall float64) Scored[string] {
	return Scored[string]{Item: id, Result: types.MatchResult{OverallMatch: overall}}
}

func ids(items []Scored[string]) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Item)
	}
	return out
}

func TestTopN_SortsDescending(t *testing.T) {
	items := []Scored[string]{scored("a", 0.5), scored("b", 0.9), scored("c", 0.7)}

	top := TopN(items, 2)

	assert.Equal(t, []string{"b", "c"}, ids(top))
	// input untouched
	assert.Equal(t, []string{"a", "b", "c"}, ids(items))
}

func TestTopN_StableOnTies(t *testing.T) {
	items := []Scored[string]{scored("first", 0.8), scored("low", 0.1), scored("second", 0.8), scored("third", 0.8)}

	assert.Equal(t, []string{"first", "second", "third", "low"}, ids(TopN(items, 0)))
}

func TestTopN_NonPositiveReturnsAll(t *testing.T) {
	items := []Scored[string]{scored("a", 0.1), scored("b", 0.2)}

	assert.Len(t, TopN(items, 0), 2)
	assert.Len(t, TopN(items, -1), 2)
	assert.Len(t, TopN(items, 10), 2)
	assert.Empty(t, TopN[string](nil, 3))
}

func TestTier(t *testing.T) {
	tests := []struct {
		score float64
		tier  string
	}{
		{1.0, "excellent"},
		{0.9, "excellent"},
		{0.89, "very_good"},
		{0.8, "very_good"},
		{0.7, "good"},
		{0.6, "fair"},
		{0.59, "poor"},
		{0, "poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, Tier(tt.score), "score %v", tt.score)
	}
}

func TestScoreDistribution(t *testing.T) {
	d := ScoreDistribution([]float64{0.95, 0.85, 0.75, 0.65, 0.1, 0.2})

	assert.Equal(t, 16.7, d.Excellent)
	assert.Equal(t, 16.7, d.VeryGood)
	assert.Equal(t, 16.7, d.Good)
	assert.Equal(t, 16.7, d.Fair)
	assert.Equal(t, 33.3, d.Poor)
}

func TestScoreDistribution_Empty(t *testing.T) {
	assert.Equal(t, Distribution{}, ScoreDistribution(nil))
}

func TestStats(t *testing.T) {
	s := Stats([]float64{0.9, 0.8, 0.4})

	assert.Equal(t, 3, s.TotalApplications)
	assert.InDelta(t, 0.7, s.AverageMatch, 1e-9)
	assert.Equal(t, 2, s.HighMatchCount)

	assert.Equal(t, ApplicationStats{}, Stats(nil))
}

func testUser() types.UserProfiles {
	return types.UserProfiles{
		Wellbeing: types.Profile{
			types.DimensionAutonomy: {Score: 9, Title: "Autonomy"},
			types.DimensionMastery:  {Score: 7},
			types.DimensionPurpose:  {Score: 6.5},
			types.DimensionWorkLife: {Score: 6},
		},
		Skills: types.Profile{
			types.DimensionTechnical:      {Score: 10},
			types.DimensionCommunication:  {Score: 3},
			types.DimensionLeadership:     {Score: 8},
			types.DimensionAdaptability:   {Score: 7.5},
			types.DimensionCollaboration:  {Score: 2},
			types.DimensionProblemSolving: {Score: 5},
		},
	}
}

func TestStrongestDimensions(t *testing.T) {
	strong := StrongestDimensions(testUser())

	require.Len(t, strong, 5)
	assert.Equal(t, types.DimensionTechnical, strong[0].Dimension)
	assert.Equal(t, "skills_profile", strong[0].ProfileType)
	assert.Equal(t, types.DimensionAutonomy, strong[1].Dimension)
	assert.Equal(t, types.DimensionLeadership, strong[2].Dimension)
	assert.Equal(t, types.DimensionAdaptability, strong[3].Dimension)
	// 7 is inclusive and the catalog title fills in a missing one
	assert.Equal(t, types.DimensionMastery, strong[4].Dimension)
	assert.Equal(t, "Growth & Mastery", strong[4].Title)
}

func TestImprovementAreas(t *testing.T) {
	weak := ImprovementAreas(testUser())

	require.Len(t, weak, 4)
	assert.Equal(t, types.DimensionCollaboration, weak[0].Dimension)
	assert.Equal(t, types.DimensionCommunication, weak[1].Dimension)
	assert.Equal(t, types.DimensionProblemSolving, weak[2].Dimension)
	assert.Equal(t, types.DimensionWorkLife, weak[3].Dimension)
	assert.Equal(t, "wellbeing_profile", weak[3].ProfileType)
}

func TestImprovementAreas_NoProfiles(t *testing.T) {
	assert.Empty(t, ImprovementAreas(types.UserProfiles{}))
	assert.Empty(t, StrongestDimensions(types.UserProfiles{}))
}

func TestSummarize(t *testing.T) {
	items := []Scored[string]{scored("a", 0.95), scored("b", 0.5), scored("c", 0.85), scored("d", 0.72)}

	s := Summarize(testUser(), items, 0)

	assert.Equal(t, []string{"a", "c", "d"}, ids(s.BestMatches))
	assert.Equal(t, []string{"wellbeing_profile", "skills_profile"}, s.CompletedAssessments)
	assert.Equal(t, 25.0, s.Distribution.Excellent)
	assert.Equal(t, 25.0, s.Distribution.Poor)
	assert.NotEmpty(t, s.StrongestDimensions)
}
