package observability

import (
	"bytes"
	"testing"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		OverallMatch:      0.92,
		MatchedDimensions: []string{"skills_profile"},
		Details: map[types.Category][]types.DimensionMatch{
			types.CategorySkills: {
				{Dimension: types.DimensionTechnical, Title: "Technical Skills", Match: 0.9},
			},
		},
		Insights: []string{"Strong skills match"},
	}
	result.SetCategoryMatch(types.CategorySkills, 0.92)

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "92%")
	assert.Contains(t, output, "excellent")
	assert.Contains(t, output, "Technical Skills")
	assert.Contains(t, output, "Strong skills match")
	assert.NotContains(t, output, "wellbeing")
}

func TestPrintMatchResult_TruncatesDimensions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var details []types.DimensionMatch
	for _, d := range []types.Dimension{"A", "B", "C", "D", "E", "F", "G"} {
		details = append(details, types.DimensionMatch{Dimension: d, Match: 0.5})
	}
	p.PrintMatchResult(&types.MatchResult{
		OverallMatch: 0.5,
		Details:      map[types.Category][]types.DimensionMatch{types.CategoryValues: details},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintUserDimensions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUserDimensions(types.UserProfiles{
		Skills: types.Profile{
			types.DimensionTechnical: {Score: 9, Title: "Technical Skills"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "USER PROFILE")
	assert.Contains(t, output, "Technical Skills")
	assert.Contains(t, output, "(none)")
}

func TestPrintUserDimensions_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintUserDimensions(types.UserProfiles{})
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "this line is definitely going to be much longer than the width of the box")

	assert.Contains(t, buf.String(), "...")
}
