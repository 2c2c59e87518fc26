// Package types provides type definitions for the profiles, requirements and
// match results exchanged between the matching engine and the application.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Category is one of the three assessment kinds.
type Category string

// Assessment categories
const (
	CategoryWellbeing Category = "wellbeing"
	CategorySkills    Category = "skills"
	CategoryValues    Category = "values"
)

// Categories lists every category in reporting order.
var Categories = []Category{CategoryWellbeing, CategorySkills, CategoryValues}

// ParseCategory converts a string such as "skills" into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown assessment type: %q", s)
	}
	return c, nil
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWellbeing, CategorySkills, CategoryValues:
		return true
	}
	return false
}

// ProfileKey returns the key used for the category in profile collections,
// e.g. "skills_profile".
func (c Category) ProfileKey() string {
	return string(c) + "_profile"
}

// Dimension is a single named facet within a category, e.g. AUTONOMY.
type Dimension string

// Score is a dimension score on the 0–10 scale. Title and Description are
// informational and ignored by the engine.
type Score struct {
	Score       float64 `json:"score" mapstructure:"score"`
	Title       string  `json:"title,omitempty" mapstructure:"title"`
	Description string  `json:"description,omitempty" mapstructure:"description"`
}

// Profile maps dimensions to scores for one category of one actor.
type Profile map[Dimension]Score

// Completed reports whether the profile holds any data.
func (p Profile) Completed() bool {
	return len(p) > 0
}

// Dimensions returns the profile's dimensions in catalog order, with unknown
// dimensions appended alphabetically.
func (p Profile) Dimensions() []Dimension {
	dims := make([]Dimension, 0, len(p))
	for d := range p {
		dims = append(dims, d)
	}
	sortDimensions(dims)
	return dims
}

// Requirement is a job-side target on the 0–10 scale.
type Requirement struct {
	Target float64 `json:"score"`
}

// Requirements maps dimensions to job targets for one category.
type Requirements map[Dimension]Requirement

// UserProfiles holds a candidate's completed assessments.
type UserProfiles struct {
	Wellbeing Profile `json:"wellbeing_profile,omitempty"`
	Skills    Profile `json:"skills_profile,omitempty"`
	Values    Profile `json:"values_profile,omitempty"`
}

// Get returns the profile for a category.
func (u UserProfiles) Get(c Category) Profile {
	switch c {
	case CategoryWellbeing:
		return u.Wellbeing
	case CategorySkills:
		return u.Skills
	case CategoryValues:
		return u.Values
	}
	return nil
}

// Set replaces the profile for a category.
func (u *UserProfiles) Set(c Category, p Profile) {
	switch c {
	case CategoryWellbeing:
		u.Wellbeing = p
	case CategorySkills:
		u.Skills = p
	case CategoryValues:
		u.Values = p
	}
}

// Completed returns the categories with a completed profile, in reporting order.
func (u UserProfiles) Completed() []Category {
	var out []Category
	for _, c := range Categories {
		if u.Get(c).Completed() {
			out = append(out, c)
		}
	}
	return out
}

// Any reports whether at least one assessment is completed.
func (u UserProfiles) Any() bool {
	return len(u.Completed()) > 0
}

// JobRequirements holds the requirement maps of a job posting.
type JobRequirements struct {
	Skills    Requirements `json:"skills_requirements,omitempty"`
	Wellbeing Requirements `json:"wellbeing_preferences,omitempty"`
	Values    Requirements `json:"values_alignment,omitempty"`
}

// Get returns the requirements for a category.
func (j JobRequirements) Get(c Category) Requirements {
	switch c {
	case CategoryWellbeing:
		return j.Wellbeing
	case CategorySkills:
		return j.Skills
	case CategoryValues:
		return j.Values
	}
	return nil
}

// Only returns a copy keeping just the given categories.
func (j JobRequirements) Only(cats []Category) JobRequirements {
	var out JobRequirements
	for _, c := range cats {
		switch c {
		case CategoryWellbeing:
			out.Wellbeing = j.Wellbeing
		case CategorySkills:
			out.Skills = j.Skills
		case CategoryValues:
			out.Values = j.Values
		}
	}
	return out
}

// CompanyProfiles holds a company's wellbeing and values profiles. Skills has
// no company-side analogue.
type CompanyProfiles struct {
	Wellbeing Profile `json:"wellbeing_profile,omitempty"`
	Values    Profile `json:"values_profile,omitempty"`
}

// Get returns the company profile for a category, nil for skills.
func (cp CompanyProfiles) Get(c Category) Profile {
	switch c {
	case CategoryWellbeing:
		return cp.Wellbeing
	case CategoryValues:
		return cp.Values
	}
	return nil
}

// Only returns a copy keeping just the given categories.
func (cp CompanyProfiles) Only(cats []Category) CompanyProfiles {
	var out CompanyProfiles
	for _, c := range cats {
		switch c {
		case CategoryWellbeing:
			out.Wellbeing = cp.Wellbeing
		case CategoryValues:
			out.Values = cp.Values
		}
	}
	return out
}

// DimensionMatch is the comparator result for one dimension.
type DimensionMatch struct {
	Dimension Dimension `json:"dimension"`
	Title     string    `json:"title,omitempty"`
	Match     float64   `json:"match"`
}

// MatchResult is the engine output for one (user, job, company) triple.
// Category fields are nil when the category was not computed.
type MatchResult struct {
	OverallMatch      float64                       `json:"overall_match"`
	SkillsMatch       *float64                      `json:"skills_match,omitempty"`
	WellbeingMatch    *float64                      `json:"wellbeing_match,omitempty"`
	ValuesMatch       *float64                      `json:"values_match,omitempty"`
	MatchedDimensions []string                      `json:"matched_dimensions"`
	Details           map[Category][]DimensionMatch `json:"details,omitempty"`
	Insights          []string                      `json:"insights,omitempty"`
}

// CategoryMatch returns the score of a category and whether it was computed.
func (r MatchResult) CategoryMatch(c Category) (float64, bool) {
	var v *float64
	switch c {
	case CategoryWellbeing:
		v = r.WellbeingMatch
	case CategorySkills:
		v = r.SkillsMatch
	case CategoryValues:
		v = r.ValuesMatch
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// SetCategoryMatch records the score of a computed category.
func (r *MatchResult) SetCategoryMatch(c Category, score float64) {
	s := score
	switch c {
	case CategoryWellbeing:
		r.WellbeingMatch = &s
	case CategorySkills:
		r.SkillsMatch = &s
	case CategoryValues:
		r.ValuesMatch = &s
	}
}

func sortDimensions(dims []Dimension) {
	sort.SliceStable(dims, func(i, j int) bool {
		oi, iok := dimensionOrder[dims[i]]
		oj, jok := dimensionOrder[dims[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return dims[i] < dims[j]
		}
	})
}
