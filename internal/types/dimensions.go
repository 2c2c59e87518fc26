//nolint:revive // types is a standard Go package name pattern
package types

// Wellbeing dimensions
const (
	DimensionAutonomy            Dimension = "AUTONOMY"
	DimensionMastery             Dimension = "MASTERY"
	DimensionRelatedness         Dimension = "RELATEDNESS"
	DimensionWorkLife            Dimension = "WORK_LIFE"
	DimensionPurpose             Dimension = "PURPOSE"
	DimensionPsychologicalSafety Dimension = "PSYCHOLOGICAL_SAFETY"
)

// Skills dimensions
const (
	DimensionTechnical      Dimension = "TECHNICAL"
	DimensionProblemSolving Dimension = "PROBLEM_SOLVING"
	DimensionCommunication  Dimension = "COMMUNICATION"
	DimensionAdaptability   Dimension = "ADAPTABILITY"
	DimensionCollaboration  Dimension = "COLLABORATION"
	DimensionLeadership     Dimension = "LEADERSHIP"
)

// Values dimensions
const (
	DimensionInnovation     Dimension = "INNOVATION"
	DimensionSustainability Dimension = "SUSTAINABILITY"
	DimensionDiversity      Dimension = "DIVERSITY"
	DimensionEthics         Dimension = "ETHICS"
	DimensionGrowth         Dimension = "GROWTH"
	DimensionImpact         Dimension = "IMPACT"
)

// DimensionInfo describes one dimension of the assessment catalog.
type DimensionInfo struct {
	Key         Dimension `json:"key"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theory      string    `json:"theory"`
	Questions   []string  `json:"questions"`
}

var catalog = map[Category][]DimensionInfo{
	CategoryWellbeing: {
		{
			Key:         DimensionAutonomy,
			Title:       "Autonomy",
			Description: "Degree of independence and self-direction in work",
			Theory:      "Based on Self-Determination Theory (Deci & Ryan). Measures need for independence and control over work decisions.",
			Questions: []string{
				"How much freedom do you need in deciding how to do your work?",
				"How important is it for you to set your own schedule?",
				"How much independence do you prefer in your role?",
			},
		},
		{
			Key:         DimensionMastery,
			Title:       "Growth & Mastery",
			Description: "Opportunity for skill development and advancement",
			Theory:      "Combines SDT's Competence with Growth Mindset Theory (Dweck). Reflects desire for skill development.",
			Questions: []string{
				"How important is continuous learning in your work?",
				"How much do you value opportunities to master new skills?",
				"How important is regular feedback for your growth?",
			},
		},
		{
			Key:         DimensionRelatedness,
			Title:       "Social Connection",
			Description: "Quality of workplace relationships and team dynamics",
			Theory:      "From SDT's Relatedness and Social Support Theory. Measures importance of workplace relationships.",
			Questions: []string{
				"How important is team collaboration to you?",
				"How much do you value building connections with colleagues?",
				"How important is a sense of belonging at work?",
			},
		},
		{
			Key:         DimensionWorkLife,
			Title:       "Work-Life Balance",
			Description: "Balance between work and personal life",
			Theory:      "Based on Work-Life Border Theory (Clark). Assesses preferred boundaries between work and personal life.",
			Questions: []string{
				"How important is maintaining clear work-life boundaries?",
				"How much do you value flexible working arrangements?",
				"How important is having time for personal life and recovery?",
			},
		},
		{
			Key:         DimensionPurpose,
			Title:       "Purpose & Meaning",
			Description: "Sense of meaning and impact in work",
			Theory:      "Based on Purpose-Driven Work Theory. Measures need for meaningful work aligned with personal values.",
			Questions: []string{
				"How important is it that your work feels meaningful?",
				"How much do you value making a positive impact through your work?",
				"How important is alignment with company mission?",
			},
		},
		{
			Key:         DimensionPsychologicalSafety,
			Title:       "Psychological Safety",
			Description: "Feeling safe to take risks and be authentic",
			Theory:      "Based on Edmondson's Psychological Safety Framework. Measures need for supportive, trust-based environment.",
			Questions: []string{
				"How important is feeling safe to express opinions at work?",
				"How much do you value a supportive management style?",
				"How important is having an inclusive work environment?",
			},
		},
	},
	CategorySkills: {
		{
			Key:         DimensionTechnical,
			Title:       "Technical Expertise",
			Description: "Core technical skills and domain knowledge",
			Theory:      "Based on Professional Expertise Development Theory. Measures technical competency and specialization.",
			Questions: []string{
				"How would you rate your technical expertise in your field?",
				"How comfortable are you with learning new technical tools?",
				"How experienced are you with industry-specific software/tools?",
			},
		},
		{
			Key:         DimensionProblemSolving,
			Title:       "Problem Solving",
			Description: "Analytical and creative problem-solving abilities",
			Theory:      "Based on Complex Problem Solving Theory. Assesses analytical and creative thinking capabilities.",
			Questions: []string{
				"How skilled are you at breaking down complex problems?",
				"How good are you at finding innovative solutions?",
				"How well do you handle ambiguous situations?",
			},
		},
		{
			Key:         DimensionCommunication,
			Title:       "Communication",
			Description: "Verbal, written, and interpersonal communication",
			Theory:      "Based on Communication Competence Theory. Measures effectiveness in various communication modes.",
			Questions: []string{
				"How effective are you at presenting ideas clearly?",
				"How skilled are you in written communication?",
				"How good are you at handling difficult conversations?",
			},
		},
		{
			Key:         DimensionAdaptability,
			Title:       "Adaptability",
			Description: "Ability to adapt to change and learn quickly",
			Theory:      "Based on Adaptive Performance Theory. Measures flexibility and learning agility.",
			Questions: []string{
				"How quickly do you adapt to new situations?",
				"How well do you handle unexpected changes?",
				"How fast do you learn new skills and processes?",
			},
		},
		{
			Key:         DimensionCollaboration,
			Title:       "Collaboration",
			Description: "Ability to work effectively with others",
			Theory:      "Based on Team Effectiveness Models. Assesses teamwork and cross-functional capabilities.",
			Questions: []string{
				"How effective are you at working in teams?",
				"How well do you collaborate across departments?",
				"How good are you at building consensus?",
			},
		},
		{
			Key:         DimensionLeadership,
			Title:       "Leadership",
			Description: "Ability to guide and influence others",
			Theory:      "Based on Transformational Leadership Theory. Measures leadership and influence capabilities.",
			Questions: []string{
				"How effective are you at leading projects or teams?",
				"How good are you at motivating others?",
				"How well do you handle team conflicts?",
			},
		},
	},
	CategoryValues: {
		{
			Key:         DimensionInnovation,
			Title:       "Innovation",
			Description: "Emphasis on innovation and creative thinking",
			Theory:      "Based on Innovation Culture Theory. Measures alignment with innovative work environments.",
			Questions: []string{
				"How important is working in an innovative environment?",
				"How much do you value creative problem-solving?",
				"How important is experimenting with new ideas?",
			},
		},
		{
			Key:         DimensionSustainability,
			Title:       "Sustainability",
			Description: "Commitment to environmental and social responsibility",
			Theory:      "Based on Corporate Sustainability Theory. Measures alignment with sustainable practices.",
			Questions: []string{
				"How important is environmental responsibility?",
				"How much do you value sustainable business practices?",
				"How important is social impact in business?",
			},
		},
		{
			Key:         DimensionDiversity,
			Title:       "Diversity & Inclusion",
			Description: "Commitment to diversity and inclusive practices",
			Theory:      "Based on Diversity Management Theory. Measures value placed on inclusive environments.",
			Questions: []string{
				"How important is workplace diversity to you?",
				"How much do you value inclusive practices?",
				"How important is equal opportunity?",
			},
		},
		{
			Key:         DimensionEthics,
			Title:       "Ethics & Integrity",
			Description: "Commitment to ethical practices and transparency",
			Theory:      "Based on Business Ethics Framework. Measures alignment with ethical business practices.",
			Questions: []string{
				"How important is ethical business conduct?",
				"How much do you value transparency?",
				"How important is integrity in decision-making?",
			},
		},
		{
			Key:         DimensionGrowth,
			Title:       "Growth Mindset",
			Description: "Focus on continuous improvement and learning",
			Theory:      "Based on Growth Mindset Theory. Measures alignment with learning-oriented cultures.",
			Questions: []string{
				"How important is continuous organizational learning?",
				"How much do you value professional development?",
				"How important is embracing challenges?",
			},
		},
		{
			Key:         DimensionImpact,
			Title:       "Social Impact",
			Description: "Commitment to positive societal impact",
			Theory:      "Based on Social Impact Theory. Measures alignment with socially responsible business.",
			Questions: []string{
				"How important is making a positive societal impact?",
				"How much do you value community engagement?",
				"How important is contributing to social good?",
			},
		},
	},
}

var (
	dimensionOrder    = map[Dimension]int{}
	dimensionIndex    = map[Dimension]DimensionInfo{}
	dimensionCategory = map[Dimension]Category{}
)

func init() {
	i := 0
	for _, c := range Categories {
		for j := range catalog[c] {
			catalog[c][j].Category = c
			info := catalog[c][j]
			dimensionOrder[info.Key] = i
			dimensionIndex[info.Key] = info
			dimensionCategory[info.Key] = c
			i++
		}
	}
}

// CatalogFor returns the dimensions of a category in catalog order.
// The returned slice is a copy.
func CatalogFor(c Category) []DimensionInfo {
	src := catalog[c]
	out := make([]DimensionInfo, len(src))
	copy(out, src)
	return out
}

// LookupDimension returns catalog information for a dimension.
func LookupDimension(d Dimension) (DimensionInfo, bool) {
	info, ok := dimensionIndex[d]
	return info, ok
}

// BelongsTo reports whether d is a catalog dimension of category c.
func (d Dimension) BelongsTo(c Category) bool {
	cat, ok := dimensionCategory[d]
	return ok && cat == c
}

// Title returns the catalog title of d, or the key itself when unknown.
func (d Dimension) Title() string {
	if info, ok := dimensionIndex[d]; ok {
		return info.Title
	}
	return string(d)
}
