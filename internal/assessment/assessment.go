// Package assessment turns questionnaire answers into dimension profiles.
package assessment

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
)

// ErrInvalidPayload is returned for webhook payloads that cannot be turned
// into answers.
var ErrInvalidPayload = errors.New("invalid assessment payload")

// webhookEmailField is the form field carrying the respondent's e-mail.
const webhookEmailField = "Name"

// Question is a single assessment question with its dimension context.
type Question struct {
	ID             string          `json:"id"`
	Dimension      types.Dimension `json:"dimension"`
	DimensionTitle string          `json:"dimension_title"`
	QuestionText   string          `json:"question_text"`
	Theory         string          `json:"theory"`
}

// Questions returns the questions of an assessment in catalog order. IDs have
// the form <DIMENSION>_<n> with n starting at 1.
func Questions(c types.Category) []Question {
	var out []Question
	for _, info := range types.CatalogFor(c) {
		for i, text := range info.Questions {
			out = append(out, Question{
				ID:             fmt.Sprintf("%s_%d", info.Key, i+1),
				Dimension:      info.Key,
				DimensionTitle: info.Title,
				QuestionText:   text,
				Theory:         info.Theory,
			})
		}
	}
	return out
}

// DimensionOf extracts the dimension from a question ID by stripping the
// trailing _<n> suffix, so WORK_LIFE_2 yields WORK_LIFE.
func DimensionOf(questionID string) types.Dimension {
	id := strings.ToUpper(strings.TrimSpace(questionID))
	if i := strings.LastIndex(id, "_"); i > 0 {
		if _, err := strconv.Atoi(id[i+1:]); err == nil {
			id = id[:i]
		}
	}
	return types.Dimension(id)
}

// ProcessAnswers averages the answers of each dimension into a profile.
// Answers for questions outside the category are ignored and values are
// clamped to the 0–10 scale. Dimensions without answers are left out.
func ProcessAnswers(c types.Category, answers map[string]int) types.Profile {
	sums := map[types.Dimension]float64{}
	counts := map[types.Dimension]int{}

	for id, v := range answers {
		d := DimensionOf(id)
		if !d.BelongsTo(c) {
			continue
		}
		sums[d] += clampAnswer(float64(v))
		counts[d]++
	}

	profile := types.Profile{}
	for _, info := range types.CatalogFor(c) {
		n := counts[info.Key]
		if n == 0 {
			continue
		}
		profile[info.Key] = types.Score{
			Score:       sums[info.Key] / float64(n),
			Title:       info.Title,
			Description: info.Description,
		}
	}
	return profile
}

func clampAnswer(v float64) float64 {
	return math.Max(0, math.Min(types.MaxScore, v))
}

// ParseWebhookPayload extracts the respondent e-mail and the answers from a
// form webhook payload. The e-mail travels in the Name field and answers may
// be strings or numbers.
func ParseWebhookPayload(payload map[string]any) (string, map[string]int, error) {
	rawEmail, ok := payload[webhookEmailField]
	if !ok {
		return "", nil, fmt.Errorf("%w: email is required in %s field", ErrInvalidPayload, webhookEmailField)
	}
	email, ok := rawEmail.(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", nil, fmt.Errorf("%w: email is required in %s field", ErrInvalidPayload, webhookEmailField)
	}

	answers := make(map[string]int, len(payload))
	for key, value := range payload {
		if key == webhookEmailField {
			continue
		}
		n, err := toAnswer(value)
		if err != nil {
			return "", nil, fmt.Errorf("%w: invalid numeric value for %s: %v", ErrInvalidPayload, key, err)
		}
		answers[key] = n
	}
	return strings.TrimSpace(email), answers, nil
}

func toAnswer(v any) (int, error) {
	switch val := v.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(val))
	case float64:
		return int(val), nil
	case int:
		return val, nil
	}
	return 0, fmt.Errorf("unsupported type %T", v)
}

// Status reports which assessments a user has completed.
type Status struct {
	Wellbeing bool `json:"wellbeing"`
	Skills    bool `json:"skills"`
	Values    bool `json:"values"`
}

// StatusOf returns the completion status of a user's assessments.
func StatusOf(u types.UserProfiles) Status {
	return Status{
		Wellbeing: u.Wellbeing.Completed(),
		Skills:    u.Skills.Completed(),
		Values:    u.Values.Completed(),
	}
}
