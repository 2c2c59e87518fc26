//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// MaxScore is the upper bound of the assessment scale.
const MaxScore = 10.0

// rawRequirement lists the leaf shapes a requirement may arrive in.
type rawRequirement struct {
	Score      *float64 `mapstructure:"score"`
	Minimum    *float64 `mapstructure:"minimum"`
	Importance *float64 `mapstructure:"importance"`
}

// DecodeRequirement converts a raw requirement leaf into a Requirement.
// Accepted shapes are a bare number, {"score": n}, {"minimum": n} and
// {"importance": n}; when several keys are present score wins over minimum,
// and minimum over importance.
func DecodeRequirement(raw any) (Requirement, error) {
	if n, ok := toFloat(raw); ok {
		return Requirement{Target: n}, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return Requirement{}, fmt.Errorf("unsupported requirement value %T", raw)
	}

	var rr rawRequirement
	if err := decodeWeak(m, &rr); err != nil {
		return Requirement{}, fmt.Errorf("failed to decode requirement: %w", err)
	}

	switch {
	case rr.Score != nil:
		return Requirement{Target: *rr.Score}, nil
	case rr.Minimum != nil:
		return Requirement{Target: *rr.Minimum}, nil
	case rr.Importance != nil:
		return Requirement{Target: *rr.Importance}, nil
	}
	return Requirement{}, fmt.Errorf("requirement has none of score, minimum, importance")
}

// DecodeScore converts a raw profile leaf, either a bare number or an object
// with a score key, into a Score.
func DecodeScore(raw any) (Score, error) {
	if n, ok := toFloat(raw); ok {
		return Score{Score: n}, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return Score{}, fmt.Errorf("unsupported score value %T", raw)
	}
	if _, has := m["score"]; !has {
		return Score{}, fmt.Errorf("score record is missing the score key")
	}

	var s Score
	if err := decodeWeak(m, &s); err != nil {
		return Score{}, fmt.Errorf("failed to decode score: %w", err)
	}
	return s, nil
}

// DecodeProfile converts a loosely typed map, as stored in JSON columns or
// posted by form webhooks, into a Profile. Keys are upper-cased.
func DecodeProfile(raw map[string]any) (Profile, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	p := make(Profile, len(raw))
	for k, v := range raw {
		s, err := DecodeScore(v)
		if err != nil {
			return nil, fmt.Errorf("dimension %s: %w", k, err)
		}
		p[normalizeKey(k)] = s
	}
	return p, nil
}

// DecodeRequirements converts a loosely typed map into Requirements.
func DecodeRequirements(raw map[string]any) (Requirements, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	r := make(Requirements, len(raw))
	for k, v := range raw {
		req, err := DecodeRequirement(v)
		if err != nil {
			return nil, fmt.Errorf("dimension %s: %w", k, err)
		}
		r[normalizeKey(k)] = req
	}
	return r, nil
}

// UnmarshalJSON accepts every requirement leaf shape DecodeRequirement does.
func (r *Requirement) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	req, err := DecodeRequirement(raw)
	if err != nil {
		return err
	}
	*r = req
	return nil
}

// UnmarshalJSON accepts a bare number as well as a score record.
func (s *Score) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	score, err := DecodeScore(raw)
	if err != nil {
		return err
	}
	*s = score
	return nil
}

// ValidateProfile checks that every dimension belongs to the category catalog
// and that every score lies on the 0–10 scale.
func ValidateProfile(c Category, p Profile) error {
	for _, d := range p.Dimensions() {
		if !d.BelongsTo(c) {
			return fmt.Errorf("dimension %s is not part of the %s assessment", d, c)
		}
		if err := checkRange(p[d].Score); err != nil {
			return fmt.Errorf("dimension %s: %w", d, err)
		}
	}
	return nil
}

// ValidateRequirements checks requirements the same way ValidateProfile does.
func ValidateRequirements(c Category, r Requirements) error {
	dims := make([]Dimension, 0, len(r))
	for d := range r {
		dims = append(dims, d)
	}
	sortDimensions(dims)
	for _, d := range dims {
		if !d.BelongsTo(c) {
			return fmt.Errorf("dimension %s is not part of the %s assessment", d, c)
		}
		if err := checkRange(r[d].Target); err != nil {
			return fmt.Errorf("dimension %s: %w", d, err)
		}
	}
	return nil
}

func checkRange(v float64) error {
	if math.IsNaN(v) || v < 0 || v > MaxScore {
		return fmt.Errorf("score %v is outside 0-%v", v, MaxScore)
	}
	return nil
}

func decodeWeak(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func normalizeKey(k string) Dimension {
	return Dimension(strings.ToUpper(strings.TrimSpace(k)))
}
