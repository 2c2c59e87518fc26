package matching

import (
	"math"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
)

// Normalize maps a raw 0–10 score onto [0,1]. Out-of-range values are
// clamped and NaN becomes 0.
func Normalize(raw float64) float64 {
	return clamp01(raw / types.MaxScore)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
