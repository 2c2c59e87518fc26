package matching

import (
	"fmt"
	"math"
	"os"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"gopkg.in/yaml.v3"
)

// Default weights and blend factors
const (
	defaultSkillsWeight     = 0.4
	defaultWellbeingWeight  = 0.3
	defaultValuesWeight     = 0.3
	defaultJobShare         = 0.6
	defaultCompanyShare     = 0.4
	defaultOvershootPenalty = 0.5
)

// Weights holds the per-category weights used by the overall combiner.
type Weights struct {
	Skills    float64 `yaml:"skills"`
	Wellbeing float64 `yaml:"wellbeing"`
	Values    float64 `yaml:"values"`
}

// Config is the engine configuration. It is copied into the Engine on
// construction and never mutated afterwards.
type Config struct {
	Weights Weights `yaml:"weights"`
	// JobShare and CompanyShare blend the job and company comparisons when
	// both targets exist for a dimension.
	JobShare     float64 `yaml:"job_share"`
	CompanyShare float64 `yaml:"company_share"`
	// OvershootPenalty scales the penalty for exceeding a target.
	OvershootPenalty float64 `yaml:"overshoot_penalty"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skills:    defaultSkillsWeight,
			Wellbeing: defaultWellbeingWeight,
			Values:    defaultValuesWeight,
		},
		JobShare:         defaultJobShare,
		CompanyShare:     defaultCompanyShare,
		OvershootPenalty: defaultOvershootPenalty,
	}
}

// Weight returns the weight of a category.
func (c Config) Weight(cat types.Category) float64 {
	switch cat {
	case types.CategorySkills:
		return c.Weights.Skills
	case types.CategoryWellbeing:
		return c.Weights.Wellbeing
	case types.CategoryValues:
		return c.Weights.Values
	}
	return 0
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	for _, cat := range types.Categories {
		w := c.Weight(cat)
		if math.IsNaN(w) || w < 0 {
			return fmt.Errorf("weight for %s must be non-negative, got %v", cat, w)
		}
	}
	if c.Weights.Skills+c.Weights.Wellbeing+c.Weights.Values <= 0 {
		return fmt.Errorf("weights must sum to a positive value")
	}
	if c.JobShare < 0 || c.CompanyShare < 0 {
		return fmt.Errorf("job and company shares must be non-negative")
	}
	if math.Abs(c.JobShare+c.CompanyShare-1) > 1e-9 {
		return fmt.Errorf("job_share and company_share must sum to 1, got %v", c.JobShare+c.CompanyShare)
	}
	if math.IsNaN(c.OvershootPenalty) || c.OvershootPenalty < 0 || c.OvershootPenalty > 1 {
		return fmt.Errorf("overshoot_penalty must be within [0,1], got %v", c.OvershootPenalty)
	}
	return nil
}

// LoadConfigFromFile reads a YAML configuration file. Keys missing from the
// file keep their default values.
func LoadConfigFromFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read matching config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse matching config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid matching config: %w", err)
	}
	return cfg, nil
}
