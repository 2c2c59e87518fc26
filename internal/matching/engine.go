// Package matching provides the scoring engine that compares a candidate's
// assessment profiles with job requirements and company profiles.
package matching

import (
	"context"
	"runtime"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"golang.org/x/sync/errgroup"
)

// Engine scores candidates against jobs. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Match scores one (user, job, company) triple. Categories without data on
// either side are left out of the result and of the overall score.
func (e *Engine) Match(user types.UserProfiles, job types.JobRequirements, company types.CompanyProfiles) types.MatchResult {
	result := types.MatchResult{
		MatchedDimensions: []string{},
		Details:           map[types.Category][]types.DimensionMatch{},
	}

	var scores []categoryScore
	for _, c := range types.Categories {
		s, ok := e.scoreCategory(c, user.Get(c), job.Get(c), company.Get(c))
		if !ok {
			continue
		}
		scores = append(scores, s)
		result.SetCategoryMatch(c, s.score)
		result.MatchedDimensions = append(result.MatchedDimensions, c.ProfileKey())
		result.Details[c] = s.details
	}

	result.OverallMatch = e.combine(scores)
	result.Insights = generateNotes(scores)
	if len(result.Details) == 0 {
		result.Details = nil
	}
	return result
}

// Candidate is one job to score in a batch.
type Candidate struct {
	Job     types.JobRequirements
	Company types.CompanyProfiles
}

// MatchBatch scores one user against many candidates using at most workers
// goroutines. Results are returned in input order. A non-positive workers
// value uses the number of CPUs.
func (e *Engine) MatchBatch(ctx context.Context, user types.UserProfiles, candidates []Candidate, workers int) ([]types.MatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]types.MatchResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Match(user, candidates[i].Job, candidates[i].Company)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
