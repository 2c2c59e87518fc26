package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/insights"
	"github.com/OnnIInnO/Recruiting2.0/internal/logger"
	"github.com/OnnIInnO/Recruiting2.0/internal/matching"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobSummary identifies a scored job in match responses.
type JobSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description,omitempty"`
}

func summarize(job *db.JobPosting, company *db.Company) JobSummary {
	js := JobSummary{ID: job.ID, Title: job.Title, Description: job.Description}
	if company != nil {
		js.Company = company.Name
	}
	return js
}

// candidate restricts a job and its company to the categories the user has
// completed.
func candidate(user types.UserProfiles, job *db.JobPosting, company *db.Company) matching.Candidate {
	completed := user.Completed()
	c := matching.Candidate{Job: job.JobRequirements.Only(completed)}
	if company != nil {
		c.Company = company.CompanyProfiles.Only(completed)
	}
	return c
}

// scoreJobs scores the user against every active job posting. The result is
// in listing order; callers rank it.
func (s *Server) scoreJobs(ctx context.Context, user types.UserProfiles) ([]insights.Scored[JobSummary], error) {
	if !user.Any() {
		return []insights.Scored[JobSummary]{}, nil
	}

	jobs, err := s.store.ListJobPostings(ctx, true)
	if err != nil {
		return nil, err
	}
	companies, err := s.store.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*db.Company, len(companies))
	for i := range companies {
		byID[companies[i].ID] = &companies[i]
	}

	candidates := make([]matching.Candidate, len(jobs))
	for i := range jobs {
		candidates[i] = candidate(user, &jobs[i], byID[jobs[i].CompanyID])
	}

	results, err := s.engine.MatchBatch(ctx, user, candidates, s.workers)
	if err != nil {
		return nil, fmt.Errorf("failed to score jobs: %w", err)
	}

	scored := make([]insights.Scored[JobSummary], len(jobs))
	for i := range jobs {
		scored[i] = insights.Scored[JobSummary]{
			Item:   summarize(&jobs[i], byID[jobs[i].CompanyID]),
			Result: results[i],
		}
	}
	return scored, nil
}

// matchJob scores one user against one job, loading the job's company.
func (s *Server) matchJob(ctx context.Context, user *db.User, job *db.JobPosting) (types.MatchResult, *db.Company, error) {
	company, err := s.store.GetCompanyByID(ctx, job.CompanyID)
	if err != nil {
		return types.MatchResult{}, nil, err
	}
	c := candidate(user.UserProfiles, job, company)
	result := s.engine.Match(user.UserProfiles, c.Job, c.Company)

	logger.WithMatch(s.logger, user.Email, job.ID.String()).Debug("job matched",
		zap.Float64("overall_match", result.OverallMatch),
	)
	return result, company, nil
}

// findJob loads a job by the {job_id} path value.
func (s *Server) findJob(r *http.Request) (*db.JobPosting, error) {
	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		return nil, &ErrValidation{Field: "job_id", Message: "invalid job ID"}
	}
	job, err := s.store.GetJobPostingByID(r.Context(), jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: jobID}
	}
	return job, nil
}

// handleRecommendations returns the best matching open jobs for a user
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	user, err := s.findUser(r.Context(), r.PathValue("email"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !user.Any() {
		s.writeError(w, &ErrNoAssessment{})
		return
	}

	scored, err := s.scoreJobs(r.Context(), user.UserProfiles)
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit := parseQueryInt(r, "limit", s.recommendationLimit, 100)
	s.jsonResponse(w, http.StatusOK, insights.TopN(scored, limit))
}

// handleMatchingInsights summarizes how a user matches the open jobs
func (s *Server) handleMatchingInsights(w http.ResponseWriter, r *http.Request) {
	user, err := s.findUser(r.Context(), r.PathValue("email"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !user.Any() {
		s.writeError(w, &ErrNoAssessment{})
		return
	}

	scored, err := s.scoreJobs(r.Context(), user.UserProfiles)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, insights.Summarize(user.UserProfiles, scored, s.bestMatches))
}

// handleJobMatch returns the detailed match of a user for one job
func (s *Server) handleJobMatch(w http.ResponseWriter, r *http.Request) {
	job, err := s.findJob(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	user, err := s.findUser(r.Context(), r.PathValue("email"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !user.Any() {
		s.writeError(w, &ErrNoAssessment{})
		return
	}

	result, company, err := s.matchJob(r.Context(), user, job)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, insights.Scored[JobSummary]{
		Item:   summarize(job, company),
		Result: result,
	})
}
