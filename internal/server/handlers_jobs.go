package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/insights"
	"github.com/OnnIInnO/Recruiting2.0/internal/logger"
	"github.com/OnnIInnO/Recruiting2.0/internal/seed"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplyResponse is returned when an application is created.
type ApplyResponse struct {
	ApplicationID uuid.UUID         `json:"application_id"`
	MatchScore    types.MatchResult `json:"match_score"`
	Status        string            `json:"status"`
}

// Applicant identifies the user behind an application.
type Applicant struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CompanyApplication is one application as seen by the company.
type CompanyApplication struct {
	ID         uuid.UUID         `json:"id"`
	Applicant  Applicant         `json:"applicant"`
	MatchScore types.MatchResult `json:"match_score"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// JobApplications groups the applications of one job.
type JobApplications struct {
	Job          ApplicationJob       `json:"job"`
	Applications []CompanyApplication `json:"applications"`
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleListCompanies lists every company with its job postings
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.store.ListCompanies(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if companies == nil {
		companies = []db.Company{}
	}
	s.jsonResponse(w, http.StatusOK, companies)
}

// handleApply creates an application with the match computed at submission
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	req := types.ApplyRequest{Email: r.URL.Query().Get("user_email")}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if req.Email == "" {
		req.Email = r.URL.Query().Get("user_email")
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, &ErrValidation{Field: "user_email", Message: err.Error()})
		return
	}

	user, err := s.findUser(r.Context(), req.Email)
	if err != nil {
		s.writeError(w, err)
		return
	}
	job, err := s.findJob(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	existing, err := s.store.GetApplication(r.Context(), user.ID, job.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if existing != nil {
		s.writeError(w, &ErrAlreadyApplied{JobID: job.ID})
		return
	}

	result, _, err := s.matchJob(r.Context(), user, job)
	if err != nil {
		s.writeError(w, err)
		return
	}

	app, err := s.store.CreateApplication(r.Context(), &db.ApplicationInput{
		UserID:      user.ID,
		JobID:       job.ID,
		CoverLetter: req.CoverLetter,
		MatchScores: result,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicateApplication) {
			err = &ErrAlreadyApplied{JobID: job.ID}
		}
		s.writeError(w, err)
		return
	}

	logger.WithMatch(s.logger, user.Email, job.ID.String()).Info("application created",
		zap.String("application_id", app.ID.String()),
		zap.Float64("overall_match", result.OverallMatch),
	)

	s.jsonResponse(w, http.StatusCreated, ApplyResponse{
		ApplicationID: app.ID,
		MatchScore:    result,
		Status:        app.Status,
	})
}

// handleJobStats returns application statistics of a job
func (s *Server) handleJobStats(w http.ResponseWriter, r *http.Request) {
	job, err := s.findJob(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	scores, err := s.store.ListApplicationScores(r.Context(), job.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, insights.Stats(scores))
}

// handleCompanyApplications returns the applications to a company's jobs,
// keyed by job ID, best match first within each job
func (s *Server) handleCompanyApplications(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(r.PathValue("company_id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "company_id", Message: "invalid company ID"})
		return
	}

	apps, err := s.store.ListCompanyApplications(r.Context(), companyID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	grouped := map[string]*JobApplications{}
	for _, a := range apps {
		key := a.JobID.String()
		g, ok := grouped[key]
		if !ok {
			g = &JobApplications{
				Job:          ApplicationJob{ID: a.JobID, Title: a.JobTitle},
				Applications: []CompanyApplication{},
			}
			grouped[key] = g
		}
		g.Applications = append(g.Applications, CompanyApplication{
			ID:         a.ID,
			Applicant:  Applicant{Email: a.UserEmail, Name: a.UserName},
			MatchScore: a.MatchScores,
			Status:     a.Status,
			CreatedAt:  a.CreatedAt,
		})
	}
	for _, g := range grouped {
		sort.SliceStable(g.Applications, func(i, j int) bool {
			return g.Applications[i].MatchScore.OverallMatch > g.Applications[j].MatchScore.OverallMatch
		})
	}

	s.jsonResponse(w, http.StatusOK, grouped)
}

// handleSeedData loads the example companies and job postings
func (s *Server) handleSeedData(w http.ResponseWriter, r *http.Request) {
	catalog := s.seedCatalog
	if catalog == nil {
		var err error
		if catalog, err = seed.Default(); err != nil {
			s.writeError(w, err)
			return
		}
	}

	res, err := seed.Load(r.Context(), s.store, catalog, s.logger)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":   "Seed data loaded successfully",
		"companies": res.Companies,
		"jobs":      res.Jobs,
	})
}
