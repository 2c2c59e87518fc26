package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/OnnIInnO/Recruiting2.0/internal/assessment"
	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
)

// ProfileResponse is a user's assessment profiles with completion flags.
type ProfileResponse struct {
	Email string `json:"email"`
	types.UserProfiles
	AssessmentStatus assessment.Status `json:"assessment_status"`
}

// ApplicationJob is the job summary embedded in application listings.
type ApplicationJob struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Company string    `json:"company,omitempty"`
}

// UserApplication is one entry of a user's application history.
type UserApplication struct {
	ID         uuid.UUID         `json:"id"`
	Job        ApplicationJob    `json:"job"`
	Status     string            `json:"status"`
	MatchScore types.MatchResult `json:"match_score"`
	CreatedAt  time.Time         `json:"created_at"`
}

// findUser loads a user by e-mail, returning ErrUserNotFound when missing.
func (s *Server) findUser(ctx context.Context, email string) (*db.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &ErrValidation{Field: "email", Message: "is required"}
	}
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &ErrUserNotFound{Email: email}
	}
	return user, nil
}

// handleCreateUser registers a user. Registering an existing e-mail returns
// the stored user.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, &ErrValidation{Field: "email", Message: err.Error()})
		return
	}

	user, err := s.store.GetOrCreateUser(r.Context(), req.Email, req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleGetUser returns a user by e-mail
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.findUser(r.Context(), r.PathValue("email"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleGetProfile returns every assessment profile of a user
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.findUser(r.Context(), r.PathValue("email"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ProfileResponse{
		Email:            user.Email,
		UserProfiles:     user.UserProfiles,
		AssessmentStatus: assessment.StatusOf(user.UserProfiles),
	})
}

// handleAssessmentStatus returns which assessments a user completed
func (s *Server) handleAssessmentStatus(w http.ResponseWriter, r *http.Request) {
	user, err := s.findUser(r.Context(), r.PathValue("email"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, assessment.StatusOf(user.UserProfiles))
}

// handleUserApplications lists a user's applications, newest first
func (s *Server) handleUserApplications(w http.ResponseWriter, r *http.Request) {
	user, err := s.findUser(r.Context(), r.PathValue("email"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	apps, err := s.store.ListUserApplications(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]UserApplication, 0, len(apps))
	for _, a := range apps {
		out = append(out, UserApplication{
			ID:         a.ID,
			Job:        ApplicationJob{ID: a.JobID, Title: a.JobTitle, Company: a.CompanyName},
			Status:     a.Status,
			MatchScore: a.MatchScores,
			CreatedAt:  a.CreatedAt,
		})
	}
	s.jsonResponse(w, http.StatusOK, out)
}
