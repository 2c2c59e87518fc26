package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/OnnIInnO/Recruiting2.0/internal/assessment"
	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	Email string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.Email)
}

// ErrJobNotFound indicates the job posting was not found
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrAlreadyApplied indicates the user already applied to the job
type ErrAlreadyApplied struct {
	JobID uuid.UUID
}

func (e *ErrAlreadyApplied) Error() string {
	return fmt.Sprintf("already applied to job %s", e.JobID)
}

// ErrNoAssessment indicates the user has not completed any assessment
type ErrNoAssessment struct{}

func (e *ErrNoAssessment) Error() string {
	return "please complete at least one assessment first"
}

// ErrUnknownCategory indicates an assessment type outside the catalog
type ErrUnknownCategory struct {
	Category string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown assessment type: %s", e.Category)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFoundUser *ErrUserNotFound
		notFoundJob  *ErrJobNotFound
		applied      *ErrAlreadyApplied
		noAssessment *ErrNoAssessment
		category     *ErrUnknownCategory
		validation   *ErrValidation
	)
	switch {
	case errors.As(err, &notFoundUser), errors.As(err, &notFoundJob):
		return http.StatusNotFound
	case errors.As(err, &applied), errors.Is(err, db.ErrDuplicateApplication):
		return http.StatusBadRequest
	case errors.As(err, &noAssessment), errors.As(err, &category), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, assessment.ErrInvalidPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes it. Internal errors are logged
// and their details hidden from the client.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}
