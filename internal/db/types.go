package db

import (
	"strings"
	"time"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
)

// Application statuses
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusAccepted  = "accepted"
)

// User is a job seeker with their assessment profiles
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	types.UserProfiles
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Company is an employer with its wellbeing and values profiles
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Location    string    `json:"location,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	types.CompanyProfiles
	Jobs      []JobPosting `json:"jobs,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// JobPosting is an open position with its requirement profiles
type JobPosting struct {
	ID                  uuid.UUID `json:"id"`
	CompanyID           uuid.UUID `json:"company_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	SalaryRange         string    `json:"salary_range,omitempty"`
	RemotePolicy        string    `json:"remote_policy,omitempty"`
	ApplicationDeadline string    `json:"application_deadline,omitempty"`
	types.JobRequirements
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Application is a user's application to a job, with the scores computed
// when it was submitted
type Application struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	JobID       uuid.UUID         `json:"job_id"`
	Status      string            `json:"status"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	MatchScores types.MatchResult `json:"match_score"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Joined
	JobTitle    string `json:"job_title,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	UserEmail   string `json:"user_email,omitempty"`
	UserName    string `json:"user_name,omitempty"`
}

// CompanyInput holds the fields used to create or update a company
type CompanyInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Industry    string
	Location    string
	LogoURL     string
	Profiles    types.CompanyProfiles
}

// JobPostingInput holds the fields used to create or update a job posting
type JobPostingInput struct {
	ID                  uuid.UUID
	CompanyID           uuid.UUID
	Title               string
	Description         string
	SalaryRange         string
	RemotePolicy        string
	ApplicationDeadline string
	Requirements        types.JobRequirements
}

// ApplicationInput holds the fields used to create an application
type ApplicationInput struct {
	UserID      uuid.UUID
	JobID       uuid.UUID
	CoverLetter string
	MatchScores types.MatchResult
}

// DefaultUserName derives a display name from an e-mail address.
func DefaultUserName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
