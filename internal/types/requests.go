//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateUserRequest represents the request to register a job seeker.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=200"`
}

// SubmitAssessmentRequest carries the answers of one assessment, keyed by
// question ID (e.g. "AUTONOMY_1") with values on the 0–10 scale.
type SubmitAssessmentRequest struct {
	Email   string         `json:"user_email" validate:"required,email"`
	Answers map[string]int `json:"answers" validate:"required,min=1,dive,keys,required,endkeys,min=0,max=10"`
}

// ApplyRequest represents a job application.
type ApplyRequest struct {
	Email       string `json:"user_email" validate:"required,email"`
	CoverLetter string `json:"cover_letter,omitempty" validate:"omitempty,max=10000"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SubmitAssessmentRequest using the validator.
func (r *SubmitAssessmentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
