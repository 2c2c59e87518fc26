package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/OnnIInnO/Recruiting2.0/internal/assessment"
	"github.com/OnnIInnO/Recruiting2.0/internal/insights"
	"github.com/OnnIInnO/Recruiting2.0/internal/logger"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"go.uber.org/zap"
)

// SubmitResponse is returned after an assessment is stored.
type SubmitResponse struct {
	Profile          types.Profile                 `json:"profile"`
	Recommendations  []insights.Scored[JobSummary] `json:"recommendations"`
	AssessmentStatus assessment.Status             `json:"assessment_status"`
}

func categoryParam(r *http.Request) (types.Category, error) {
	raw := r.PathValue("type")
	c, err := types.ParseCategory(raw)
	if err != nil {
		return "", &ErrUnknownCategory{Category: raw}
	}
	return c, nil
}

// handleQuestions lists the questions of an assessment
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	c, err := categoryParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, assessment.Questions(c))
}

// handleSubmitAssessment stores the answers of an assessment. The body is a
// JSON object of question ID to answer and the e-mail is a query parameter.
func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	c, err := categoryParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	req := types.SubmitAssessmentRequest{Email: r.URL.Query().Get("user_email")}
	if err := json.NewDecoder(r.Body).Decode(&req.Answers); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	resp, err := s.submitAssessment(r.Context(), c, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAssessmentWebhook accepts form submissions where the e-mail travels
// in the Name field and answers may be strings.
func (s *Server) handleAssessmentWebhook(w http.ResponseWriter, r *http.Request) {
	c, err := categoryParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	email, answers, err := assessment.ParseWebhookPayload(payload)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp, err := s.submitAssessment(r.Context(), c, types.SubmitAssessmentRequest{Email: email, Answers: answers})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// submitAssessment validates the answers, stores the resulting profile and
// returns fresh recommendations.
func (s *Server) submitAssessment(ctx context.Context, c types.Category, req types.SubmitAssessmentRequest) (*SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "answers", Message: err.Error()}
	}

	profile := assessment.ProcessAnswers(c, req.Answers)
	if !profile.Completed() {
		return nil, &ErrValidation{Field: "answers", Message: "no answer belongs to the " + string(c) + " assessment"}
	}

	user, err := s.store.GetOrCreateUser(ctx, req.Email, "")
	if err != nil {
		return nil, err
	}
	user, err = s.store.UpdateUserAssessment(ctx, user.ID, c, profile)
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(s.logger, logger.StringFields(
		logger.StringField{Key: logger.FieldUserEmail, Value: user.Email},
		logger.StringField{Key: logger.FieldCategory, Value: string(c)},
	)...)
	log.Info("assessment stored", zap.Int("dimensions", len(profile)))

	scored, err := s.scoreJobs(ctx, user.UserProfiles)
	if err != nil {
		return nil, err
	}

	return &SubmitResponse{
		Profile:          profile,
		Recommendations:  insights.TopN(scored, s.recommendationLimit),
		AssessmentStatus: assessment.StatusOf(user.UserProfiles),
	}, nil
}
