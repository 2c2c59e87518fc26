package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldUserEmail is the structured log field key for the job seeker.
	FieldUserEmail = "user_email"
	// FieldJobID is the structured log field key for a job posting.
	FieldJobID = "job_id"
	// FieldCategory is the structured log field key for an assessment category.
	FieldCategory = "category"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger. A nil logger becomes
// a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// MatchFields returns the fields describing a match request. Empty values are
// left out.
func MatchFields(userEmail, jobID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldUserEmail, Value: userEmail},
		StringField{Key: FieldJobID, Value: jobID},
	)
}

// WithMatch attaches the match request fields to the logger.
func WithMatch(logger *zap.Logger, userEmail, jobID string) *zap.Logger {
	return WithFields(logger, MatchFields(userEmail, jobID)...)
}
