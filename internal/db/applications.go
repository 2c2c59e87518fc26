package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// -----------------------------------------------------------------------------
// Job Application Methods
// -----------------------------------------------------------------------------

// ErrDuplicateApplication is returned when a user applies to the same job twice.
var ErrDuplicateApplication = errors.New("application already exists")

const uniqueViolation = "23505"

const applicationColumns = `a.id, a.user_id, a.job_id, a.status, a.cover_letter, a.match_scores,
	a.created_at, a.updated_at`

func scanApplication(row pgx.Row, extra ...any) (*Application, error) {
	var a Application
	var scoresJSON []byte

	dest := []any{&a.ID, &a.UserID, &a.JobID, &a.Status, &a.CoverLetter, &scoresJSON, &a.CreatedAt, &a.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(scoresJSON, &a.MatchScores); err != nil {
		return nil, fmt.Errorf("failed to parse match scores: %w", err)
	}
	return &a, nil
}

// GetApplication returns the application of a user to a job. Returns nil, nil
// when the user has not applied.
func (db *DB) GetApplication(ctx context.Context, userID, jobID uuid.UUID) (*Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications a
		 WHERE a.user_id = $1 AND a.job_id = $2`,
		userID, jobID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// CreateApplication stores a new application. A second application of the
// same user to the same job returns ErrDuplicateApplication.
func (db *DB) CreateApplication(ctx context.Context, input *ApplicationInput) (*Application, error) {
	scoresJSON, err := marshalJSONB(input.MatchScores, false)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match scores: %w", err)
	}

	a, err := scanApplication(db.pool.QueryRow(ctx,
		`INSERT INTO job_applications AS a (user_id, job_id, status, cover_letter, overall_match, match_scores)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+applicationColumns,
		input.UserID, input.JobID, ApplicationStatusSubmitted, input.CoverLetter,
		input.MatchScores.OverallMatch, scoresJSON,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateApplication
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return a, nil
}

// ListUserApplications returns a user's applications with job and company
// names, newest first.
func (db *DB) ListUserApplications(ctx context.Context, userID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+`, j.title, c.name
		 FROM job_applications a
		 JOIN job_postings j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list user applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var jobTitle, companyName string
		a, err := scanApplication(rows, &jobTitle, &companyName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		a.JobTitle = jobTitle
		a.CompanyName = companyName
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}
	return apps, nil
}

// ListCompanyApplications returns the applications to every job of a company
// with applicant details, newest first.
func (db *DB) ListCompanyApplications(ctx context.Context, companyID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+`, j.title, u.email, u.name
		 FROM job_applications a
		 JOIN job_postings j ON j.id = a.job_id
		 JOIN users u ON u.id = a.user_id
		 WHERE j.company_id = $1
		 ORDER BY a.created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list company applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var jobTitle, email, name string
		a, err := scanApplication(rows, &jobTitle, &email, &name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		a.JobTitle = jobTitle
		a.UserEmail = email
		a.UserName = name
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}
	return apps, nil
}

// ListApplicationScores returns the overall match of every application to a job.
func (db *DB) ListApplicationScores(ctx context.Context, jobID uuid.UUID) ([]float64, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT overall_match FROM job_applications WHERE job_id = $1`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list application scores: %w", err)
	}
	defer rows.Close()

	scores := []float64{}
	for rows.Next() {
		var s float64
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan application score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application scores: %w", err)
	}
	return scores, nil
}
