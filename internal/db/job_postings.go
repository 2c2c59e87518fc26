package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Job Posting Methods
// -----------------------------------------------------------------------------

const jobPostingColumns = `id, company_id, title, description, salary_range, remote_policy,
	application_deadline, skills_requirements, wellbeing_preferences, values_alignment,
	is_active, created_at, updated_at`

func scanJobPosting(row pgx.Row) (*JobPosting, error) {
	var p JobPosting
	var skillsJSON, wellbeingJSON, valuesJSON []byte

	err := row.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Description, &p.SalaryRange, &p.RemotePolicy,
		&p.ApplicationDeadline, &skillsJSON, &wellbeingJSON, &valuesJSON,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// Parse JSONB fields; every requirement leaf shape is accepted
	if err := unmarshalJSONB(skillsJSON, &p.Skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills requirements: %w", err)
	}
	if err := unmarshalJSONB(wellbeingJSON, &p.Wellbeing); err != nil {
		return nil, fmt.Errorf("failed to parse wellbeing preferences: %w", err)
	}
	if err := unmarshalJSONB(valuesJSON, &p.Values); err != nil {
		return nil, fmt.Errorf("failed to parse values alignment: %w", err)
	}
	return &p, nil
}

// GetJobPostingByID retrieves a job posting by its ID. Returns nil, nil when not found.
func (db *DB) GetJobPostingByID(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	p, err := scanJobPosting(db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`,
		id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

// ListJobPostings returns job postings ordered by creation time. activeOnly
// limits the result to open positions.
func (db *DB) ListJobPostings(ctx context.Context, activeOnly bool) ([]JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings
		 WHERE ($1 = FALSE OR is_active)
		 ORDER BY created_at, id`,
		activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job postings: %w", err)
	}
	return postings, nil
}

// UpsertJobPosting creates a job posting or updates it when input.ID already exists.
func (db *DB) UpsertJobPosting(ctx context.Context, input *JobPostingInput) (*JobPosting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("job title cannot be empty")
	}
	if input.CompanyID == uuid.Nil {
		return nil, fmt.Errorf("job posting requires a company")
	}

	// Prepare JSONB fields
	reqs := input.Requirements
	skillsJSON, err := marshalJSONB(reqs.Skills, len(reqs.Skills) == 0)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills requirements: %w", err)
	}
	wellbeingJSON, err := marshalJSONB(reqs.Wellbeing, len(reqs.Wellbeing) == 0)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wellbeing preferences: %w", err)
	}
	valuesJSON, err := marshalJSONB(reqs.Values, len(reqs.Values) == 0)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal values alignment: %w", err)
	}

	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	p, err := scanJobPosting(db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (id, company_id, title, description, salary_range, remote_policy,
		                           application_deadline, skills_requirements, wellbeing_preferences,
		                           values_alignment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		     company_id = EXCLUDED.company_id,
		     title = EXCLUDED.title,
		     description = EXCLUDED.description,
		     salary_range = EXCLUDED.salary_range,
		     remote_policy = EXCLUDED.remote_policy,
		     application_deadline = EXCLUDED.application_deadline,
		     skills_requirements = EXCLUDED.skills_requirements,
		     wellbeing_preferences = EXCLUDED.wellbeing_preferences,
		     values_alignment = EXCLUDED.values_alignment,
		     updated_at = NOW()
		 RETURNING `+jobPostingColumns,
		id, input.CompanyID, input.Title, input.Description, input.SalaryRange, input.RemotePolicy,
		input.ApplicationDeadline, skillsJSON, wellbeingJSON, valuesJSON,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return p, nil
}
