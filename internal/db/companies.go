package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Company Methods
// -----------------------------------------------------------------------------

const companyColumns = `id, name, description, industry, location, logo_url,
	wellbeing_profile, values_profile, created_at, updated_at`

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	var wellbeingJSON, valuesJSON []byte

	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Industry, &c.Location, &c.LogoURL,
		&wellbeingJSON, &valuesJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSONB(wellbeingJSON, &c.Wellbeing); err != nil {
		return nil, fmt.Errorf("failed to parse company wellbeing profile: %w", err)
	}
	if err := unmarshalJSONB(valuesJSON, &c.Values); err != nil {
		return nil, fmt.Errorf("failed to parse company values profile: %w", err)
	}
	return &c, nil
}

// GetCompanyByID retrieves a company by its UUID. Returns nil, nil when not found.
func (db *DB) GetCompanyByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	c, err := scanCompany(db.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`,
		id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// ListCompanies returns every company ordered by name, with their job postings.
func (db *DB) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY name, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	index := map[uuid.UUID]int{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		index[c.ID] = len(companies)
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}

	jobs, err := db.ListJobPostings(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if i, ok := index[j.CompanyID]; ok {
			companies[i].Jobs = append(companies[i].Jobs, j)
		}
	}
	return companies, nil
}

// UpsertCompany creates a company or updates it when input.ID already exists.
// A nil input.ID lets the database generate one.
func (db *DB) UpsertCompany(ctx context.Context, input *CompanyInput) (*Company, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	// Prepare JSONB fields
	wellbeingJSON, err := marshalJSONB(input.Profiles.Wellbeing, !input.Profiles.Wellbeing.Completed())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wellbeing profile: %w", err)
	}
	valuesJSON, err := marshalJSONB(input.Profiles.Values, !input.Profiles.Values.Completed())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal values profile: %w", err)
	}

	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	c, err := scanCompany(db.pool.QueryRow(ctx,
		`INSERT INTO companies (id, name, description, industry, location, logo_url, wellbeing_profile, values_profile)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		     name = EXCLUDED.name,
		     description = EXCLUDED.description,
		     industry = EXCLUDED.industry,
		     location = EXCLUDED.location,
		     logo_url = EXCLUDED.logo_url,
		     wellbeing_profile = EXCLUDED.wellbeing_profile,
		     values_profile = EXCLUDED.values_profile,
		     updated_at = NOW()
		 RETURNING `+companyColumns,
		id, input.Name, input.Description, input.Industry, input.Location, input.LogoURL,
		wellbeingJSON, valuesJSON,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert company: %w", err)
	}
	return c, nil
}
