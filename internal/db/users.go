package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// User Methods
// -----------------------------------------------------------------------------

const userColumns = `id, email, name, wellbeing_profile, skills_profile, values_profile, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var wellbeingJSON, skillsJSON, valuesJSON []byte

	err := row.Scan(&u.ID, &u.Email, &u.Name, &wellbeingJSON, &skillsJSON, &valuesJSON, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// Parse JSONB fields
	if err := unmarshalJSONB(wellbeingJSON, &u.Wellbeing); err != nil {
		return nil, fmt.Errorf("failed to parse wellbeing profile: %w", err)
	}
	if err := unmarshalJSONB(skillsJSON, &u.Skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills profile: %w", err)
	}
	if err := unmarshalJSONB(valuesJSON, &u.Values); err != nil {
		return nil, fmt.Errorf("failed to parse values profile: %w", err)
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by e-mail. Returns nil, nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		normalizeEmail(email),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByID retrieves a user by ID. Returns nil, nil when not found.
func (db *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetOrCreateUser returns the user with the given e-mail, creating it when
// needed. An empty name defaults to the local part of the e-mail.
func (db *DB) GetOrCreateUser(ctx context.Context, email, name string) (*User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("user email cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultUserName(email)
	}

	u, err := scanUser(db.pool.QueryRow(ctx,
		`INSERT INTO users (email, name)
		 VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING `+userColumns,
		email, name,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// UpdateUserAssessment stores the profile of one assessment category.
func (db *DB) UpdateUserAssessment(ctx context.Context, userID uuid.UUID, category types.Category, profile types.Profile) (*User, error) {
	column, err := profileColumn(category)
	if err != nil {
		return nil, err
	}

	profileJSON, err := marshalJSONB(profile, !profile.Completed())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s profile: %w", category, err)
	}

	u, err := scanUser(db.pool.QueryRow(ctx,
		`UPDATE users SET `+column+` = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+userColumns,
		profileJSON, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update %s assessment: %w", category, err)
	}
	return u, nil
}

// profileColumn maps a category onto its users column. The result is always
// one of a fixed set of identifiers.
func profileColumn(c types.Category) (string, error) {
	switch c {
	case types.CategoryWellbeing:
		return "wellbeing_profile", nil
	case types.CategorySkills:
		return "skills_profile", nil
	case types.CategoryValues:
		return "values_profile", nil
	}
	return "", fmt.Errorf("unknown assessment category: %q", c)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
