// Package seed loads the example companies and job postings.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultCatalog []byte

// Store is the subset of the database used to load seed data.
type Store interface {
	UpsertCompany(ctx context.Context, input *db.CompanyInput) (*db.Company, error)
	UpsertJobPosting(ctx context.Context, input *db.JobPostingInput) (*db.JobPosting, error)
}

// Catalog is a parsed seed file.
type Catalog struct {
	Companies []CompanySeed
}

// CompanySeed is a company with its job postings.
type CompanySeed struct {
	Company db.CompanyInput
	Jobs    []db.JobPostingInput
}

// Result reports how many rows Load wrote.
type Result struct {
	Companies int `json:"companies"`
	Jobs      int `json:"jobs"`
}

type fileCatalog struct {
	Companies []fileCompany `yaml:"companies"`
}

type fileCompany struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Industry    string         `yaml:"industry"`
	Location    string         `yaml:"location"`
	LogoURL     string         `yaml:"logo_url"`
	Wellbeing   map[string]any `yaml:"wellbeing_profile"`
	Values      map[string]any `yaml:"values_profile"`
	Jobs        []fileJob      `yaml:"jobs"`
}

type fileJob struct {
	ID                  string         `yaml:"id"`
	Title               string         `yaml:"title"`
	Description         string         `yaml:"description"`
	SalaryRange         string         `yaml:"salary_range"`
	RemotePolicy        string         `yaml:"remote_policy"`
	ApplicationDeadline string         `yaml:"application_deadline"`
	Skills              map[string]any `yaml:"skills_requirements"`
	Wellbeing           map[string]any `yaml:"wellbeing_preferences"`
	Values              map[string]any `yaml:"values_alignment"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML seed catalog.
func Parse(data []byte) (*Catalog, error) {
	var raw fileCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	catalog := &Catalog{}
	for _, fc := range raw.Companies {
		cs, err := convertCompany(fc)
		if err != nil {
			return nil, fmt.Errorf("company %q: %w", fc.Name, err)
		}
		catalog.Companies = append(catalog.Companies, cs)
	}
	return catalog, nil
}

func convertCompany(fc fileCompany) (CompanySeed, error) {
	id, err := uuid.Parse(fc.ID)
	if err != nil {
		return CompanySeed{}, fmt.Errorf("invalid id: %w", err)
	}

	wellbeing, err := decodeProfile(types.CategoryWellbeing, fc.Wellbeing)
	if err != nil {
		return CompanySeed{}, err
	}
	values, err := decodeProfile(types.CategoryValues, fc.Values)
	if err != nil {
		return CompanySeed{}, err
	}

	cs := CompanySeed{
		Company: db.CompanyInput{
			ID:          id,
			Name:        fc.Name,
			Description: fc.Description,
			Industry:    fc.Industry,
			Location:    fc.Location,
			LogoURL:     fc.LogoURL,
			Profiles:    types.CompanyProfiles{Wellbeing: wellbeing, Values: values},
		},
	}

	for _, fj := range fc.Jobs {
		job, err := convertJob(id, fj)
		if err != nil {
			return CompanySeed{}, fmt.Errorf("job %q: %w", fj.Title, err)
		}
		cs.Jobs = append(cs.Jobs, job)
	}
	return cs, nil
}

func convertJob(companyID uuid.UUID, fj fileJob) (db.JobPostingInput, error) {
	id, err := uuid.Parse(fj.ID)
	if err != nil {
		return db.JobPostingInput{}, fmt.Errorf("invalid id: %w", err)
	}

	var reqs types.JobRequirements
	for _, part := range []struct {
		category types.Category
		raw      map[string]any
		dst      *types.Requirements
	}{
		{types.CategorySkills, fj.Skills, &reqs.Skills},
		{types.CategoryWellbeing, fj.Wellbeing, &reqs.Wellbeing},
		{types.CategoryValues, fj.Values, &reqs.Values},
	} {
		r, err := types.DecodeRequirements(part.raw)
		if err != nil {
			return db.JobPostingInput{}, fmt.Errorf("%s requirements: %w", part.category, err)
		}
		if err := types.ValidateRequirements(part.category, r); err != nil {
			return db.JobPostingInput{}, fmt.Errorf("%s requirements: %w", part.category, err)
		}
		*part.dst = r
	}

	return db.JobPostingInput{
		ID:                  id,
		CompanyID:           companyID,
		Title:               fj.Title,
		Description:         fj.Description,
		SalaryRange:         fj.SalaryRange,
		RemotePolicy:        fj.RemotePolicy,
		ApplicationDeadline: fj.ApplicationDeadline,
		Requirements:        reqs,
	}, nil
}

func decodeProfile(c types.Category, raw map[string]any) (types.Profile, error) {
	p, err := types.DecodeProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("%s profile: %w", c, err)
	}
	if err := types.ValidateProfile(c, p); err != nil {
		return nil, fmt.Errorf("%s profile: %w", c, err)
	}
	return p, nil
}

// Load upserts every company and job posting of the catalog.
func Load(ctx context.Context, store Store, catalog *Catalog, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	for _, cs := range catalog.Companies {
		company := cs.Company
		if _, err := store.UpsertCompany(ctx, &company); err != nil {
			return res, fmt.Errorf("failed to seed company %s: %w", company.Name, err)
		}
		res.Companies++

		for _, job := range cs.Jobs {
			if _, err := store.UpsertJobPosting(ctx, &job); err != nil {
				return res, fmt.Errorf("failed to seed job %s: %w", job.Title, err)
			}
			res.Jobs++
		}
		logger.Debug("seeded company", zap.String("company", company.Name), zap.Int("jobs", len(cs.Jobs)))
	}

	logger.Info("seed data loaded", zap.Int("companies", res.Companies), zap.Int("jobs", res.Jobs))
	return res, nil
}
