package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeStore struct {
	companies []db.CompanyInput
	jobs      []db.JobPostingInput
	failJobs  bool
}

func (f *fakeStore) UpsertCompany(_ context.Context, input *db.CompanyInput) (*db.Company, error) {
	f.companies = append(f.companies, *input)
	return &db.Company{ID: input.ID, Name: input.Name}, nil
}

func (f *fakeStore) UpsertJobPosting(_ context.Context, input *db.JobPostingInput) (*db.JobPosting, error) {
	if f.failJobs {
		return nil, errors.New("boom")
	}
	f.jobs = append(f.jobs, *input)
	return &db.JobPosting{ID: input.ID, Title: input.Title}, nil
}

func TestDefault(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)
	require.Len(t, catalog.Companies, 7)

	first := catalog.Companies[0]
	assert.Equal(t, "Tech Innovators", first.Company.Name)
	assert.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000001"), first.Company.ID)
	assert.Equal(t, 8.5, first.Company.Profiles.Wellbeing[types.DimensionAutonomy].Score)

	require.Len(t, first.Jobs, 2)
	assert.Equal(t, "Software Engineer", first.Jobs[0].Title)
	assert.Equal(t, first.Company.ID, first.Jobs[0].CompanyID)
	assert.Equal(t, 8.0, first.Jobs[0].Requirements.Skills[types.DimensionTechnical].Target)

	total := 0
	seen := map[uuid.UUID]bool{}
	for _, cs := range catalog.Companies {
		for _, j := range cs.Jobs {
			assert.False(t, seen[j.ID], "duplicate job id %s", j.ID)
			seen[j.ID] = true
			total++
		}
	}
	assert.Equal(t, 14, total)
}

func TestParse_InvalidDimension(t *testing.T) {
	data := []byte(`
companies:
  - id: 00000000-0000-0000-0000-000000000001
    name: Broken
    wellbeing_profile:
      TECHNICAL: {score: 8}
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestParse_InvalidID(t *testing.T) {
	_, err := Parse([]byte("companies:\n  - id: not-a-uuid\n    name: Broken\n"))
	assert.Error(t, err)
}

func TestParse_AcceptsRequirementShapes(t *testing.T) {
	data := []byte(`
companies:
  - id: 00000000-0000-0000-0000-000000000001
    name: Shapes
    jobs:
      - id: 00000000-0000-0000-0000-000000000002
        title: Analyst
        skills_requirements:
          TECHNICAL: 6
        wellbeing_preferences:
          AUTONOMY: {minimum: 7}
        values_alignment:
          ETHICS: {importance: 9}
`)
	catalog, err := Parse(data)
	require.NoError(t, err)

	reqs := catalog.Companies[0].Jobs[0].Requirements
	assert.Equal(t, 6.0, reqs.Skills[types.DimensionTechnical].Target)
	assert.Equal(t, 7.0, reqs.Wellbeing[types.DimensionAutonomy].Target)
	assert.Equal(t, 9.0, reqs.Values[types.DimensionEthics].Target)
}

func TestLoad(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	core, observed := observer.New(zapcore.InfoLevel)
	store := &fakeStore{}

	res, err := Load(context.Background(), store, catalog, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, Result{Companies: 7, Jobs: 14}, res)
	assert.Len(t, store.companies, 7)
	assert.Len(t, store.jobs, 14)
	assert.Equal(t, 1, observed.FilterMessage("seed data loaded").Len())
}

func TestLoad_StoreError(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	res, err := Load(context.Background(), &fakeStore{failJobs: true}, catalog, nil)
	require.Error(t, err)
	assert.Equal(t, 1, res.Companies)
	assert.Equal(t, 0, res.Jobs)
}
