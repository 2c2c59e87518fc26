package server

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/matching"
	"github.com/OnnIInnO/Recruiting2.0/internal/server/ratelimit"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	mu           sync.Mutex
	users        map[string]*db.User
	companies    []*db.Company
	jobs         []*db.JobPosting
	applications []*db.Application
	pingErr      error
	listErr      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*db.User{}}
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) GetOrCreateUser(_ context.Context, email, name string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	if u, ok := f.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	if name == "" {
		name = db.DefaultUserName(email)
	}
	u := &db.User{ID: uuid.New(), Email: email, Name: name, CreatedAt: time.Now()}
	f.users[email] = u
	cp := *u
	return &cp, nil
}

func (f *fakeStore) UpdateUserAssessment(_ context.Context, userID uuid.UUID, c types.Category, p types.Profile) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			u.Set(c, p)
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeStore) addUser(email string, profiles types.UserProfiles) *db.User {
	u := &db.User{ID: uuid.New(), Email: email, Name: db.DefaultUserName(email), UserProfiles: profiles}
	f.users[email] = u
	return u
}

func (f *fakeStore) GetCompanyByID(_ context.Context, id uuid.UUID) (*db.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListCompanies(context.Context) ([]db.Company, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]db.Company, 0, len(f.companies))
	for _, c := range f.companies {
		cp := *c
		for _, j := range f.jobs {
			if j.CompanyID == c.ID {
				cp.Jobs = append(cp.Jobs, *j)
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeStore) UpsertCompany(_ context.Context, in *db.CompanyInput) (*db.Company, error) {
	c := &db.Company{ID: in.ID, Name: in.Name, CompanyProfiles: in.Profiles}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for i, existing := range f.companies {
		if existing.ID == c.ID {
			f.companies[i] = c
			return c, nil
		}
	}
	f.companies = append(f.companies, c)
	return c, nil
}

func (f *fakeStore) GetJobPostingByID(_ context.Context, id uuid.UUID) (*db.JobPosting, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListJobPostings(_ context.Context, activeOnly bool) ([]db.JobPosting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []db.JobPosting
	for _, j := range f.jobs {
		if activeOnly && !j.IsActive {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (f *fakeStore) UpsertJobPosting(_ context.Context, in *db.JobPostingInput) (*db.JobPosting, error) {
	j := &db.JobPosting{
		ID:              in.ID,
		CompanyID:       in.CompanyID,
		Title:           in.Title,
		JobRequirements: in.Requirements,
		IsActive:        true,
	}
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	for i, existing := range f.jobs {
		if existing.ID == j.ID {
			f.jobs[i] = j
			return j, nil
		}
	}
	f.jobs = append(f.jobs, j)
	return j, nil
}

func (f *fakeStore) GetApplication(_ context.Context, userID, jobID uuid.UUID) (*db.Application, error) {
	for _, a := range f.applications {
		if a.UserID == userID && a.JobID == jobID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateApplication(_ context.Context, in *db.ApplicationInput) (*db.Application, error) {
	for _, a := range f.applications {
		if a.UserID == in.UserID && a.JobID == in.JobID {
			return nil, db.ErrDuplicateApplication
		}
	}
	a := &db.Application{
		ID:          uuid.New(),
		UserID:      in.UserID,
		JobID:       in.JobID,
		Status:      db.ApplicationStatusSubmitted,
		CoverLetter: in.CoverLetter,
		MatchScores: in.MatchScores,
		CreatedAt:   time.Now(),
	}
	f.applications = append(f.applications, a)
	return a, nil
}

func (f *fakeStore) joined(a *db.Application) db.Application {
	out := *a
	for _, j := range f.jobs {
		if j.ID == a.JobID {
			out.JobTitle = j.Title
			if c, _ := f.GetCompanyByID(context.Background(), j.CompanyID); c != nil {
				out.CompanyName = c.Name
			}
		}
	}
	for _, u := range f.users {
		if u.ID == a.UserID {
			out.UserEmail = u.Email
			out.UserName = u.Name
		}
	}
	return out
}

func (f *fakeStore) ListUserApplications(_ context.Context, userID uuid.UUID) ([]db.Application, error) {
	var out []db.Application
	for _, a := range f.applications {
		if a.UserID == userID {
			out = append(out, f.joined(a))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) ListCompanyApplications(_ context.Context, companyID uuid.UUID) ([]db.Application, error) {
	var out []db.Application
	for _, a := range f.applications {
		job, _ := f.GetJobPostingByID(context.Background(), a.JobID)
		if job != nil && job.CompanyID == companyID {
			out = append(out, f.joined(a))
		}
	}
	return out, nil
}

func (f *fakeStore) ListApplicationScores(_ context.Context, jobID uuid.UUID) ([]float64, error) {
	scores := []float64{}
	for _, a := range f.applications {
		if a.JobID == jobID {
			scores = append(scores, a.MatchScores.OverallMatch)
		}
	}
	return scores, nil
}

// Fixture IDs
var (
	testCompanyID = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	testJobA      = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	testJobB      = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	testJobClosed = uuid.MustParse("00000000-0000-0000-0000-0000000000a3")
)

// newFixtureStore holds one company with two open jobs and one closed job.
// Job A asks for technical 8, job B for technical 10.
func newFixtureStore() *fakeStore {
	f := newFakeStore()
	f.companies = []*db.Company{{
		ID:   testCompanyID,
		Name: "Tech Innovators",
		CompanyProfiles: types.CompanyProfiles{
			Wellbeing: types.Profile{types.DimensionAutonomy: {Score: 8}},
		},
	}}
	f.jobs = []*db.JobPosting{
		{
			ID: testJobA, CompanyID: testCompanyID, Title: "Software Engineer", IsActive: true,
			JobRequirements: types.JobRequirements{
				Skills: types.Requirements{types.DimensionTechnical: {Target: 8}},
			},
		},
		{
			ID: testJobB, CompanyID: testCompanyID, Title: "Principal Engineer", IsActive: true,
			JobRequirements: types.JobRequirements{
				Skills: types.Requirements{types.DimensionTechnical: {Target: 10}},
			},
		},
		{
			ID: testJobClosed, CompanyID: testCompanyID, Title: "Archived Role", IsActive: false,
			JobRequirements: types.JobRequirements{
				Skills: types.Requirements{types.DimensionTechnical: {Target: 1}},
			},
		},
	}
	return f
}

func newTestServer(store *fakeStore) *Server {
	s, err := New(Config{
		Port:   0,
		Store:  store,
		Engine: matching.NewEngine(matching.DefaultConfig()),
		Logger: zap.NewNop(),
		// Handler tests exercise the limiter separately.
		RateLimit: &ratelimit.Config{Enabled: false},
	})
	if err != nil {
		panic(err)
	}
	return s
}
