// Package server provides the HTTP REST API for the matching service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/matching"
	"github.com/OnnIInnO/Recruiting2.0/internal/seed"
	"github.com/OnnIInnO/Recruiting2.0/internal/server/ratelimit"
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the persistence layer used by the handlers. *db.DB implements it.
type Store interface {
	seed.Store

	Ping(ctx context.Context) error

	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetOrCreateUser(ctx context.Context, email, name string) (*db.User, error)
	UpdateUserAssessment(ctx context.Context, userID uuid.UUID, category types.Category, profile types.Profile) (*db.User, error)

	GetCompanyByID(ctx context.Context, id uuid.UUID) (*db.Company, error)
	ListCompanies(ctx context.Context) ([]db.Company, error)

	GetJobPostingByID(ctx context.Context, id uuid.UUID) (*db.JobPosting, error)
	ListJobPostings(ctx context.Context, activeOnly bool) ([]db.JobPosting, error)

	GetApplication(ctx context.Context, userID, jobID uuid.UUID) (*db.Application, error)
	CreateApplication(ctx context.Context, input *db.ApplicationInput) (*db.Application, error)
	ListUserApplications(ctx context.Context, userID uuid.UUID) ([]db.Application, error)
	ListCompanyApplications(ctx context.Context, companyID uuid.UUID) ([]db.Application, error)
	ListApplicationScores(ctx context.Context, jobID uuid.UUID) ([]float64, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	engine      *matching.Engine
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	seedCatalog *seed.Catalog

	recommendationLimit int
	bestMatches         int
	workers             int
}

// Config holds server configuration
type Config struct {
	Port   int
	Store  Store
	Engine *matching.Engine
	Logger *zap.Logger

	// RateLimit is nil to use the limiter defaults.
	RateLimit *ratelimit.Config
	// SeedCatalog is loaded by POST /seed-data; nil uses the embedded catalog.
	SeedCatalog *seed.Catalog

	RecommendationLimit int
	BestMatches         int
	Workers             int
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if cfg.Engine == nil {
		cfg.Engine = matching.NewEngine(matching.DefaultConfig())
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.RecommendationLimit <= 0 {
		cfg.RecommendationLimit = 10
	}

	s := &Server{
		store:               cfg.Store,
		engine:              cfg.Engine,
		logger:              cfg.Logger,
		rateLimiter:         ratelimit.NewLimiter(cfg.RateLimit),
		seedCatalog:         cfg.SeedCatalog,
		recommendationLimit: cfg.RecommendationLimit,
		bestMatches:         cfg.BestMatches,
		workers:             cfg.Workers,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /seed-data", s.handleSeedData)

	// Catalogue
	mux.HandleFunc("GET /companies", s.handleListCompanies)
	mux.HandleFunc("GET /companies/{company_id}/applications", s.handleCompanyApplications)

	// Assessments
	mux.HandleFunc("GET /assessments/{type}/questions", s.handleQuestions)
	mux.HandleFunc("POST /assessments/{type}/submit", s.handleSubmitAssessment)
	mux.HandleFunc("POST /webhooks/assessment/{type}", s.handleAssessmentWebhook)

	// Users
	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("GET /users/{email}", s.handleGetUser)
	mux.HandleFunc("GET /users/{email}/profile", s.handleGetProfile)
	mux.HandleFunc("GET /users/{email}/assessment-status", s.handleAssessmentStatus)
	mux.HandleFunc("GET /users/{email}/recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /users/{email}/matching-insights", s.handleMatchingInsights)
	mux.HandleFunc("GET /users/{email}/applications", s.handleUserApplications)

	// Jobs
	mux.HandleFunc("GET /jobs/{job_id}/match/{email}", s.handleJobMatch)
	mux.HandleFunc("POST /jobs/{job_id}/apply", s.handleApply)
	mux.HandleFunc("GET /jobs/{job_id}/stats", s.handleJobStats)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs every request with its status and duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_addr", r.RemoteAddr),
		)
	})
}

// withRateLimit rejects clients that exceeded their request budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.Method, r.URL.Path)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller by the IP of RemoteAddr.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Round(time.Second).Seconds())
	if info.RetryAfter > 0 && retryAfter == 0 {
		retryAfter = 1
	}
	if retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", clientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"limit":       info.Limit,
		"retry_after": retryAfter,
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
