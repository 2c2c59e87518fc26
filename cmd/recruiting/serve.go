package main

import (
	"context"
	"fmt"

	"github.com/OnnIInnO/Recruiting2.0/internal/matching"
	"github.com/OnnIInnO/Recruiting2.0/internal/server"
	"github.com/OnnIInnO/Recruiting2.0/internal/server/ratelimit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the assessment, recommendation and application endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if servePort > 0 {
		cfg.Port = servePort
	}

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}

	database, err := openDatabase(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer database.Close()

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Store:  database,
		Engine: matching.NewEngine(engineCfg),
		Logger: log,
		RateLimit: &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			DefaultLimit:    cfg.RateLimit.DefaultLimit,
			DefaultWindow:   cfg.RateLimit.DefaultWindow,
			CleanupInterval: cfg.RateLimit.CleanupInterval,
			Allowlist:       ratelimit.ParseIPList(cfg.RateLimit.Allowlist),
			Denylist:        ratelimit.ParseIPList(cfg.RateLimit.Denylist),
			Endpoints:       ratelimit.DefaultEndpoints(),
		},
		RecommendationLimit: cfg.Recommendations.Limit,
		BestMatches:         cfg.Insights.BestMatches,
		Workers:             cfg.Matching.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info("matching engine configured",
		zap.Float64("skills_weight", engineCfg.Weights.Skills),
		zap.Float64("wellbeing_weight", engineCfg.Weights.Wellbeing),
		zap.Float64("values_weight", engineCfg.Weights.Values),
	)
	return srv.Start()
}
