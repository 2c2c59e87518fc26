package main

import (
	"context"
	"fmt"

	"github.com/OnnIInnO/Recruiting2.0/internal/config"
	"github.com/OnnIInnO/Recruiting2.0/internal/db"
	"github.com/OnnIInnO/Recruiting2.0/internal/logger"
	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

// openDatabase connects to the configured database and applies the schema.
func openDatabase(ctx context.Context, cfg *config.Config, log *zap.Logger) (*db.DB, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	log.Debug("database ready")
	return database, nil
}
