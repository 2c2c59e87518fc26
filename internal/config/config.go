// Package config provides configuration loading and validation for the
// service and the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OnnIInnO/Recruiting2.0/internal/matching"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "RECRUITING"

// Config represents the service configuration. Values come from defaults, an
// optional YAML file and RECRUITING_* environment variables, in increasing
// order of precedence.
type Config struct {
	DatabaseURL string `mapstructure:"database_url"`
	Port        int    `mapstructure:"port" validate:"min=1,max=65535"`
	Environment string `mapstructure:"environment" validate:"oneof=development test production"`

	Log             LogConfig             `mapstructure:"log"`
	Matching        MatchingConfig        `mapstructure:"matching"`
	Recommendations RecommendationsConfig `mapstructure:"recommendations"`
	Insights        InsightsConfig        `mapstructure:"insights"`
	RateLimit       RateLimitConfig       `mapstructure:"rate_limit"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// MatchingConfig controls the matching engine.
type MatchingConfig struct {
	// ConfigFile is an optional YAML file overriding the engine weights.
	ConfigFile string `mapstructure:"config_file"`
	// Workers bounds the goroutines used for batch scoring; 0 means one per CPU.
	Workers int `mapstructure:"workers" validate:"min=0,max=256"`
}

// RecommendationsConfig controls the recommendations endpoint.
type RecommendationsConfig struct {
	Limit int `mapstructure:"limit" validate:"min=1,max=100"`
}

// InsightsConfig controls the matching insights endpoint.
type InsightsConfig struct {
	BestMatches int `mapstructure:"best_matches" validate:"min=1,max=20"`
}

// RateLimitConfig controls the per-client request limiter of the HTTP server.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit" validate:"min=0"`
	DefaultWindow   time.Duration `mapstructure:"default_window" validate:"min=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"min=0"`
	// Allowlist and Denylist are comma separated client IPs.
	Allowlist string `mapstructure:"allowlist"`
	Denylist  string `mapstructure:"denylist"`
}

// ErrMissingDatabaseURL is returned when a command needs the database but no
// URL is configured.
var ErrMissingDatabaseURL = errors.New("database URL is required (set RECRUITING_DATABASE_URL or DATABASE_URL)")

func setDefaults(v *viper.Viper) {
	v.SetDefault("database_url", "")
	v.SetDefault("port", 8080)
	v.SetDefault("environment", "development")
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("matching.config_file", "")
	v.SetDefault("matching.workers", 0)
	v.SetDefault("recommendations.limit", 10)
	v.SetDefault("insights.best_matches", 3)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.allowlist", "")
	v.SetDefault("rate_limit.denylist", "")
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// DATABASE_URL is honoured for compatibility with hosting platforms.
	if err := v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database_url: %w", err)
	}
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// The database URL is not checked here, see RequireDatabase.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// RequireDatabase returns ErrMissingDatabaseURL when no database is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// EngineConfig returns the matching engine configuration, read from
// Matching.ConfigFile when set.
func (c *Config) EngineConfig() (matching.Config, error) {
	if c.Matching.ConfigFile == "" {
		return matching.DefaultConfig(), nil
	}
	return matching.LoadConfigFromFile(c.Matching.ConfigFile)
}
