package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// ContentType is the only request Content-Type the analysis endpoint accepts.
const ContentType = "application/json"

// SupportedEncodings is the allow-list of Accept-Encoding tokens the service can honour.
var SupportedEncodings = []string{"identity", "gzip", "deflate"}

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	TextAccessSecret string `env:"TEXT_ACCESS_SECRET"`
	AcceptMediaType  string `env:"ACCEPT_MEDIA_TYPE" default:"application/vnd.premier.v1.hal+json"`

	ScoringConcurrency int    `env:"SCORING_CONCURRENCY" default:"4"`
	MaxBodySize        string `env:"MAX_BODY_SIZE" default:"1M"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.TextAccessSecret == "" {
		return errors.New("TEXT_ACCESS_SECRET is required")
	}
	if len(cfg.TextAccessSecret) < 8 {
		return errors.New("TEXT_ACCESS_SECRET must be at least 8 characters")
	}
	if cfg.AcceptMediaType == "" {
		return errors.New("ACCEPT_MEDIA_TYPE must not be empty")
	}
	if cfg.ScoringConcurrency < 1 {
		return fmt.Errorf("SCORING_CONCURRENCY must be at least 1, got %d", cfg.ScoringConcurrency)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return nil
}
