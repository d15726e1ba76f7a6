// Package config loads typed application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env       string `env:"APP_ENV" env-default:"development"`
	Server    ServerConfig
	Database  DatabaseConfig
	Telemetry TelemetryConfig
	Suggest   SuggestConfig
}

type ServerConfig struct {
	Addr            string        `env:"SERVER_ADDR" env-default:":7777"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig configures the Postgres store. An empty URL selects the
// in-memory store, which keeps local development dependency-free.
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" env-default:"10"`
}

type TelemetryConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" env-default:"false"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" env-default:"claritymeet-api"`
}

type SuggestConfig struct {
	OpenAIKey   string        `env:"OPENAI_API_KEY"`
	OpenAIModel string        `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	Timeout     time.Duration `env:"SUGGEST_TIMEOUT" env-default:"15s"`
}

// Load reads .env if present, then populates Config from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
