package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	Port           int           `env:"PORT" envDefault:"8000"`
	MongoURI       string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName    string        `env:"MONGODB_DB_NAME" envDefault:"memory_game_study"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigin  string        `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// Redis backs the idempotency guard on the write endpoints. Leaving
	// RedisAddr empty disables the guard.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Admin surface. Leaving AdminPasswordHash empty disables admin routes.
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"secret"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

// Load reads configuration from environment variables. It attempts to load a
// .env file first (for local development), then parses the environment into
// the Config struct.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate performs sanity checks that env parsing cannot express.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI must not be empty")
	}
	if c.MongoDBName == "" {
		return fmt.Errorf("MONGODB_DB_NAME must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}

// AdminEnabled reports whether the researcher admin surface is configured.
func (c *Config) AdminEnabled() bool {
	return c.AdminPasswordHash != ""
}
