package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from a .env file when present and then from the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	} else {
		logrus.Debug("loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Validate performs custom validation on the configuration
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("HYDRO_DB_PATH is required for the %s store", StoreSQLite)
		}
	case StoreRedis:
	default:
		return fmt.Errorf("invalid HYDRO_STORE: %q (must be %s or %s)", c.Store, StoreSQLite, StoreRedis)
	}

	if c.RedisAddr == "" {
		return fmt.Errorf("HYDRO_REDIS_ADDR is required")
	}

	if c.RateLimitWindowMinutes <= 0 {
		return fmt.Errorf("invalid HYDRO_RATE_LIMIT_WINDOW_MINUTES: %v (must be positive)", c.RateLimitWindowMinutes)
	}

	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid HYDRO_TICK_INTERVAL: %v (must be positive)", c.TickInterval)
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid HYDRO_TOKEN_TTL: %v (must be positive)", c.TokenTTL)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("HYDRO_JWT_SECRET is required")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid HYDRO_LOG_LEVEL: %w", err)
	}

	return nil
}
