// Package config loads HydroQuest settings from the environment.
package config

import "time"

// Local store backends
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds all application configuration loaded from environment variables.
// Fields are parsed with github.com/caarlos0/env; an optional .env file is read first.
type Config struct {
	// Local device storage
	Store  string `env:"HYDRO_STORE" envDefault:"sqlite"`
	DBPath string `env:"HYDRO_DB_PATH" envDefault:".hydroquest/hydroquest.db"`

	// Redis holds the remote documents and accounts, and the local store when HYDRO_STORE=redis
	RedisAddr       string `env:"HYDRO_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"HYDRO_REDIS_PASSWORD"`
	RedisDB         int    `env:"HYDRO_REDIS_DB" envDefault:"0"`
	RedisMaxRetries uint64 `env:"HYDRO_REDIS_MAX_RETRIES" envDefault:"5"`

	// Game rules
	RateLimitWindowMinutes float64 `env:"HYDRO_RATE_LIMIT_WINDOW_MINUTES" envDefault:"5"`

	// Daemon
	TickInterval time.Duration `env:"HYDRO_TICK_INTERVAL" envDefault:"1s"`
	MetricsAddr  string        `env:"HYDRO_METRICS_ADDR"`

	// Accounts
	JWTSecret  string        `env:"HYDRO_JWT_SECRET" envDefault:"hydroquest-local-secret"`
	TokenTTL   time.Duration `env:"HYDRO_TOKEN_TTL" envDefault:"72h"`
	DeviceType string        `env:"HYDRO_DEVICE_TYPE" envDefault:"cli"`

	LogLevel string `env:"HYDRO_LOG_LEVEL" envDefault:"warn"`
}
