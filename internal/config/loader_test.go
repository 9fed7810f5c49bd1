package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5.0, cfg.RateLimitWindowMinutes)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "cli", cfg.DeviceType)
	assert.Empty(t, cfg.MetricsAddr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HYDRO_STORE", "redis")
	t.Setenv("HYDRO_RATE_LIMIT_WINDOW_MINUTES", "2.5")
	t.Setenv("HYDRO_TICK_INTERVAL", "250ms")
	t.Setenv("HYDRO_METRICS_ADDR", ":9090")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, 2.5, cfg.RateLimitWindowMinutes)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HYDRO_DEVICE_TYPE=laptop\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HYDRO_DEVICE_TYPE") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "laptop", cfg.DeviceType)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("HYDRO_TICK_INTERVAL", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:                  StoreSQLite,
			DBPath:                 "hydro.db",
			RedisAddr:              "localhost:6379",
			RateLimitWindowMinutes: 5,
			TickInterval:           time.Second,
			TokenTTL:               time.Hour,
			JWTSecret:              "secret",
			LogLevel:               "info",
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown store", mutate: func(c *Config) { c.Store = "memory" }},
		{name: "missing db path", mutate: func(c *Config) { c.DBPath = "" }},
		{name: "missing redis addr", mutate: func(c *Config) { c.RedisAddr = "" }},
		{name: "zero window", mutate: func(c *Config) { c.RateLimitWindowMinutes = 0 }},
		{name: "zero tick", mutate: func(c *Config) { c.TickInterval = 0 }},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }},
		{name: "missing secret", mutate: func(c *Config) { c.JWTSecret = "" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	redis := valid()
	redis.Store = StoreRedis
	redis.DBPath = ""
	assert.NoError(t, redis.Validate())
}
