package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/api/auth", cfg.API.AuthPrefix)
	assert.Equal(t, "/joboffers", cfg.API.JobsPrefix)
	assert.Equal(t, "/api/applications", cfg.API.ApplicationsPrefix)
	assert.Equal(t, "/students", cfg.API.StudentsPrefix)
	assert.Equal(t, "/api/files", cfg.API.FilesPrefix)
	assert.Equal(t, "/ai", cfg.API.AIPrefix)
	assert.Equal(t, StoreFile, cfg.Token.Store)
	assert.Equal(t, "~/.recruitctl/token", cfg.Token.File)
	assert.Equal(t, "3000", cfg.Portal.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"RECRUIT_API_URL":     "https://api.example.org",
		"RECRUIT_AUTH_PREFIX": "/auth",
		"RECRUIT_TIMEOUT":     "3s",
		"TOKEN_STORE":         "Redis",
		"TOKEN_REDIS_TTL":     "24h",
		"REDIS_DB":            "2",
		"LOG_PRETTY":          "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.org", cfg.API.BaseURL)
	assert.Equal(t, "/auth", cfg.API.AuthPrefix)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, StoreRedis, cfg.Token.Store)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TokenTTL)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.LogPretty)
}

func TestLoadFrom_RejectsUnknownStore(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"TOKEN_STORE": "sqlite",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_STORE")
}

func TestLoadFrom_RejectsBadDuration(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"RECRUIT_TIMEOUT": "soon",
	}))
	require.Error(t, err)
}
