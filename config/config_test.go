package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8000", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "hotelier", AppConfig.DatabaseName)
	assert.Equal(t, "mongodb://localhost:27017", AppConfig.DatabaseURL)
	assert.Equal(t, "http://localhost:5173", AppConfig.FrontendURL)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, "localhost:6379", AppConfig.RedisAddr)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("APP_PORT", "9100")
	t.Setenv("FRONTEND_URL", "https://app.example.com")

	LoadConfig()

	assert.Equal(t, "production", AppConfig.Env)
	assert.Equal(t, "9100", AppConfig.AppPort)
	assert.Equal(t, "https://app.example.com", AppConfig.FrontendURL)
	assert.True(t, IsProduction())
}
