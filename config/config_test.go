package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "")
	t.Setenv("MAIL_PROVIDER", "")
	t.Setenv("SEED_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "noop", cfg.Mail.Provider)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.SeedFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_FILE", "/etc/mergington/activities.hcl")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://mergington.edu")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/etc/mergington/activities.hcl", cfg.SeedFile)
	assert.Equal(t, []string{"http://localhost:3000", "https://mergington.edu"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_SESRequiresCredentials(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("MAIL_PROVIDER", "ses")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
