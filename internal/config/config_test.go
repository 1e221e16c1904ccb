package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/credential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.SeedDemo)
	assert.Equal(t, "8h", cfg.JWT.AccessExpiration)
	assert.Equal(t, credential.ModePlain, cfg.Auth.PasswordMode)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.Cron.TokenPurgeInterval)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTH_PASSWORD_MODE", "bcrypt")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TOKEN_PURGE_INTERVAL", "15m")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, credential.ModeBcrypt, cfg.Auth.PasswordMode)
	assert.False(t, cfg.App.SeedDemo)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.Cron.TokenPurgeInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET_KEY": ""}},
		{"bad port", map[string]string{"APP_PORT": "http"}},
		{"bad mode", map[string]string{"AUTH_PASSWORD_MODE": "md5"}},
		{"bad expiration", map[string]string{"JWT_ACCESS_EXPIRATION_TIME": "forever"}},
		{"bad purge interval", map[string]string{"TOKEN_PURGE_INTERVAL": "-1h"}},
		{"bad seed flag", map[string]string{"SEED_DEMO_DATA": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "test-secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			assert.Error(t, err)
		})
	}
}
