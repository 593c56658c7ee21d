package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "auth-service", cfg.App.Name)
	require.Equal(t, "3000", cfg.App.Port)
	require.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, time.Hour, cfg.Auth.TokenTTL())
	require.Equal(t, 900000, cfg.RateLimit.WindowMillis)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "15")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL())
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Equal(t, "debug", cfg.Logger.Level)
}

func TestAuthConfig_TokenTTLFloor(t *testing.T) {
	ttl := AuthConfig{TokenTTLMinutes: 0}.TokenTTL()
	require.Equal(t, time.Hour, ttl)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
