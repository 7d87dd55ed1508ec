package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/movies")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TMDB_ACCESS_TOKEN", "tmdb-token")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg := Load()
	require.NoError(t, cfg.Validate())

	require.Equal(t, "movie-service", cfg.Service.Name)
	require.Equal(t, "8080", cfg.Service.Port)
	require.Equal(t, time.Hour, cfg.Token.TTL)
	require.Equal(t, 30*24*time.Hour, cfg.Token.RememberMeTTL)
	require.False(t, cfg.Token.CookieSecure)
	require.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, 10*time.Second, cfg.GetShutdownTimeoutDuration())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("READINESS_DRAIN_DELAY_SECONDS", "5")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	require.Equal(t, "9090", cfg.Service.Port)
	require.Equal(t, 15*time.Minute, cfg.Token.TTL)
	require.True(t, cfg.Token.CookieSecure)
	require.True(t, cfg.Tracing.Enabled)
	require.Equal(t, 5*time.Second, cfg.GetReadinessDrainDelayDuration())
}

func TestValidate_MissingRequired(t *testing.T) {
	cases := []struct {
		name string
		omit string
	}{
		{"database url", "DATABASE_URL"},
		{"jwt secret", "JWT_SECRET"},
		{"tmdb token", "TMDB_ACCESS_TOKEN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.omit, "")

			require.Error(t, Load().Validate())
		})
	}
}
