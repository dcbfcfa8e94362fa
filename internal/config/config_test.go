package config_test

import (
	"landregistry/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "landregistry", cfg.Database.DatabaseName)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	require.Equal(t, 5, cfg.Auth.MaxLoginFailures)
	require.Equal(t, 15*time.Minute, cfg.Auth.LockoutDuration)
	require.Equal(t, "Land Management System", cfg.Auth.TOTPIssuer)
	require.Empty(t, cfg.Mail.SMTPHost)
	require.InDelta(t, 5.0, cfg.Mail.RatePerSecond, 0.0001)
	require.Equal(t, time.Hour, cfg.Worker.ExpirySweepInterval)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://cache:6379/2")

	cfg, err := config.Load(writeConfig(t, `
http:
  addr: ":9090"
database:
  host: db
  port: 6543
redis:
  url: redis://ignored:6379/0
auth:
  otpMaxAttempts: 3
worker:
  mailWorkers: 2
`))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, 6543, cfg.Database.Port)
	require.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	require.Equal(t, 3, cfg.Auth.OTPMaxAttempts)
	require.Equal(t, 2, cfg.Worker.MailWorkers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
