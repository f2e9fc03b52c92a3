package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(EnvPrefix+k, v)
	}
}

func TestLoadConfigPostgres(t *testing.T) {
	setEnv(t, map[string]string{
		"PRIMARY__ENV":                 "production",
		"SERVER__PORT":                 "8080",
		"SERVER__CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
		"DATABASE__HOST":               "db",
		"DATABASE__PORT":               "5432",
		"DATABASE__USER":               "person",
		"DATABASE__PASSWORD":           "secret",
		"DATABASE__NAME":               "persons",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Integration.NotificationsEnabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.False(t, cfg.IsLocal())
}

func TestLoadConfigSQLiteNeedsNoNetworkSettings(t *testing.T) {
	setEnv(t, map[string]string{
		"PRIMARY__ENV":     "local",
		"SERVER__PORT":     "8080",
		"DATABASE__DRIVER": "sqlite",
		"DATABASE__PATH":   "persons.db",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.IsLocal())
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
}

func TestLoadConfigRejectsMissingPostgresSettings(t *testing.T) {
	setEnv(t, map[string]string{
		"PRIMARY__ENV": "production",
		"SERVER__PORT": "8080",
	})

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Host")
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	setEnv(t, map[string]string{
		"PRIMARY__ENV":     "production",
		"SERVER__PORT":     "8080",
		"DATABASE__DRIVER": "mysql",
	})

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigAuthNeedsSecret(t *testing.T) {
	setEnv(t, map[string]string{
		"PRIMARY__ENV":     "production",
		"SERVER__PORT":     "8080",
		"DATABASE__DRIVER": "sqlite",
		"DATABASE__PATH":   "persons.db",
		"AUTH__ENABLED":    "true",
	})

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SecretKey")
}

func TestLoadConfigPartialObservability(t *testing.T) {
	setEnv(t, map[string]string{
		"PRIMARY__ENV":                        "development",
		"SERVER__PORT":                        "8080",
		"DATABASE__DRIVER":                    "sqlite",
		"DATABASE__PATH":                      "persons.db",
		"OBSERVABILITY__LOGGING__LEVEL":       "warn",
		"OBSERVABILITY__HEALTH_CHECKS__CHECKS": "database",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	obs := cfg.Observability
	assert.Equal(t, "warn", obs.GetLogLevel())
	assert.Equal(t, "json", obs.Logging.Format)
	assert.Equal(t, 5*time.Second, obs.HealthChecks.Timeout)
	assert.Equal(t, []string{"database"}, obs.HealthChecks.Checks)
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	setEnv(t, map[string]string{
		"PRIMARY__ENV":                  "development",
		"SERVER__PORT":                  "8080",
		"DATABASE__DRIVER":              "sqlite",
		"DATABASE__PATH":                "persons.db",
		"OBSERVABILITY__LOGGING__LEVEL": "verbose",
	})

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestEnvKeyValue(t *testing.T) {
	key, value := envKeyValue("PERSONAPI_DATABASE__SSL_MODE", "require")
	assert.Equal(t, "database.ssl_mode", key)
	assert.Equal(t, "require", value)

	key, value = envKeyValue("PERSONAPI_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database,redis")
	assert.Equal(t, "observability.health_checks.checks", key)
	assert.Equal(t, []string{"database", "redis"}, value)
}

func TestChecksEnabled(t *testing.T) {
	obs := DefaultObservabilityConfig()
	assert.True(t, obs.ChecksEnabled("database"))
	assert.True(t, obs.ChecksEnabled("redis"))
	assert.False(t, obs.ChecksEnabled("kafka"))

	obs.HealthChecks.Enabled = false
	assert.False(t, obs.ChecksEnabled("database"))
}
