package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Empty(t, cfg.CatalogPath, "embedded catalog by default")
		assert.Equal(t, uint64(0), cfg.RNGSeed)
		assert.Equal(t, 1024, cfg.SessionCacheSize)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, 500, cfg.StartingBalance)
		assert.False(t, cfg.AdminEnabled())
		assert.Equal(t, DefaultDeadLetterPath, cfg.EventDeadLetterPath)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvCatalogPath, "/etc/caseforge/catalog.json")
		t.Setenv(EnvTuningPath, "/etc/caseforge/tuning.yaml")
		t.Setenv(EnvRNGSeed, "42")
		t.Setenv(EnvSessionCacheSize, "16")
		t.Setenv(EnvSessionTTL, "5m")
		t.Setenv(EnvStartingBalance, "0")
		t.Setenv(EnvAdminAPIKey, "secret")
		t.Setenv(EnvEventRetryDelay, "250ms")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, ,10.0.0.2")
		t.Setenv(EnvMaxBodyBytes, "4096")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "/etc/caseforge/catalog.json", cfg.CatalogPath)
		assert.Equal(t, "/etc/caseforge/tuning.yaml", cfg.TuningPath)
		assert.Equal(t, uint64(42), cfg.RNGSeed)
		assert.Equal(t, 16, cfg.SessionCacheSize)
		assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
		assert.Equal(t, 0, cfg.StartingBalance)
		assert.True(t, cfg.AdminEnabled())
		assert.Equal(t, 250*time.Millisecond, cfg.EventRetryDelay)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, int64(4096), cfg.MaxBodyBytes)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		tests := []struct {
			key, value string
		}{
			{EnvPort, "eighty"},
			{EnvRNGSeed, "-1"},
			{EnvStartingBalance, "-10"},
		}
		for _, tt := range tests {
			clearEnvVars(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err, tt.key)
		}
	})
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{name: "unset", value: nil, want: 42},
		{name: "valid", value: strPtr("100"), want: 100},
		{name: "negative", value: strPtr("-10"), want: -10},
		{name: "zero", value: strPtr("0"), want: 0},
		{name: "float", value: strPtr("42.5"), want: 42},
		{name: "garbage", value: strPtr("not-a-number"), want: 42},
		{name: "empty", value: strPtr(""), want: 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{name: "unset", value: nil, want: 5 * time.Minute},
		{name: "minutes", value: strPtr("10m"), want: 10 * time.Minute},
		{name: "complex", value: strPtr("1h30m45s"), want: time.Hour + 30*time.Minute + 45*time.Second},
		{name: "milliseconds", value: strPtr("500ms"), want: 500 * time.Millisecond},
		{name: "no unit", value: strPtr("100"), want: 5 * time.Minute},
		{name: "garbage", value: strPtr("soon"), want: 5 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{name: "no admin key", cfg: Config{}, want: []string{WarnMsgNoAdminKey}},
		{name: "example admin key", cfg: Config{AdminAPIKey: ExampleAdminAPIKey}, want: []string{WarnMsgExampleAdminKey}},
		{name: "fixed seed in production", cfg: Config{AdminAPIKey: "k", Environment: "production", RNGSeed: 7}, want: []string{WarnMsgFixedSeedProd}},
		{name: "fixed seed in dev is fine", cfg: Config{AdminAPIKey: "k", RNGSeed: 7}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Warnings())
		})
	}
}

func strPtr(s string) *string { return &s }

func setOrUnset(t *testing.T, key string, value *string) {
	t.Helper()
	if value != nil {
		t.Setenv(key, *value)
		return
	}
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// clearEnvVars unsets every config variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvCatalogPath, EnvTuningPath, EnvRNGSeed, EnvSessionCacheSize, EnvSessionTTL,
		EnvStartingBalance, EnvAdminAPIKey, EnvDeadLetterPath, EnvEventMaxRetries, EnvEventRetryDelay,
		EnvTrustedProxies, EnvMaxBodyBytes,
	}
	for _, key := range envVars {
		setOrUnset(t, key, nil)
	}
}
