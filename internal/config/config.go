package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// CatalogPath is a catalog JSON document; empty selects the embedded catalog.
	CatalogPath string
	// TuningPath is an optional YAML tuning overlay.
	TuningPath string
	// RNGSeed seeds the shared random source; 0 derives one from the clock.
	RNGSeed uint64

	SessionCacheSize int
	SessionTTL       time.Duration
	StartingBalance  int

	AdminAPIKey string
	// TrustedProxies may set X-Forwarded-For.
	TrustedProxies []string
	MaxBodyBytes   int64

	EventDeadLetterPath string
	EventMaxRetries     int
	EventRetryDelay     time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:           getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:         getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:         getEnv(EnvServiceName, "caseforge"),
		Version:             getEnv(EnvVersion, "dev"),
		CatalogPath:         getEnv(EnvCatalogPath, ""),
		TuningPath:          getEnv(EnvTuningPath, ""),
		SessionCacheSize:    getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:          getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		StartingBalance:     getEnvAsInt(EnvStartingBalance, DefaultStartingBalance),
		AdminAPIKey:         getEnv(EnvAdminAPIKey, ""),
		TrustedProxies:      getEnvAsList(EnvTrustedProxies),
		MaxBodyBytes:        int64(getEnvAsInt(EnvMaxBodyBytes, DefaultMaxBodyBytes)),
		EventDeadLetterPath: getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
		EventMaxRetries:     getEnvAsInt(EnvEventMaxRetries, DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration(EnvEventRetryDelay, DefaultEventRetryDelay),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPortFmt, EnvPort, err)
	}
	cfg.Port = port

	if raw := getEnv(EnvRNGSeed, ""); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidSeedFmt, EnvRNGSeed, raw, err)
		}
		cfg.RNGSeed = seed
	}

	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf(ErrMsgNegativeFmt, EnvStartingBalance, cfg.StartingBalance)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// AdminEnabled reports whether admin endpoints are served.
func (c *Config) AdminEnabled() bool {
	return c.AdminAPIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when
// unset or malformed.
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a time.Duration variable ("30s", "10m"), falling back
// to the default when unset or malformed.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
