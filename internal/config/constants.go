package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvTuningPath       = "TUNING_PATH"
	EnvRNGSeed          = "RNG_SEED"
	EnvSessionCacheSize = "SESSION_CACHE_SIZE"
	EnvSessionTTL       = "SESSION_TTL"
	EnvStartingBalance  = "STARTING_BALANCE"
	EnvAdminAPIKey      = "ADMIN_API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvMaxBodyBytes     = "MAX_BODY_BYTES"
	EnvDeadLetterPath   = "DEAD_LETTER_PATH"
	EnvEventMaxRetries  = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay  = "EVENT_RETRY_DELAY"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
	DefaultStartingBalance  = 500
	DefaultDeadLetterPath   = "data/deadletter.jsonl"
	DefaultEventMaxRetries  = 5
	DefaultEventRetryDelay  = 2 * time.Second
	DefaultMaxBodyBytes     = 1 << 20
)

// ExampleAdminAPIKey is the placeholder shipped in .env.example
const ExampleAdminAPIKey = "generate_with_openssl_rand_hex_32"

// Error messages
const (
	ErrMsgInvalidPortFmt    = "invalid %s value: %w"
	ErrMsgInvalidSeedFmt    = "invalid %s value %q: %w"
	ErrMsgNegativeFmt       = "%s must not be negative (got %d)"
	ErrMsgReadTuningFmt     = "failed to read tuning file: %w"
	ErrMsgParseTuningFmt    = "failed to parse tuning file %s: %w"
	ErrMsgInvalidTuningFmt  = "invalid %s tuning: %w"
	ErrMsgInvalidFeeRateFmt = "%w: crafting fee rate must be within [0,1) (got %v)"
)

// Warnings
const (
	WarnMsgNoAdminKey      = "ADMIN_API_KEY is not set - admin endpoints are disabled"
	WarnMsgExampleAdminKey = "ADMIN_API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgFixedSeedProd   = "RNG_SEED is fixed in production - every draw sequence is predictable"
)
