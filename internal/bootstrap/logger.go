package bootstrap

import (
	"log/slog"

	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// SetupLogger installs the process-wide structured logger and reports any
// risky configuration.
func SetupLogger(cfg *config.Config) {
	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		!cfg.IsProduction(),
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_path", cfg.CatalogPath,
		"tuning_path", cfg.TuningPath,
		"session_cache_size", cfg.SessionCacheSize,
		"session_ttl", cfg.SessionTTL,
		"starting_balance", cfg.StartingBalance)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", w)
	}
}
