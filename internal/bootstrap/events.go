package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/metrics"
)

// EventSystem is the bus services publish to plus the pieces that need
// shutting down.
type EventSystem struct {
	// Bus retries failed deliveries and dead-letters what it cannot deliver.
	Bus        *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
}

// InitializeEventSystem builds the in-memory bus, wraps it in a resilient
// publisher backed by the dead-letter file and subscribes the metrics
// collector.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}
	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDeadLetter, err)
	}

	publisher := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
	}, deadLetter)

	RegisterEventHandlers(publisher)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", deadLetterPath)

	return &EventSystem{Bus: publisher, DeadLetter: deadLetter}, nil
}

// RegisterEventHandlers subscribes every in-process event consumer.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
