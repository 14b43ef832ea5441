package event

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// ResilientPublisher wraps a Bus: a failed publish is retried in the background
// with exponential backoff and dead-lettered once retries are exhausted.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher. deadLetter may be nil,
// in which case exhausted events are only logged.
func NewResilientPublisher(inner Bus, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	return &ResilientPublisher{inner: inner, config: config, deadLetter: deadLetter}
}

// Publish delivers the event. A failed first attempt is handed to a background
// retry loop and nil is returned, decoupling the caller from delivery.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	slog.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			slog.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		slog.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	slog.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "attempts", p.config.MaxRetries)
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(event, p.config.MaxRetries+1, lastErr); err != nil {
		slog.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
		return
	}
	slog.Warn(LogMsgEventDeadLettered, "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for in-flight retries or until ctx is done.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
