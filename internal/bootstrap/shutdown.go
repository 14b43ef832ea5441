package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CaseForge_Go/internal/server"
)

// ShutdownComponents holds everything that needs a graceful stop.
type ShutdownComponents struct {
	Server *server.Server
	Events *EventSystem
}

// GracefulShutdown stops accepting requests, waits for event retries to drain
// and closes the dead-letter file. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Events != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.Events.Bus.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
		if c.Events.DeadLetter != nil {
			if err := c.Events.DeadLetter.Close(); err != nil {
				slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
			}
		}
	}

	slog.Info(LogMsgServerStopped)
}
