package bootstrap

import (
	"context"
	"log/slog"

	"github.com/windrow/farmstead/internal/eventlog"
	"github.com/windrow/farmstead/internal/server"
)

// ShutdownComponents holds the components that need graceful shutdown
type ShutdownComponents struct {
	Server       *server.Server
	EventLogRepo *eventlog.SQLiteRepository
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then closes the event log once in-flight handlers have drained.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info("Shutting down server")

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}

	if components.EventLogRepo != nil {
		if err := components.EventLogRepo.Close(); err != nil {
			slog.Error("Event log close failed", "error", err)
		}
	}

	slog.Info("Server stopped")
}
