package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/windrow/farmstead/internal/config"
	"github.com/windrow/farmstead/internal/event"
	"github.com/windrow/farmstead/internal/eventlog"
)

// InitializeEventLog opens the SQLite notification log and subscribes it
// to every game event. The returned repository must be closed on shutdown.
func InitializeEventLog(cfg *config.Config, bus event.Bus) (*eventlog.SQLiteRepository, eventlog.Service, error) {
	repo, err := eventlog.OpenSQLite(cfg.EventLogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open event log: %w", err)
	}

	logSvc := eventlog.NewService(repo)
	logSvc.Subscribe(bus)

	slog.Info("Event log initialized", "path", cfg.EventLogPath)
	return repo, logSvc, nil
}
