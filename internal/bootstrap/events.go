package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/windrow/farmstead/internal/config"
	"github.com/windrow/farmstead/internal/event"
)

// InitializeEventSystem creates the event bus and wraps it in a resilient
// publisher with retry and dead-letter handling.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("failed to create dead-letter directory: %w", err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: deadLetterPath,
	})

	slog.Info("Event system initialized",
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, publisher, nil
}
