package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/windrow/farmstead/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // Protects file writes
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event. If it fails, it initiates a background retry loop.
// It returns nil to the caller immediately if the event is accepted for processing (even if
// the first attempt fails). This decouples the caller from the retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.Warn("Failed to publish event, initiating async retry",
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	// The original request context may already be cancelled, so the retry
	// loop runs detached.
	go p.retryLoop(event)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	ctx := context.Background()

	for i := 1; i <= p.config.MaxRetries; i++ {
		// Linear backoff
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			logger.Info("Successfully published event after retry",
				"event_type", event.Type,
				"attempt", i)
			return
		}

		logger.Warn("Retry failed",
			"event_type", event.Type,
			"attempt", i,
			"error", err)
	}

	p.writeToDeadLetter(event)
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Error("Failed to open dead letter file", "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	type DeadLetterEntry struct {
		Timestamp time.Time `json:"timestamp"`
		Event     Event     `json:"event"`
	}

	entry := DeadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
	}

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		logger.Error("Failed to write to dead letter file", "error", err)
	} else {
		logger.Info("Event written to dead letter queue", "event_type", event.Type)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
