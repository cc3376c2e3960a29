package eventlog

import (
	"context"
	"encoding/json"

	"github.com/windrow/farmstead/internal/event"
	"github.com/windrow/farmstead/internal/logger"
)

// Service wires the event bus into the persistent log
type Service interface {
	// Subscribe registers the logger on every game event type
	Subscribe(bus event.Bus)

	// RecentEntries returns the newest entries matching the filter
	RecentEntries(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEntries removes entries older than the retention period
	CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates the event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.PlayerCreated,
		event.SeedPlanted,
		event.PlantHarvested,
		event.MerchantSpawned,
	} {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// handleEvent persists one notification record. Logging failures are
// reported to the bus but never abort game actions.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Warn("Failed to encode event payload, skipping log", "type", evt.Type, "error", err)
		return nil
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), ownerOf(evt), string(payload)); err != nil {
		log.Error("Failed to persist event log entry", "type", evt.Type, "error", err)
		return err
	}

	log.Debug("Event logged", "type", evt.Type)
	return nil
}

func (s *service) RecentEntries(ctx context.Context, filter Filter) ([]Entry, error) {
	return s.repo.GetEntries(ctx, filter)
}

func (s *service) CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEntries(ctx, retentionDays)
}

// ownerOf extracts the acting player's owner ID when the payload carries one
func ownerOf(evt event.Event) *string {
	switch p := evt.Payload.(type) {
	case event.PlayerCreatedPayloadV1:
		return &p.OwnerID
	case event.SeedPlantedPayloadV1:
		return &p.OwnerID
	case event.PlantHarvestedPayloadV1:
		return &p.OwnerID
	default:
		return nil
	}
}
