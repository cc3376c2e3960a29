package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/windrow/farmstead/internal/domain"
)

// EventSchemaVersion is the current event envelope version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Notification types emitted by the game engine.
// These records are consumed externally; the engine never reads them back.
const (
	PlayerCreated   Type = "player.created"
	SeedPlanted     Type = "seed.planted"
	PlantHarvested  Type = "plant.harvested"
	MerchantSpawned Type = "merchant.spawned"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// PlayerCreatedPayloadV1 is the typed payload for player creation events
type PlayerCreatedPayloadV1 struct {
	OwnerID   string `json:"owner_id"`
	PlayerID  string `json:"player_id"`
	Timestamp int64  `json:"timestamp"`
}

// SeedPlantedPayloadV1 is the typed payload for planting events
type SeedPlantedPayloadV1 struct {
	OwnerID  string `json:"owner_id"`
	CropName string `json:"crop_name"`
	X        uint   `json:"x"`
	Y        uint   `json:"y"`
}

// PlantHarvestedPayloadV1 is the typed payload for harvest events
type PlantHarvestedPayloadV1 struct {
	OwnerID  string `json:"owner_id"`
	CropName string `json:"crop_name"`
	Yield    uint   `json:"yield"`
	X        uint   `json:"x"`
	Y        uint   `json:"y"`
}

// MerchantSpawnedPayloadV1 is the typed payload for merchant rotation events
type MerchantSpawnedPayloadV1 struct {
	MerchantID string    `json:"merchant_id"`
	Name       string    `json:"name"`
	OfferCount int       `json:"offer_count"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Type-safe event constructors

// NewPlayerCreatedEvent creates a player creation event
func NewPlayerCreatedEvent(p *domain.Player) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerCreated,
		Payload: PlayerCreatedPayloadV1{
			OwnerID:   p.OwnerID,
			PlayerID:  p.ID,
			Timestamp: p.CreatedAt.Unix(),
		},
	}
}

// NewSeedPlantedEvent creates a planting event
func NewSeedPlantedEvent(ownerID, cropName string, coord domain.Coordinate) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SeedPlanted,
		Payload: SeedPlantedPayloadV1{
			OwnerID:  ownerID,
			CropName: cropName,
			X:        coord.X,
			Y:        coord.Y,
		},
	}
}

// NewPlantHarvestedEvent creates a harvest event
func NewPlantHarvestedEvent(ownerID, cropName string, yield uint, coord domain.Coordinate) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantHarvested,
		Payload: PlantHarvestedPayloadV1{
			OwnerID:  ownerID,
			CropName: cropName,
			Yield:    yield,
			X:        coord.X,
			Y:        coord.Y,
		},
	}
}

// NewMerchantSpawnedEvent creates a merchant rotation event
func NewMerchantSpawnedEvent(m *domain.Merchant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MerchantSpawned,
		Payload: MerchantSpawnedPayloadV1{
			MerchantID: m.ID,
			Name:       m.Name,
			OfferCount: len(m.Offers),
			ExpiresAt:  m.ExpiresAt,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a failing handler never blocks the rest.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
