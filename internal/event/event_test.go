package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windrow/farmstead/internal/domain"
)

func TestMemoryBus(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to subscribers", func(t *testing.T) {
		bus := NewMemoryBus()

		var received []Event
		bus.Subscribe(SeedPlanted, func(ctx context.Context, e Event) error {
			received = append(received, e)
			return nil
		})

		e := NewSeedPlantedEvent("owner-1", "carrot", domain.Coordinate{X: 4, Y: 4})
		require.NoError(t, bus.Publish(ctx, e))
		require.Len(t, received, 1)
		assert.Equal(t, SeedPlanted, received[0].Type)

		payload, ok := received[0].Payload.(SeedPlantedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, "carrot", payload.CropName)
		assert.Equal(t, uint(4), payload.X)
	})

	t.Run("no subscribers is not an error", func(t *testing.T) {
		bus := NewMemoryBus()
		err := bus.Publish(ctx, Event{Type: PlantHarvested})
		assert.NoError(t, err)
	})

	t.Run("handler error is reported but others still run", func(t *testing.T) {
		bus := NewMemoryBus()

		called := 0
		bus.Subscribe(PlayerCreated, func(ctx context.Context, e Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(PlayerCreated, func(ctx context.Context, e Event) error {
			called++
			return nil
		})

		err := bus.Publish(ctx, Event{Type: PlayerCreated})
		assert.Error(t, err)
		assert.Equal(t, 1, called)
	})

	t.Run("type isolation", func(t *testing.T) {
		bus := NewMemoryBus()

		called := false
		bus.Subscribe(MerchantSpawned, func(ctx context.Context, e Event) error {
			called = true
			return nil
		})

		require.NoError(t, bus.Publish(ctx, Event{Type: SeedPlanted}))
		assert.False(t, called)
	})
}

func TestEventConstructors(t *testing.T) {
	t.Run("merchant spawned", func(t *testing.T) {
		m := &domain.Merchant{
			ID:        "m-1",
			Name:      "Peddler Okra",
			Offers:    make([]domain.MerchantOffer, 3),
			ExpiresAt: time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC),
		}

		e := NewMerchantSpawnedEvent(m)
		assert.Equal(t, EventSchemaVersion, e.Version)
		assert.Equal(t, MerchantSpawned, e.Type)

		payload, ok := e.Payload.(MerchantSpawnedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, "m-1", payload.MerchantID)
		assert.Equal(t, 3, payload.OfferCount)
	})

	t.Run("plant harvested", func(t *testing.T) {
		e := NewPlantHarvestedEvent("owner-1", "carrot", 4, domain.Coordinate{X: 4, Y: 4})

		payload, ok := e.Payload.(PlantHarvestedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, uint(4), payload.Yield)
	})
}
