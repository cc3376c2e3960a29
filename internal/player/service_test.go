package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windrow/farmstead/internal/clock"
	"github.com/windrow/farmstead/internal/domain"
	"github.com/windrow/farmstead/internal/inventory"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	clk := clock.NewManual(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	return NewService(NewMemoryRepository(), clk)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds starting inventory", func(t *testing.T) {
		svc := newTestService(t)

		p, err := svc.Register(ctx, "owner-1")
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "owner-1", p.OwnerID)

		inv, err := svc.Inventory(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, domain.Ledger{"carrot": 5, "tomato": 3}, inventory.Snapshot(inv, domain.CategorySeed))
		assert.Equal(t, domain.Ledger{"shovel": 1, "wateringCan": 1}, inventory.Snapshot(inv, domain.CategoryTool))
		assert.Empty(t, inventory.Snapshot(inv, domain.CategoryFertilizer))
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Register(ctx, "owner-1")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "owner-1")
		assert.ErrorIs(t, err, domain.ErrPlayerAlreadyExists)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown owner", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Get(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("cached lookup returns same player", func(t *testing.T) {
		svc := newTestService(t)
		registered, err := svc.Register(ctx, "owner-1")
		require.NoError(t, err)

		first, err := svc.Get(ctx, "owner-1")
		require.NoError(t, err)
		second, err := svc.Get(ctx, "owner-1")
		require.NoError(t, err)

		assert.Equal(t, registered.ID, first.ID)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestInventoryUnknownPlayer(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Inventory(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
