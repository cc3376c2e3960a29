package merchant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windrow/farmstead/internal/domain"
)

// fixedRoll always picks index 0
func fixedRoll(_ time.Time, _ uint) uint { return 0 }

func TestRefresh(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first refresh spawns a merchant", func(t *testing.T) {
		r := NewRotation(DefaultRefreshInterval, DefaultListingDuration, fixedRoll)

		spawned, ok := r.Refresh(start)
		require.True(t, ok)
		require.NotNil(t, spawned)
		assert.NotEmpty(t, spawned.ID)
		assert.Len(t, spawned.Offers, 3)
		assert.Equal(t, start.Add(DefaultListingDuration), spawned.ExpiresAt)
		assert.Len(t, r.Merchants(), 1)
	})

	t.Run("one offer per category", func(t *testing.T) {
		r := NewRotation(DefaultRefreshInterval, DefaultListingDuration, fixedRoll)
		spawned, ok := r.Refresh(start)
		require.True(t, ok)

		categories := make(map[domain.ItemCategory]int)
		for _, offer := range spawned.Offers {
			categories[offer.Category]++
		}
		assert.Equal(t, 1, categories[domain.CategorySeed])
		assert.Equal(t, 1, categories[domain.CategoryTool])
		assert.Equal(t, 1, categories[domain.CategoryFertilizer])
	})

	t.Run("refresh within interval is a no-op", func(t *testing.T) {
		r := NewRotation(5*time.Minute, DefaultListingDuration, fixedRoll)
		_, ok := r.Refresh(start)
		require.True(t, ok)

		spawned, ok := r.Refresh(start.Add(2 * time.Minute))
		assert.False(t, ok)
		assert.Nil(t, spawned)
		assert.Len(t, r.Merchants(), 1)
	})

	t.Run("refresh after interval spawns exactly one more", func(t *testing.T) {
		r := NewRotation(5*time.Minute, DefaultListingDuration, fixedRoll)
		_, ok := r.Refresh(start)
		require.True(t, ok)

		_, ok = r.Refresh(start.Add(5 * time.Minute))
		require.True(t, ok)
		assert.Len(t, r.Merchants(), 2)
	})

	t.Run("expired merchants are pruned", func(t *testing.T) {
		r := NewRotation(5*time.Minute, 10*time.Minute, fixedRoll)
		first, ok := r.Refresh(start)
		require.True(t, ok)

		// Past the first listing's expiry: prune old, spawn new
		second, ok := r.Refresh(start.Add(15 * time.Minute))
		require.True(t, ok)

		merchants := r.Merchants()
		require.Len(t, merchants, 1)
		assert.Equal(t, second.ID, merchants[0].ID)
		assert.NotEqual(t, first.ID, merchants[0].ID)
	})

	t.Run("no expired entry survives a rotation pass", func(t *testing.T) {
		r := NewRotation(time.Minute, 2*time.Minute, fixedRoll)
		now := start
		for i := 0; i < 10; i++ {
			now = now.Add(time.Minute)
			r.Refresh(now)
			for _, m := range r.Merchants() {
				assert.True(t, m.ExpiresAt.After(now))
			}
		}
	})
}

func TestDefaultRoll(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 7, 0, 0, time.UTC)

	t.Run("stays in bounds", func(t *testing.T) {
		for bound := uint(1); bound <= 10; bound++ {
			assert.Less(t, DefaultRoll(now, bound), bound)
		}
	})

	t.Run("zero bound", func(t *testing.T) {
		assert.Equal(t, uint(0), DefaultRoll(now, 0))
	})

	t.Run("deterministic for a fixed clock", func(t *testing.T) {
		assert.Equal(t, DefaultRoll(now, 7), DefaultRoll(now, 7))
	})
}

func TestFindAndOffer(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRotation(DefaultRefreshInterval, DefaultListingDuration, fixedRoll)
	spawned, ok := r.Refresh(start)
	require.True(t, ok)

	t.Run("find by id", func(t *testing.T) {
		m, err := r.Find(spawned.ID)
		require.NoError(t, err)
		assert.Equal(t, spawned.ID, m.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := r.Find("nope")
		assert.ErrorIs(t, err, domain.ErrMerchantNotFound)
	})

	t.Run("offer in range", func(t *testing.T) {
		offer, err := r.Offer(spawned.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.CategorySeed, offer.Category)
	})

	t.Run("offer out of range", func(t *testing.T) {
		_, err := r.Offer(spawned.ID, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidOffer)

		_, err = r.Offer(spawned.ID, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidOffer)
	})
}
