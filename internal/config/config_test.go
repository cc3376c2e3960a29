package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, uint(10), cfg.MapWidth)
	assert.Equal(t, uint(10), cfg.MapHeight)
	assert.Equal(t, 5*time.Minute, cfg.MerchantRefreshInterval)
	assert.Equal(t, 30*time.Minute, cfg.MerchantListingDuration)
	assert.Equal(t, time.Minute, cfg.ExploreCooldown)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAP_WIDTH", "20")
	t.Setenv("MERCHANT_REFRESH_MINUTES", "10")
	t.Setenv("EXPLORE_COOLDOWN_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, uint(20), cfg.MapWidth)
	assert.Equal(t, 10*time.Minute, cfg.MerchantRefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.ExploreCooldown)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive map dimension", func(t *testing.T) {
		t.Setenv("MAP_WIDTH", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
