package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windrow/farmstead/internal/domain"
)

var carrotDef = domain.CropDefinition{
	Name:           "carrot",
	GrowthDuration: 3 * time.Minute,
	BaseYield:      2,
}

func newTestMap(t *testing.T) *Map {
	t.Helper()
	m := NewMap()
	require.NoError(t, m.Initialize(10, 10))
	return m
}

func TestInitialize(t *testing.T) {
	t.Run("zoning rule", func(t *testing.T) {
		m := newTestMap(t)

		info, err := m.Info(domain.Coordinate{X: 0, Y: 0})
		require.NoError(t, err)
		assert.Equal(t, domain.LandFarmland, info.LandType)

		info, err = m.Info(domain.Coordinate{X: 4, Y: 4})
		require.NoError(t, err)
		assert.Equal(t, domain.LandCultivable, info.LandType)

		info, err = m.Info(domain.Coordinate{X: 9, Y: 9})
		require.NoError(t, err)
		assert.Equal(t, domain.LandUncultivable, info.LandType)
	})

	t.Run("re-initialization is rejected", func(t *testing.T) {
		m := newTestMap(t)
		err := m.Initialize(10, 10)
		assert.ErrorIs(t, err, domain.ErrWorldAlreadyInitialized)
	})

	t.Run("zero dimensions are rejected", func(t *testing.T) {
		m := NewMap()
		err := m.Initialize(0, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("dimensions reported", func(t *testing.T) {
		m := newTestMap(t)
		w, h := m.Dimensions()
		assert.Equal(t, uint(10), w)
		assert.Equal(t, uint(10), h)
	})
}

func TestCultivate(t *testing.T) {
	t.Run("cultivable becomes farmland", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 4, Y: 4}

		require.NoError(t, m.Cultivate(coord))

		info, err := m.Info(coord)
		require.NoError(t, err)
		assert.Equal(t, domain.LandFarmland, info.LandType)
	})

	t.Run("already farmland fails", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 4, Y: 4}
		require.NoError(t, m.Cultivate(coord))

		err := m.Cultivate(coord)
		assert.ErrorIs(t, err, domain.ErrLandNotCultivable)
	})

	t.Run("uncultivable is terminal", func(t *testing.T) {
		m := newTestMap(t)
		err := m.Cultivate(domain.Coordinate{X: 9, Y: 9})
		assert.ErrorIs(t, err, domain.ErrLandNotCultivable)
	})

	t.Run("out of bounds", func(t *testing.T) {
		m := newTestMap(t)
		err := m.Cultivate(domain.Coordinate{X: 100, Y: 100})
		assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
	})
}

func TestPlant(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("plants on empty farmland", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 0, Y: 0}

		require.NoError(t, m.Plant(coord, carrotDef, now))

		info, err := m.Info(coord)
		require.NoError(t, err)
		assert.True(t, info.HasCrop)
		assert.Equal(t, "carrot", info.Crop.Name)
		assert.Equal(t, domain.StagePlanted, info.Crop.Stage)
		assert.Equal(t, now, info.Crop.PlantedAt)
		assert.Equal(t, uint(0), info.Crop.WaterLevel)
		assert.Equal(t, uint(0), info.Crop.FertilizerLevel)
	})

	t.Run("rejects non-farmland", func(t *testing.T) {
		m := newTestMap(t)
		err := m.Plant(domain.Coordinate{X: 4, Y: 4}, carrotDef, now)
		assert.ErrorIs(t, err, domain.ErrLandNotFarmland)
	})

	t.Run("rejects occupied tile", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 0, Y: 0}
		require.NoError(t, m.Plant(coord, carrotDef, now))

		err := m.Plant(coord, carrotDef, now)
		assert.ErrorIs(t, err, domain.ErrLandOccupied)
	})
}

func TestCropLifecycle(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("water and fertilizer advance planted to growing", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 1, Y: 1}
		require.NoError(t, m.Plant(coord, carrotDef, now))

		c, err := m.Water(coord)
		require.NoError(t, err)
		assert.Equal(t, uint(1), c.WaterLevel)
		assert.Equal(t, domain.StagePlanted, c.Stage)

		c, err = m.Fertilize(coord)
		require.NoError(t, err)
		assert.Equal(t, uint(1), c.FertilizerLevel)
		assert.Equal(t, domain.StageGrowing, c.Stage)
	})

	t.Run("fertilizer first then water", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 1, Y: 1}
		require.NoError(t, m.Plant(coord, carrotDef, now))

		c, err := m.Fertilize(coord)
		require.NoError(t, err)
		assert.Equal(t, domain.StagePlanted, c.Stage)

		c, err = m.Water(coord)
		require.NoError(t, err)
		assert.Equal(t, domain.StageGrowing, c.Stage)
	})

	t.Run("water on empty tile fails", func(t *testing.T) {
		m := newTestMap(t)
		_, err := m.Water(domain.Coordinate{X: 1, Y: 1})
		assert.ErrorIs(t, err, domain.ErrLandEmpty)
	})

	t.Run("fertilize on empty tile fails", func(t *testing.T) {
		m := newTestMap(t)
		_, err := m.Fertilize(domain.Coordinate{X: 1, Y: 1})
		assert.ErrorIs(t, err, domain.ErrLandEmpty)
	})

	t.Run("checkGrowth matures only after duration", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 1, Y: 1}
		require.NoError(t, m.Plant(coord, carrotDef, now))
		_, err := m.Water(coord)
		require.NoError(t, err)
		_, err = m.Fertilize(coord)
		require.NoError(t, err)

		c, err := m.CheckGrowth(coord, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, domain.StageGrowing, c.Stage)

		c, err = m.CheckGrowth(coord, now.Add(carrotDef.GrowthDuration))
		require.NoError(t, err)
		assert.Equal(t, domain.StageMature, c.Stage)
	})

	t.Run("checkGrowth is idempotent", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 1, Y: 1}
		require.NoError(t, m.Plant(coord, carrotDef, now))
		_, err := m.Water(coord)
		require.NoError(t, err)
		_, err = m.Fertilize(coord)
		require.NoError(t, err)

		later := now.Add(carrotDef.GrowthDuration)
		first, err := m.CheckGrowth(coord, later)
		require.NoError(t, err)
		second, err := m.CheckGrowth(coord, later)
		require.NoError(t, err)
		assert.Equal(t, first.Stage, second.Stage)
	})

	t.Run("checkGrowth skips planted crops", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 1, Y: 1}
		require.NoError(t, m.Plant(coord, carrotDef, now))

		c, err := m.CheckGrowth(coord, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, domain.StagePlanted, c.Stage)
	})

	t.Run("fertilizer stops counting once mature", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 1, Y: 1}
		require.NoError(t, m.Plant(coord, carrotDef, now))
		_, err := m.Water(coord)
		require.NoError(t, err)
		_, err = m.Fertilize(coord)
		require.NoError(t, err)
		_, err = m.CheckGrowth(coord, now.Add(carrotDef.GrowthDuration))
		require.NoError(t, err)

		c, err := m.Fertilize(coord)
		require.NoError(t, err)
		assert.Equal(t, uint(1), c.FertilizerLevel)
	})
}

func TestHarvest(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	matureCrop := func(t *testing.T, m *Map, coord domain.Coordinate) {
		t.Helper()
		require.NoError(t, m.Plant(coord, carrotDef, now))
		_, err := m.Water(coord)
		require.NoError(t, err)
		_, err = m.Fertilize(coord)
		require.NoError(t, err)
		_, err = m.CheckGrowth(coord, now.Add(carrotDef.GrowthDuration))
		require.NoError(t, err)
	}

	t.Run("harvest removes crop and keeps land type", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 2, Y: 2}
		matureCrop(t, m, coord)

		harvested, err := m.Harvest(coord)
		require.NoError(t, err)
		assert.Equal(t, "carrot", harvested.Name)
		assert.Equal(t, uint(1), harvested.WaterLevel)
		assert.Equal(t, uint(1), harvested.FertilizerLevel)

		info, err := m.Info(coord)
		require.NoError(t, err)
		assert.False(t, info.HasCrop)
		assert.Equal(t, domain.LandFarmland, info.LandType)
	})

	t.Run("immature crop fails", func(t *testing.T) {
		m := newTestMap(t)
		coord := domain.Coordinate{X: 2, Y: 2}
		require.NoError(t, m.Plant(coord, carrotDef, now))

		_, err := m.Harvest(coord)
		assert.ErrorIs(t, err, domain.ErrCropNotMature)
	})

	t.Run("empty tile fails", func(t *testing.T) {
		m := newTestMap(t)
		_, err := m.Harvest(domain.Coordinate{X: 2, Y: 2})
		assert.ErrorIs(t, err, domain.ErrLandEmpty)
	})

	t.Run("non-farmland fails", func(t *testing.T) {
		m := newTestMap(t)
		_, err := m.Harvest(domain.Coordinate{X: 9, Y: 9})
		assert.ErrorIs(t, err, domain.ErrLandNotFarmland)
	})
}

// Invariant: a crop exists on a tile only if that tile is Farmland
func TestCropImpliesFarmlandInvariant(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newTestMap(t)

	// Exercise the map, then sweep every tile
	require.NoError(t, m.Cultivate(domain.Coordinate{X: 4, Y: 4}))
	require.NoError(t, m.Plant(domain.Coordinate{X: 4, Y: 4}, carrotDef, now))
	require.NoError(t, m.Plant(domain.Coordinate{X: 0, Y: 0}, carrotDef, now))

	w, h := m.Dimensions()
	for x := uint(0); x < w; x++ {
		for y := uint(0); y < h; y++ {
			info, err := m.Info(domain.Coordinate{X: x, Y: y})
			require.NoError(t, err)
			if info.HasCrop {
				assert.Equal(t, domain.LandFarmland, info.LandType,
					"crop on non-farmland at (%d,%d)", x, y)
			}
		}
	}
}
