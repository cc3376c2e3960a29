// Package world owns the shared grid of land tiles and the crop
// lifecycle that runs on top of it. The Map performs no locking of its
// own; the game service serializes every mutation end-to-end so that a
// read-modify-write action is atomic and partial application is never
// observable.
package world

import (
	"fmt"
	"time"

	"github.com/windrow/farmstead/internal/domain"
)

// Default zoning regions for a fresh map, in tile units.
// Tiles inside the farmland square start as Farmland, tiles inside the
// cultivable square (but outside the farmland one) start as Cultivable,
// and everything else is Uncultivable.
const (
	farmlandRegionSize   = 3
	cultivableRegionSize = 7
)

// Map is the world grid. Exactly one Tile exists per coordinate and the
// Map owns all of them; tiles are never aliased out.
type Map struct {
	width       uint
	height      uint
	tiles       map[domain.Coordinate]*domain.Tile
	initialized bool
}

// NewMap creates an empty, uninitialized map
func NewMap() *Map {
	return &Map{
		tiles: make(map[domain.Coordinate]*domain.Tile),
	}
}

// Initialize builds the fixed width x height grid and applies the zoning
// rule. It can run only once per map instance.
func (m *Map) Initialize(width, height uint) error {
	if m.initialized {
		return domain.ErrWorldAlreadyInitialized
	}
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: map dimensions must be positive", domain.ErrInvalidInput)
	}

	for x := uint(0); x < width; x++ {
		for y := uint(0); y < height; y++ {
			m.tiles[domain.Coordinate{X: x, Y: y}] = &domain.Tile{
				LandType: zoneFor(x, y),
			}
		}
	}

	m.width = width
	m.height = height
	m.initialized = true
	return nil
}

// zoneFor is the deterministic zoning rule for a fresh world
func zoneFor(x, y uint) domain.LandType {
	if x < farmlandRegionSize && y < farmlandRegionSize {
		return domain.LandFarmland
	}
	if x < cultivableRegionSize && y < cultivableRegionSize {
		return domain.LandCultivable
	}
	return domain.LandUncultivable
}

// Dimensions returns the grid size
func (m *Map) Dimensions() (width, height uint) {
	return m.width, m.height
}

// tile resolves a coordinate to its tile
func (m *Map) tile(coord domain.Coordinate) (*domain.Tile, error) {
	t, ok := m.tiles[coord]
	if !ok {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrInvalidCoordinate, coord.X, coord.Y)
	}
	return t, nil
}

// Info returns the read-only report for one tile.
// The returned crop is a copy; callers cannot reach map-owned state.
func (m *Map) Info(coord domain.Coordinate) (*domain.LandInfo, error) {
	t, err := m.tile(coord)
	if err != nil {
		return nil, err
	}

	info := &domain.LandInfo{
		X:        coord.X,
		Y:        coord.Y,
		LandType: t.LandType,
		HasCrop:  t.Crop != nil,
	}
	if t.Crop != nil {
		cropCopy := *t.Crop
		info.Crop = &cropCopy
	}
	return info, nil
}

// Cultivate turns a Cultivable tile into Farmland.
// Land-type transitions are one-directional: Uncultivable is terminal
// and Farmland never reverts.
func (m *Map) Cultivate(coord domain.Coordinate) error {
	t, err := m.tile(coord)
	if err != nil {
		return err
	}

	if t.LandType != domain.LandCultivable {
		return fmt.Errorf("%w: land at (%d,%d) is %s", domain.ErrLandNotCultivable, coord.X, coord.Y, t.LandType)
	}

	t.LandType = domain.LandFarmland
	return nil
}

// Plant creates a crop on an empty Farmland tile
func (m *Map) Plant(coord domain.Coordinate, def domain.CropDefinition, now time.Time) error {
	t, err := m.tile(coord)
	if err != nil {
		return err
	}

	if t.LandType != domain.LandFarmland {
		return fmt.Errorf("%w: land at (%d,%d) is %s", domain.ErrLandNotFarmland, coord.X, coord.Y, t.LandType)
	}
	if t.Crop != nil {
		return fmt.Errorf("%w: %s already growing at (%d,%d)", domain.ErrLandOccupied, t.Crop.Name, coord.X, coord.Y)
	}

	t.Crop = &domain.Crop{
		Name:           def.Name,
		Stage:          domain.StagePlanted,
		PlantedAt:      now,
		GrowthDuration: def.GrowthDuration,
	}
	return nil
}

// Water increments the crop's water level and applies the
// Planted -> Growing transition once both resource counters are at
// least one. The increment still lands on a mature crop; it feeds the
// harvest yield either way.
func (m *Map) Water(coord domain.Coordinate) (*domain.Crop, error) {
	t, err := m.tile(coord)
	if err != nil {
		return nil, err
	}
	if t.Crop == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrLandEmpty, coord.X, coord.Y)
	}

	t.Crop.WaterLevel++
	maybeAdvanceToGrowing(t.Crop)

	cropCopy := *t.Crop
	return &cropCopy, nil
}

// Fertilize increments the crop's fertilizer level (only while the crop
// has not matured) and applies the same Planted -> Growing rule as Water.
func (m *Map) Fertilize(coord domain.Coordinate) (*domain.Crop, error) {
	t, err := m.tile(coord)
	if err != nil {
		return nil, err
	}
	if t.Crop == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrLandEmpty, coord.X, coord.Y)
	}

	if t.Crop.Stage != domain.StageMature {
		t.Crop.FertilizerLevel++
		maybeAdvanceToGrowing(t.Crop)
	}

	cropCopy := *t.Crop
	return &cropCopy, nil
}

// maybeAdvanceToGrowing moves a planted crop to Growing once it has
// received both water and fertilizer
func maybeAdvanceToGrowing(c *domain.Crop) {
	if c.Stage == domain.StagePlanted && c.WaterLevel >= 1 && c.FertilizerLevel >= 1 {
		c.Stage = domain.StageGrowing
	}
}

// CheckGrowth advances a Growing crop to Mature once its growth duration
// has elapsed. This is a pull-based transition: there is no background
// timer, so readers of crop state must call it before trusting the stage.
// Repeated calls with an unchanged clock change the stage at most once.
func (m *Map) CheckGrowth(coord domain.Coordinate, now time.Time) (*domain.Crop, error) {
	t, err := m.tile(coord)
	if err != nil {
		return nil, err
	}
	if t.Crop == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrLandEmpty, coord.X, coord.Y)
	}

	if t.Crop.Stage == domain.StageGrowing && now.Sub(t.Crop.PlantedAt) >= t.Crop.GrowthDuration {
		t.Crop.Stage = domain.StageMature
	}

	cropCopy := *t.Crop
	return &cropCopy, nil
}

// Harvest removes a mature crop from its tile and returns the harvested
// crop state. Yield is computed by the caller from the returned counters;
// the tile's land type is unchanged.
func (m *Map) Harvest(coord domain.Coordinate) (*domain.Crop, error) {
	t, err := m.tile(coord)
	if err != nil {
		return nil, err
	}

	if t.LandType != domain.LandFarmland {
		return nil, fmt.Errorf("%w: land at (%d,%d) is %s", domain.ErrLandNotFarmland, coord.X, coord.Y, t.LandType)
	}
	if t.Crop == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrLandEmpty, coord.X, coord.Y)
	}
	if t.Crop.Stage != domain.StageMature {
		return nil, fmt.Errorf("%w: %s at (%d,%d) is %s", domain.ErrCropNotMature, t.Crop.Name, coord.X, coord.Y, t.Crop.Stage)
	}

	harvested := *t.Crop
	t.Crop = nil
	return &harvested, nil
}
