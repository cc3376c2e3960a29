// Package game exposes the public action surface of the farming engine.
// Every action is one atomic state transition over the world map and/or
// one player's inventory: all preconditions are validated before any
// state is touched, and the whole action applies or fails with no side
// effect. One mutex serializes mutations end-to-end, so partial
// application (a seed debited but no crop created) is never observable.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/windrow/farmstead/internal/clock"
	"github.com/windrow/farmstead/internal/crop"
	"github.com/windrow/farmstead/internal/domain"
	"github.com/windrow/farmstead/internal/event"
	"github.com/windrow/farmstead/internal/inventory"
	"github.com/windrow/farmstead/internal/logger"
	"github.com/windrow/farmstead/internal/merchant"
	"github.com/windrow/farmstead/internal/metrics"
	"github.com/windrow/farmstead/internal/player"
	"github.com/windrow/farmstead/internal/world"
)

// HarvestResult describes a completed harvest
type HarvestResult struct {
	CropName string `json:"crop_name"`
	Yield    uint   `json:"yield"`
}

// ExploreResult describes a successful exploration
type ExploreResult struct {
	SeedName string `json:"seed_name"`
	Quantity uint   `json:"quantity"`
}

// InventoryReport is the read-only snapshot of one player's ledgers
type InventoryReport struct {
	Seeds       domain.Ledger `json:"seeds"`
	Tools       domain.Ledger `json:"tools"`
	Fertilizers domain.Ledger `json:"fertilizers"`
}

// Service defines the game action surface
type Service interface {
	CreatePlayer(ctx context.Context, ownerID string) (*domain.Player, error)
	CultivateLand(ctx context.Context, ownerID string, x, y uint) error
	PlantSeed(ctx context.Context, ownerID string, x, y uint, seedName string) (*domain.Crop, error)
	WaterPlant(ctx context.Context, ownerID string, x, y uint) (*domain.Crop, error)
	FertilizePlant(ctx context.Context, ownerID string, x, y uint, fertilizerName string) (*domain.Crop, error)
	CheckGrowth(ctx context.Context, x, y uint) (*domain.Crop, error)
	Harvest(ctx context.Context, ownerID string, x, y uint) (*HarvestResult, error)
	RefreshMerchant(ctx context.Context) (*domain.Merchant, bool, error)
	TradeWithMerchant(ctx context.Context, ownerID, merchantID string, offerIndex int) (*merchant.TradeResult, error)
	ExploreForSeeds(ctx context.Context, ownerID string) (*ExploreResult, error)

	// Read-only query surface
	GetPlayerInventory(ctx context.Context, ownerID string) (*InventoryReport, error)
	GetMapDimensions(ctx context.Context) (width, height uint)
	GetLandInfo(ctx context.Context, x, y uint) (*domain.LandInfo, error)
	GetMerchantsInfo(ctx context.Context) []domain.Merchant
	GetMerchantOffers(ctx context.Context, merchantID string) ([]domain.MerchantOffer, error)
}

type service struct {
	mu sync.Mutex // serializes every world/inventory mutation

	worldMap  *world.Map
	catalog   *crop.Catalog
	rotation  *merchant.Rotation
	players   player.Service
	clk       clock.Clock
	bus       event.Bus
	roll      merchant.RollFunc

	exploreCooldown time.Duration
	lastExplored    map[string]time.Time // ownerID -> last explore time
}

// NewService creates the game service.
// A nil roll falls back to the deterministic clock-derived default.
func NewService(
	worldMap *world.Map,
	catalog *crop.Catalog,
	rotation *merchant.Rotation,
	players player.Service,
	clk clock.Clock,
	bus event.Bus,
	roll merchant.RollFunc,
	exploreCooldown time.Duration,
) Service {
	if roll == nil {
		roll = merchant.DefaultRoll
	}
	return &service{
		worldMap:        worldMap,
		catalog:         catalog,
		rotation:        rotation,
		players:         players,
		clk:             clk,
		bus:             bus,
		roll:            roll,
		exploreCooldown: exploreCooldown,
		lastExplored:    make(map[string]time.Time),
	}
}

func (s *service) CreatePlayer(ctx context.Context, ownerID string) (p *domain.Player, err error) {
	defer func() { metrics.RecordAction(ActionCreatePlayer, err) }()
	log := logger.FromContext(ctx)
	log.Info("CreatePlayer called", "ownerID", ownerID)

	p, err = s.players.Register(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	metrics.PlayersCreated.Inc()
	s.publish(ctx, event.NewPlayerCreatedEvent(p))
	return p, nil
}

func (s *service) CultivateLand(ctx context.Context, ownerID string, x, y uint) (err error) {
	defer func() { metrics.RecordAction(ActionCultivate, err) }()
	log := logger.FromContext(ctx)
	log.Info("CultivateLand called", "ownerID", ownerID, "x", x, "y", y)

	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The shovel gates cultivation but is not consumed; tools are durable.
	if !inventory.Has(inv, domain.CategoryTool, domain.ItemShovel, 1) {
		return fmt.Errorf("%w: %s", domain.ErrMissingTool, domain.ItemShovel)
	}

	if err = s.worldMap.Cultivate(domain.Coordinate{X: x, Y: y}); err != nil {
		return err
	}

	log.Info("Land cultivated", "ownerID", ownerID, "x", x, "y", y)
	return nil
}

func (s *service) PlantSeed(ctx context.Context, ownerID string, x, y uint, seedName string) (c *domain.Crop, err error) {
	defer func() { metrics.RecordAction(ActionPlant, err) }()
	log := logger.FromContext(ctx)
	log.Info("PlantSeed called", "ownerID", ownerID, "x", x, "y", y, "seed", seedName)

	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coord := domain.Coordinate{X: x, Y: y}

	// Validate every precondition before the seed debit so a tile
	// failure cannot leave the ledger short.
	info, err := s.worldMap.Info(coord)
	if err != nil {
		return nil, err
	}
	if info.LandType != domain.LandFarmland {
		return nil, fmt.Errorf("%w: land at (%d,%d) is %s", domain.ErrLandNotFarmland, x, y, info.LandType)
	}
	if info.HasCrop {
		return nil, fmt.Errorf("%w: %s already growing at (%d,%d)", domain.ErrLandOccupied, info.Crop.Name, x, y)
	}
	if !inventory.Has(inv, domain.CategorySeed, seedName, 1) {
		return nil, fmt.Errorf("%w: no %s seed", domain.ErrInsufficientQuantity, seedName)
	}

	if err = inventory.Consume(inv, domain.CategorySeed, seedName, 1); err != nil {
		return nil, err
	}

	def := s.catalog.Lookup(seedName)
	if err = s.worldMap.Plant(coord, def, s.clk.Now()); err != nil {
		return nil, err
	}

	planted, err := s.worldMap.Info(coord)
	if err != nil {
		return nil, err
	}

	metrics.CropsPlanted.WithLabelValues(seedName).Inc()
	s.publish(ctx, event.NewSeedPlantedEvent(ownerID, seedName, coord))
	log.Info("Seed planted", "ownerID", ownerID, "crop", seedName, "x", x, "y", y)
	return planted.Crop, nil
}

func (s *service) WaterPlant(ctx context.Context, ownerID string, x, y uint) (c *domain.Crop, err error) {
	defer func() { metrics.RecordAction(ActionWater, err) }()
	log := logger.FromContext(ctx)
	log.Info("WaterPlant called", "ownerID", ownerID, "x", x, "y", y)

	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !inventory.Has(inv, domain.CategoryTool, domain.ItemWateringCan, 1) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingTool, domain.ItemWateringCan)
	}

	c, err = s.worldMap.Water(domain.Coordinate{X: x, Y: y})
	if err != nil {
		return nil, err
	}

	log.Info("Plant watered", "ownerID", ownerID, "x", x, "y", y, "waterLevel", c.WaterLevel, "stage", c.Stage)
	return c, nil
}

func (s *service) FertilizePlant(ctx context.Context, ownerID string, x, y uint, fertilizerName string) (c *domain.Crop, err error) {
	defer func() { metrics.RecordAction(ActionFertilize, err) }()
	log := logger.FromContext(ctx)
	log.Info("FertilizePlant called", "ownerID", ownerID, "x", x, "y", y, "fertilizer", fertilizerName)

	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coord := domain.Coordinate{X: x, Y: y}

	info, err := s.worldMap.Info(coord)
	if err != nil {
		return nil, err
	}
	if !info.HasCrop {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrLandEmpty, x, y)
	}
	if !inventory.Has(inv, domain.CategoryFertilizer, fertilizerName, 1) {
		return nil, fmt.Errorf("%w: no %s", domain.ErrInsufficientQuantity, fertilizerName)
	}

	if err = inventory.Consume(inv, domain.CategoryFertilizer, fertilizerName, 1); err != nil {
		return nil, err
	}

	c, err = s.worldMap.Fertilize(coord)
	if err != nil {
		return nil, err
	}

	log.Info("Plant fertilized", "ownerID", ownerID, "x", x, "y", y, "fertilizerLevel", c.FertilizerLevel, "stage", c.Stage)
	return c, nil
}

func (s *service) CheckGrowth(ctx context.Context, x, y uint) (c *domain.Crop, err error) {
	defer func() { metrics.RecordAction(ActionCheckGrowth, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.worldMap.CheckGrowth(domain.Coordinate{X: x, Y: y}, s.clk.Now())
}

func (s *service) Harvest(ctx context.Context, ownerID string, x, y uint) (result *HarvestResult, err error) {
	defer func() { metrics.RecordAction(ActionHarvest, err) }()
	log := logger.FromContext(ctx)
	log.Info("Harvest called", "ownerID", ownerID, "x", x, "y", y)

	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coord := domain.Coordinate{X: x, Y: y}

	harvested, err := s.worldMap.Harvest(coord)
	if err != nil {
		return nil, err
	}

	def := s.catalog.Lookup(harvested.Name)
	yield := def.BaseYield + harvested.WaterLevel + harvested.FertilizerLevel

	if err = inventory.Add(inv, domain.CategorySeed, harvested.Name, yield); err != nil {
		return nil, err
	}

	metrics.CropsHarvested.WithLabelValues(harvested.Name).Inc()
	metrics.HarvestYield.WithLabelValues(harvested.Name).Add(float64(yield))
	s.publish(ctx, event.NewPlantHarvestedEvent(ownerID, harvested.Name, yield, coord))

	log.Info("Harvest successful", "ownerID", ownerID, "crop", harvested.Name, "yield", yield)
	return &HarvestResult{CropName: harvested.Name, Yield: yield}, nil
}

func (s *service) RefreshMerchant(ctx context.Context) (m *domain.Merchant, refreshed bool, err error) {
	defer func() { metrics.RecordAction(ActionRefreshMerchant, err) }()
	log := logger.FromContext(ctx)

	s.mu.Lock()
	spawned, ok := s.rotation.Refresh(s.clk.Now())
	s.mu.Unlock()

	if !ok {
		log.Info("Merchant refresh skipped, within cooldown")
		return nil, false, nil
	}

	metrics.MerchantsSpawned.Inc()
	s.publish(ctx, event.NewMerchantSpawnedEvent(spawned))
	log.Info("Merchant spawned", "merchantID", spawned.ID, "name", spawned.Name, "expiresAt", spawned.ExpiresAt)
	return spawned, true, nil
}

func (s *service) TradeWithMerchant(ctx context.Context, ownerID, merchantID string, offerIndex int) (result *merchant.TradeResult, err error) {
	defer func() { metrics.RecordAction(ActionTrade, err) }()
	log := logger.FromContext(ctx)
	log.Info("TradeWithMerchant called", "ownerID", ownerID, "merchantID", merchantID, "offerIndex", offerIndex)

	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Same lock as the rotation: a trade never races a prune.
	s.mu.Lock()
	result, err = merchant.Trade(s.rotation, inv, merchantID, offerIndex)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	metrics.TradesCompleted.WithLabelValues(result.Item).Inc()
	log.Info("Trade completed", "ownerID", ownerID, "item", result.Item, "price", result.PriceAmount, "priceSeed", result.PriceSeed)
	return result, nil
}

func (s *service) ExploreForSeeds(ctx context.Context, ownerID string) (result *ExploreResult, err error) {
	defer func() { metrics.RecordAction(ActionExplore, err) }()
	log := logger.FromContext(ctx)
	log.Info("ExploreForSeeds called", "ownerID", ownerID)

	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()
	if last, ok := s.lastExplored[ownerID]; ok && now.Sub(last) < s.exploreCooldown {
		remaining := s.exploreCooldown - now.Sub(last)
		return nil, fmt.Errorf("%w: explore available in %s", domain.ErrOnCooldown, remaining.Round(time.Second))
	}

	seedName := exploreFinds[s.roll(now, uint(len(exploreFinds)))]
	quantity := uint(exploreMinFind) + s.roll(now, exploreFindSpan)

	if err = inventory.Add(inv, domain.CategorySeed, seedName, quantity); err != nil {
		return nil, err
	}
	s.lastExplored[ownerID] = now

	log.Info("Exploration rewarded", "ownerID", ownerID, "seed", seedName, "quantity", quantity)
	return &ExploreResult{SeedName: seedName, Quantity: quantity}, nil
}

// publish sends a notification record; delivery failures never fail the action
func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "event_type", e.Type, "error", err)
	}
}
