package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/windrow/farmstead/internal/clock"
	"github.com/windrow/farmstead/internal/domain"
	"github.com/windrow/farmstead/internal/inventory"
	"github.com/windrow/farmstead/internal/logger"
)

// Starting grants for a freshly registered player
var initialGrants = []struct {
	category domain.ItemCategory
	name     string
	amount   uint
}{
	{domain.CategorySeed, domain.ItemCarrot, 5},
	{domain.CategorySeed, domain.ItemTomato, 3},
	{domain.CategoryTool, domain.ItemShovel, 1},
	{domain.CategoryTool, domain.ItemWateringCan, 1},
}

const (
	cacheSize = 1024
	cacheTTL  = 5 * time.Minute
)

// Service defines player registration and lookup
type Service interface {
	// Register creates a player for ownerID and seeds the starting inventory
	Register(ctx context.Context, ownerID string) (*domain.Player, error)

	// Get resolves ownerID to a registered player
	Get(ctx context.Context, ownerID string) (*domain.Player, error)

	// Inventory returns the live inventory for a registered player
	Inventory(ctx context.Context, ownerID string) (*domain.Inventory, error)
}

type service struct {
	repo  Repository
	clk   clock.Clock
	cache *playerCache
}

// NewService creates a new player service
func NewService(repo Repository, clk clock.Clock) Service {
	return &service{
		repo:  repo,
		clk:   clk,
		cache: newPlayerCache(cacheSize, cacheTTL),
	}
}

func (s *service) Register(ctx context.Context, ownerID string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info("Register called", "ownerID", ownerID)

	p := &domain.Player{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: s.clk.Now(),
	}

	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	inv, err := s.repo.Inventory(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get new player inventory: %w", err)
	}
	for _, grant := range initialGrants {
		if err := inventory.Add(inv, grant.category, grant.name, grant.amount); err != nil {
			return nil, fmt.Errorf("failed to seed starting inventory: %w", err)
		}
	}

	s.cache.Set(ownerID, p)
	log.Info("Player registered", "ownerID", ownerID, "playerID", p.ID)
	return p, nil
}

func (s *service) Get(ctx context.Context, ownerID string) (*domain.Player, error) {
	if p, ok := s.cache.Get(ownerID); ok {
		return p, nil
	}

	p, err := s.repo.GetPlayerByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ownerID, p)
	return p, nil
}

func (s *service) Inventory(ctx context.Context, ownerID string) (*domain.Inventory, error) {
	p, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.Inventory(ctx, p.ID)
}
