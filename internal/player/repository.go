// Package player manages caller identities and their inventories.
package player

import (
	"context"
	"fmt"
	"sync"

	"github.com/windrow/farmstead/internal/domain"
)

// Repository defines storage for players and their inventories.
// Inventory returns the live inventory for the player; mutations to it
// are serialized by the game service, never by callers directly.
type Repository interface {
	CreatePlayer(ctx context.Context, p *domain.Player) error
	GetPlayerByOwnerID(ctx context.Context, ownerID string) (*domain.Player, error)
	Inventory(ctx context.Context, playerID string) (*domain.Inventory, error)
}

// MemoryRepository is the in-memory Repository used by the engine.
// The durable substrate that would commit these states atomically sits
// outside this module.
type MemoryRepository struct {
	mu          sync.RWMutex
	byOwner     map[string]*domain.Player
	inventories map[string]*domain.Inventory // keyed by player ID
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byOwner:     make(map[string]*domain.Player),
		inventories: make(map[string]*domain.Inventory),
	}
}

// CreatePlayer stores a new player with an empty inventory
func (r *MemoryRepository) CreatePlayer(ctx context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byOwner[p.OwnerID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrPlayerAlreadyExists, p.OwnerID)
	}

	r.byOwner[p.OwnerID] = p
	r.inventories[p.ID] = domain.NewInventory()
	return nil
}

// GetPlayerByOwnerID looks up a player by external caller identity
func (r *MemoryRepository) GetPlayerByOwnerID(ctx context.Context, ownerID string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byOwner[ownerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, ownerID)
	}
	return p, nil
}

// Inventory returns the player's live inventory
func (r *MemoryRepository) Inventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.inventories[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", domain.ErrPlayerNotFound, playerID)
	}
	return inv, nil
}
