package game

import (
	"context"

	"github.com/windrow/farmstead/internal/domain"
	"github.com/windrow/farmstead/internal/inventory"
)

// Read-only query surface. Queries take the same lock as actions so a
// report never observes a half-applied transition, but they mutate
// nothing; stage advancement stays pull-based through CheckGrowth.

func (s *service) GetPlayerInventory(ctx context.Context, ownerID string) (*InventoryReport, error) {
	inv, err := s.players.Inventory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &InventoryReport{
		Seeds:       inventory.Snapshot(inv, domain.CategorySeed),
		Tools:       inventory.Snapshot(inv, domain.CategoryTool),
		Fertilizers: inventory.Snapshot(inv, domain.CategoryFertilizer),
	}, nil
}

func (s *service) GetMapDimensions(ctx context.Context) (width, height uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.worldMap.Dimensions()
}

func (s *service) GetLandInfo(ctx context.Context, x, y uint) (*domain.LandInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.worldMap.Info(domain.Coordinate{X: x, Y: y})
}

func (s *service) GetMerchantsInfo(ctx context.Context) []domain.Merchant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation.Merchants()
}

func (s *service) GetMerchantOffers(ctx context.Context, merchantID string) ([]domain.MerchantOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.rotation.Find(merchantID)
	if err != nil {
		return nil, err
	}

	offers := make([]domain.MerchantOffer, len(m.Offers))
	copy(offers, m.Offers)
	return offers, nil
}
