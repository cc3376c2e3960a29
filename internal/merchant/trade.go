package merchant

import (
	"fmt"

	"github.com/windrow/farmstead/internal/domain"
	"github.com/windrow/farmstead/internal/inventory"
)

// TradeResult describes a completed exchange
type TradeResult struct {
	MerchantName string              `json:"merchant_name"`
	Item         string              `json:"item"`
	Category     domain.ItemCategory `json:"category"`
	PriceSeed    string              `json:"price_seed"`
	PriceAmount  uint                `json:"price_amount"`
}

// Trade exchanges the buyer's seeds for the offer at offerIndex.
// All preconditions are checked before any ledger is touched: the
// payment debit and item credit land together or not at all.
func Trade(r *Rotation, buyer *domain.Inventory, merchantID string, offerIndex int) (*TradeResult, error) {
	m, err := r.Find(merchantID)
	if err != nil {
		return nil, err
	}

	if offerIndex < 0 || offerIndex >= len(m.Offers) {
		return nil, fmt.Errorf("%w: %d (merchant has %d offers)", domain.ErrInvalidOffer, offerIndex, len(m.Offers))
	}
	offer := m.Offers[offerIndex]

	if !inventory.Has(buyer, domain.CategorySeed, offer.PriceSeed, offer.PriceAmount) {
		held := inventory.Quantity(buyer, domain.CategorySeed, offer.PriceSeed)
		return nil, fmt.Errorf("%w: need %d %s, have %d", domain.ErrInsufficientPayment, offer.PriceAmount, offer.PriceSeed, held)
	}

	if err := inventory.Consume(buyer, domain.CategorySeed, offer.PriceSeed, offer.PriceAmount); err != nil {
		return nil, err
	}
	if err := inventory.Add(buyer, offer.Category, offer.ItemName, 1); err != nil {
		return nil, err
	}

	return &TradeResult{
		MerchantName: m.Name,
		Item:         offer.ItemName,
		Category:     offer.Category,
		PriceSeed:    offer.PriceSeed,
		PriceAmount:  offer.PriceAmount,
	}, nil
}
