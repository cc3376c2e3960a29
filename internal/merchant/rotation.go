// Package merchant implements the time-gated traveling-merchant market:
// the listing rotation and the trade matching against a buyer's ledger.
package merchant

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/windrow/farmstead/internal/domain"
)

// Rotation policy defaults, in the minute scale the game is tuned in
const (
	DefaultRefreshInterval = 5 * time.Minute
	DefaultListingDuration = 30 * time.Minute
)

// RollFunc picks an index in [0, bound). The default derives the index
// deterministically from the shared clock, matching the reference
// behavior; deployments that need unpredictable listings should inject a
// real randomness source instead.
type RollFunc func(now time.Time, bound uint) uint

// DefaultRoll indexes candidate lists by the clock's minute count
func DefaultRoll(now time.Time, bound uint) uint {
	if bound == 0 {
		return 0
	}
	return uint(now.Unix()/60) % bound
}

// Fixed candidate pools a rotation draws from
var (
	merchantNames = []string{
		"Wandering Willem",
		"Peddler Okra",
		"Granny Sorrel",
		"Bram of the Crossroads",
	}

	seedOffers = []domain.MerchantOffer{
		{Category: domain.CategorySeed, ItemName: "tomato", PriceSeed: "carrot", PriceAmount: 2},
		{Category: domain.CategorySeed, ItemName: "potato", PriceSeed: "carrot", PriceAmount: 3},
		{Category: domain.CategorySeed, ItemName: "wheat", PriceSeed: "tomato", PriceAmount: 2},
		{Category: domain.CategorySeed, ItemName: "pumpkin", PriceSeed: "tomato", PriceAmount: 4},
	}

	toolOffers = []domain.MerchantOffer{
		{Category: domain.CategoryTool, ItemName: domain.ItemShovel, PriceSeed: "carrot", PriceAmount: 5},
		{Category: domain.CategoryTool, ItemName: domain.ItemWateringCan, PriceSeed: "carrot", PriceAmount: 4},
		{Category: domain.CategoryTool, ItemName: "hoe", PriceSeed: "tomato", PriceAmount: 3},
	}

	fertilizerOffers = []domain.MerchantOffer{
		{Category: domain.CategoryFertilizer, ItemName: "basic_fertilizer", PriceSeed: "carrot", PriceAmount: 1},
		{Category: domain.CategoryFertilizer, ItemName: "rich_compost", PriceSeed: "tomato", PriceAmount: 2},
		{Category: domain.CategoryFertilizer, ItemName: "bone_meal", PriceSeed: "carrot", PriceAmount: 3},
	}
)

// Rotation owns the merchant list and the refresh cooldown.
// It does no locking of its own: the game service serializes refreshes
// and trades under one lock so a trade never races a prune.
type Rotation struct {
	merchants       []*domain.Merchant
	lastRefresh     time.Time
	refreshInterval time.Duration
	listingDuration time.Duration
	roll            RollFunc
}

// NewRotation creates a rotation with the given policy.
// A nil roll falls back to DefaultRoll.
func NewRotation(refreshInterval, listingDuration time.Duration, roll RollFunc) *Rotation {
	if roll == nil {
		roll = DefaultRoll
	}
	return &Rotation{
		refreshInterval: refreshInterval,
		listingDuration: listingDuration,
		roll:            roll,
	}
}

// Refresh prunes expired listings and appends one newly synthesized
// merchant. Inside the minimum refresh interval it is a no-op and
// returns (nil, false). Immediately after a refresh the list contains
// no expired entry.
func (r *Rotation) Refresh(now time.Time) (*domain.Merchant, bool) {
	if !r.lastRefresh.IsZero() && now.Sub(r.lastRefresh) < r.refreshInterval {
		return nil, false
	}

	kept := r.merchants[:0]
	for _, m := range r.merchants {
		if !m.Expired(now) {
			kept = append(kept, m)
		}
	}
	r.merchants = kept

	m := r.synthesize(now)
	r.merchants = append(r.merchants, m)
	r.lastRefresh = now

	spawned := *m
	return &spawned, true
}

// synthesize builds one merchant with exactly one seed, one tool and one
// fertilizer offer drawn from the fixed candidate pools
func (r *Rotation) synthesize(now time.Time) *domain.Merchant {
	name := merchantNames[r.roll(now, uint(len(merchantNames)))]

	offers := []domain.MerchantOffer{
		seedOffers[r.roll(now, uint(len(seedOffers)))],
		toolOffers[r.roll(now, uint(len(toolOffers)))],
		fertilizerOffers[r.roll(now, uint(len(fertilizerOffers)))],
	}

	return &domain.Merchant{
		ID:        uuid.NewString(),
		Name:      name,
		Offers:    offers,
		ExpiresAt: now.Add(r.listingDuration),
	}
}

// Merchants returns copies of every current listing
func (r *Rotation) Merchants() []domain.Merchant {
	out := make([]domain.Merchant, 0, len(r.merchants))
	for _, m := range r.merchants {
		out = append(out, *m)
	}
	return out
}

// Find locates a merchant by id. The list is small and bounded, so a
// linear scan is fine.
func (r *Rotation) Find(id string) (*domain.Merchant, error) {
	for _, m := range r.merchants {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrMerchantNotFound, id)
}

// Offer returns the offer at index for the given merchant
func (r *Rotation) Offer(merchantID string, index int) (*domain.MerchantOffer, error) {
	m, err := r.Find(merchantID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(m.Offers) {
		return nil, fmt.Errorf("%w: %d (merchant has %d offers)", domain.ErrInvalidOffer, index, len(m.Offers))
	}
	offer := m.Offers[index]
	return &offer, nil
}
