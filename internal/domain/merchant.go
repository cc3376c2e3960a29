package domain

import "time"

// MerchantOffer is one purchasable item plus its price, expressed as a
// quantity of a named seed used as currency.
type MerchantOffer struct {
	Category    ItemCategory `json:"category"`
	ItemName    string       `json:"item_name"`
	PriceSeed   string       `json:"price_seed"`
	PriceAmount uint         `json:"price_amount"`
}

// Merchant is a time-boxed listing of tradeable offers
type Merchant struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Offers    []MerchantOffer `json:"offers"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Expired reports whether the listing has lapsed at the given time
func (m *Merchant) Expired(now time.Time) bool {
	return !m.ExpiresAt.After(now)
}
