package domain

// ItemCategory is one of the three independent inventory ledgers
type ItemCategory string

const (
	CategorySeed       ItemCategory = "SEED"
	CategoryTool       ItemCategory = "TOOL"
	CategoryFertilizer ItemCategory = "FERTILIZER"
)

// Categories lists every ledger category in a stable order
func Categories() []ItemCategory {
	return []ItemCategory{CategorySeed, CategoryTool, CategoryFertilizer}
}

// Valid reports whether c is a known category
func (c ItemCategory) Valid() bool {
	switch c {
	case CategorySeed, CategoryTool, CategoryFertilizer:
		return true
	}
	return false
}

// Ledger is a name -> quantity mapping for one item category.
// Absence of a key means quantity zero; quantities never go negative.
type Ledger map[string]uint

// Inventory holds the three category ledgers for one player
type Inventory struct {
	Seeds       Ledger `json:"seeds"`
	Tools       Ledger `json:"tools"`
	Fertilizers Ledger `json:"fertilizers"`
}

// NewInventory returns an empty inventory with all ledgers allocated
func NewInventory() *Inventory {
	return &Inventory{
		Seeds:       make(Ledger),
		Tools:       make(Ledger),
		Fertilizers: make(Ledger),
	}
}

// Ledger returns the ledger for the given category, or nil for an unknown one
func (inv *Inventory) Ledger(category ItemCategory) Ledger {
	switch category {
	case CategorySeed:
		return inv.Seeds
	case CategoryTool:
		return inv.Tools
	case CategoryFertilizer:
		return inv.Fertilizers
	}
	return nil
}
