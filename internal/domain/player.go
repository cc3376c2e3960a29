package domain

import "time"

// Player is a registered caller identity with its own inventory
type Player struct {
	ID        string    `json:"id"`       // internal UUID
	OwnerID   string    `json:"owner_id"` // external caller identity
	CreatedAt time.Time `json:"created_at"`
}

// Well-known item names seeded into every new player's inventory
const (
	ItemShovel      = "shovel"
	ItemWateringCan = "wateringCan"
	ItemCarrot      = "carrot"
	ItemTomato      = "tomato"
)
