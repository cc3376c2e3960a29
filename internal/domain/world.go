package domain

import "time"

// Coordinate identifies one tile on the world grid.
// It is a value type and is used as a map key; equality is structural.
type Coordinate struct {
	X uint `json:"x"`
	Y uint `json:"y"`
}

// LandType is the zoning classification of a tile
type LandType string

const (
	LandUncultivable LandType = "UNCULTIVABLE"
	LandCultivable   LandType = "CULTIVABLE"
	LandFarmland     LandType = "FARMLAND"
)

// CropStage is the crop's position in its lifecycle.
// Stages only advance forward; harvest removes the crop instead of adding a stage.
type CropStage string

const (
	StagePlanted CropStage = "PLANTED"
	StageGrowing CropStage = "GROWING"
	StageMature  CropStage = "MATURE"
)

// Crop is an in-progress planting on a tile.
// A Crop exists only while its tile's land type is Farmland.
type Crop struct {
	Name            string        `json:"name"`
	Stage           CropStage     `json:"stage"`
	PlantedAt       time.Time     `json:"planted_at"`
	WaterLevel      uint          `json:"water_level"`
	FertilizerLevel uint          `json:"fertilizer_level"`
	GrowthDuration  time.Duration `json:"growth_duration"`
}

// Tile is one grid cell: a land type and at most one crop.
// Tiles are owned exclusively by the WorldMap and never aliased outside it.
type Tile struct {
	LandType LandType `json:"land_type"`
	Crop     *Crop    `json:"crop,omitempty"`
}

// CropDefinition is an immutable catalog entry for one crop species
type CropDefinition struct {
	Name           string        `json:"name"`
	GrowthDuration time.Duration `json:"growth_duration"`
	BaseYield      uint          `json:"base_yield"`
}

// LandInfo is the read-only report for one tile
type LandInfo struct {
	X        uint     `json:"x"`
	Y        uint     `json:"y"`
	LandType LandType `json:"land_type"`
	HasCrop  bool     `json:"has_crop"`
	Crop     *Crop    `json:"crop,omitempty"`
}
