package crop

import (
	"time"

	"github.com/windrow/farmstead/internal/domain"
)

// DefaultGrowthDuration and DefaultBaseYield describe the fallback
// definition handed out for crop names missing from the catalog.
// Planting an unknown seed still works, it just grows into a low-tier crop.
const (
	DefaultGrowthDuration = 2 * time.Minute
	DefaultBaseYield      = 1
)

// Catalog is a fixed lookup from crop name to its growth definition
type Catalog struct {
	defs map[string]domain.CropDefinition
}

// NewCatalog creates a catalog from the given definitions.
// Later duplicates of the same name win; callers wanting duplicate
// detection should run definitions through the Loader first.
func NewCatalog(defs []domain.CropDefinition) *Catalog {
	m := make(map[string]domain.CropDefinition, len(defs))
	for _, def := range defs {
		m[def.Name] = def
	}
	return &Catalog{defs: m}
}

// NewDefaultCatalog creates a catalog with the compiled-in crop table
func NewDefaultCatalog() *Catalog {
	return NewCatalog(DefaultDefinitions())
}

// DefaultDefinitions returns the compiled-in crop table
func DefaultDefinitions() []domain.CropDefinition {
	return []domain.CropDefinition{
		{Name: "carrot", GrowthDuration: 3 * time.Minute, BaseYield: 2},
		{Name: "tomato", GrowthDuration: 5 * time.Minute, BaseYield: 3},
		{Name: "potato", GrowthDuration: 4 * time.Minute, BaseYield: 2},
		{Name: "wheat", GrowthDuration: 6 * time.Minute, BaseYield: 4},
		{Name: "pumpkin", GrowthDuration: 10 * time.Minute, BaseYield: 6},
	}
}

// Lookup returns the definition for name.
// Unknown names fall back to a default low-tier definition instead of
// failing, so planting never rejects a seed the player legitimately holds.
func (c *Catalog) Lookup(name string) domain.CropDefinition {
	if def, ok := c.defs[name]; ok {
		return def
	}
	return domain.CropDefinition{
		Name:           name,
		GrowthDuration: DefaultGrowthDuration,
		BaseYield:      DefaultBaseYield,
	}
}

// Known reports whether name has an explicit catalog entry
func (c *Catalog) Known(name string) bool {
	_, ok := c.defs[name]
	return ok
}

// Names returns every explicitly defined crop name (order unspecified)
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	return names
}
