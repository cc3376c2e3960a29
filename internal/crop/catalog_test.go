package crop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/windrow/farmstead/internal/domain"
)

func TestCatalogLookup(t *testing.T) {
	catalog := NewDefaultCatalog()

	t.Run("known crop", func(t *testing.T) {
		def := catalog.Lookup("carrot")
		assert.Equal(t, "carrot", def.Name)
		assert.Equal(t, 3*time.Minute, def.GrowthDuration)
		assert.Equal(t, uint(2), def.BaseYield)
		assert.True(t, catalog.Known("carrot"))
	})

	t.Run("unknown crop falls back to default definition", func(t *testing.T) {
		def := catalog.Lookup("moonberry")
		assert.Equal(t, "moonberry", def.Name)
		assert.Equal(t, DefaultGrowthDuration, def.GrowthDuration)
		assert.Equal(t, uint(DefaultBaseYield), def.BaseYield)
		assert.False(t, catalog.Known("moonberry"))
	})
}

func TestCatalogNames(t *testing.T) {
	catalog := NewCatalog([]domain.CropDefinition{
		{Name: "carrot", GrowthDuration: time.Minute, BaseYield: 1},
		{Name: "tomato", GrowthDuration: time.Minute, BaseYield: 1},
	})

	names := catalog.Names()
	assert.ElementsMatch(t, []string{"carrot", "tomato"}, names)
}
