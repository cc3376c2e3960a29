package crop

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crops.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCropLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"description": "Test crops",
			"crops": [
				{"name": "carrot", "growth_minutes": 3, "base_yield": 2},
				{"name": "tomato", "growth_minutes": 5, "base_yield": 3}
			]
		}`
		path := createTempFile(t, content)

		config, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Len(t, config.Crops, 2)
		assert.Equal(t, "carrot", config.Crops[0].Name)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read crops config file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := createTempFile(t, `{invalid json}`)

		_, err := loader.Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse crops config")
	})
}

func TestCropLoader_Validate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name: "valid config",
			config: &Config{Crops: []Def{
				{Name: "carrot", GrowthMinutes: 3, BaseYield: 2},
			}},
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "no crops",
			config:  &Config{},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "empty name",
			config: &Config{Crops: []Def{
				{Name: "", GrowthMinutes: 3, BaseYield: 2},
			}},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "duplicate name",
			config: &Config{Crops: []Def{
				{Name: "carrot", GrowthMinutes: 3, BaseYield: 2},
				{Name: "carrot", GrowthMinutes: 5, BaseYield: 3},
			}},
			wantErr: ErrDuplicateCropName,
		},
		{
			name: "non-positive growth duration",
			config: &Config{Crops: []Def{
				{Name: "carrot", GrowthMinutes: 0, BaseYield: 2},
			}},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "non-positive yield",
			config: &Config{Crops: []Def{
				{Name: "carrot", GrowthMinutes: 3, BaseYield: -1},
			}},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCropLoader_Build(t *testing.T) {
	loader := NewLoader()

	config := &Config{Crops: []Def{
		{Name: "carrot", GrowthMinutes: 3, BaseYield: 2},
	}}
	require.NoError(t, loader.Validate(config))

	catalog := loader.Build(config)
	def := catalog.Lookup("carrot")
	assert.Equal(t, 3*time.Minute, def.GrowthDuration)
	assert.Equal(t, uint(2), def.BaseYield)
}
