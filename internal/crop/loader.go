package crop

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/windrow/farmstead/internal/domain"
)

// Sentinel errors for the crop config loader
var (
	ErrDuplicateCropName = errors.New("duplicate crop name")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Config represents the JSON configuration for crops
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Crops []Def `json:"crops"`
}

// Def represents a single crop definition in the JSON.
// GrowthMinutes keeps the config file in whole minutes, the unit the
// growth timers are tuned in.
type Def struct {
	Name          string `json:"name"`
	GrowthMinutes int    `json:"growth_minutes"`
	BaseYield     int    `json:"base_yield"`
}

// Loader handles loading and validating crop configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) *Catalog
}

type cropLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &cropLoader{}
}

// Load reads and parses a crops JSON file
func (l *cropLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read crops config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse crops config: %w", err)
	}

	return &config, nil
}

// Validate checks the crop configuration for errors
func (l *cropLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if len(config.Crops) == 0 {
		return fmt.Errorf("%w: no crops defined", ErrInvalidConfig)
	}

	// Track names for duplicate detection
	names := make(map[string]bool, len(config.Crops))

	for i := range config.Crops {
		def := &config.Crops[i]

		if def.Name == "" {
			return fmt.Errorf("%w: crop at index %d has empty name", ErrInvalidConfig, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateCropName, def.Name)
		}
		names[def.Name] = true

		if def.GrowthMinutes <= 0 {
			return fmt.Errorf("%w: crop '%s' has non-positive growth duration", ErrInvalidConfig, def.Name)
		}
		if def.BaseYield <= 0 {
			return fmt.Errorf("%w: crop '%s' has non-positive base yield", ErrInvalidConfig, def.Name)
		}
	}

	return nil
}

// Build converts a validated config into a Catalog
func (l *cropLoader) Build(config *Config) *Catalog {
	defs := make([]domain.CropDefinition, 0, len(config.Crops))
	for _, def := range config.Crops {
		defs = append(defs, domain.CropDefinition{
			Name:           def.Name,
			GrowthDuration: time.Duration(def.GrowthMinutes) * time.Minute,
			BaseYield:      uint(def.BaseYield),
		})
	}
	return NewCatalog(defs)
}
