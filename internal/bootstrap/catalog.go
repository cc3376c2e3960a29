package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/windrow/farmstead/internal/config"
	"github.com/windrow/farmstead/internal/crop"
)

// BuildCatalog constructs the crop catalog, loading definitions from the
// configured JSON file when one is set and falling back to the compiled-in
// defaults otherwise.
func BuildCatalog(cfg *config.Config) (*crop.Catalog, error) {
	if cfg.CropConfigPath == "" {
		slog.Info("Using built-in crop catalog")
		return crop.NewDefaultCatalog(), nil
	}

	loader := crop.NewLoader()
	cropCfg, err := loader.Load(cfg.CropConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load crop config: %w", err)
	}
	if err := loader.Validate(cropCfg); err != nil {
		return nil, fmt.Errorf("invalid crop config: %w", err)
	}

	catalog := loader.Build(cropCfg)
	slog.Info("Crop catalog loaded", "path", cfg.CropConfigPath, "crops", len(catalog.Names()))
	return catalog, nil
}
