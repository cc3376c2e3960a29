package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// API authentication; empty disables auth (local development)
	APIKey         string
	TrustedProxies []string

	// World
	MapWidth  uint
	MapHeight uint

	// Merchant rotation policy
	MerchantRefreshInterval time.Duration
	MerchantListingDuration time.Duration

	// Exploration rate limit
	ExploreCooldown time.Duration

	// Crop catalog config file; empty means compiled-in defaults
	CropConfigPath string

	// Notification sinks
	EventLogPath   string // SQLite file for the notification log
	DeadLetterPath string // JSON lines file for undeliverable events
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		CropConfigPath: getEnv("CROP_CONFIG_PATH", ""),
		EventLogPath:   getEnv("EVENT_LOG_PATH", "data/events.sqlite"),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", "data/deadletter.jsonl"),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	width, err := getEnvInt("MAP_WIDTH", 10)
	if err != nil {
		return nil, err
	}
	height, err := getEnvInt("MAP_HEIGHT", 10)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("map dimensions must be positive, got %dx%d", width, height)
	}
	cfg.MapWidth = uint(width)
	cfg.MapHeight = uint(height)

	refreshMinutes, err := getEnvInt("MERCHANT_REFRESH_MINUTES", 5)
	if err != nil {
		return nil, err
	}
	listingMinutes, err := getEnvInt("MERCHANT_LISTING_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	exploreSeconds, err := getEnvInt("EXPLORE_COOLDOWN_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.MerchantRefreshInterval = time.Duration(refreshMinutes) * time.Minute
	cfg.MerchantListingDuration = time.Duration(listingMinutes) * time.Minute
	cfg.ExploreCooldown = time.Duration(exploreSeconds) * time.Second

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}
