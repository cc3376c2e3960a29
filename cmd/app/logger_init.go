package main

import (
	"github.com/windrow/farmstead/internal/config"
	"github.com/windrow/farmstead/internal/handler"
	"github.com/windrow/farmstead/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"farmstead",
		handler.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
