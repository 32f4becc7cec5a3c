// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/maps-cache-service/config"
	"github.com/guttosm/maps-cache-service/internal/logger"
)

// InitializeLogger configures the global JSON logger.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
