// Package main is the entry point for the Driftnet viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mkoren/driftnet/internal/app"
	"github.com/mkoren/driftnet/internal/config"
	"github.com/mkoren/driftnet/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Driftnet ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the app
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	// Run the main loop
	if err := a.Run(); err != nil {
		logger.Error("app error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
