// Package main is the entry point for the raycaster.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/config"
	"github.com/Faultbox/raycaster/internal/game"
	"github.com/Faultbox/raycaster/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Raycaster ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}

	runErr := g.Run()
	if err := g.Close(); err != nil {
		logger.Warn("teardown failed", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("game error", zap.Error(runErr))
		return 1
	}

	logger.Info("game closed normally")
	return 0
}
