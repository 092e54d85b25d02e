// Package main is the entry point for the locomotion demo window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/locomotion/internal/config"
	"github.com/Faultbox/locomotion/internal/game"
	"github.com/Faultbox/locomotion/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Locomotion ===", zap.String("config", config.Path()))
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}

	runErr := g.Run()
	g.Close()
	if runErr != nil {
		logger.Fatal("game error", zap.Error(runErr))
	}

	logger.Info("game closed normally")
}
