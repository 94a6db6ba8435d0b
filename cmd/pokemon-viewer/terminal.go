package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pokeapi-desk/pokemon-viewer/internal/config"
	"github.com/pokeapi-desk/pokemon-viewer/internal/services"
	"github.com/pokeapi-desk/pokemon-viewer/internal/tui"
)

type TerminalApplication struct {
	logger *zap.Logger
	lookup *services.LookupService
}

func NewTerminalApplication(cfg *config.Config) (*TerminalApplication, error) {
	level := cfg.Application.LogLevel
	if level == "info" || level == "debug" {
		level = "warn"
	}
	logger, err := createLogger(level, "stderr")
	if err != nil {
		return nil, err
	}

	lookup, err := newLookupService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &TerminalApplication{
		logger: logger,
		lookup: lookup,
	}, nil
}

// Run blocks until the user quits or the process is signalled.
func (a *TerminalApplication) Run() error {
	defer func() { _ = a.logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, a.lookup)
}
