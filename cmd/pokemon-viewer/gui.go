package main

import (
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/pokeapi-desk/pokemon-viewer/internal/config"
	"github.com/pokeapi-desk/pokemon-viewer/internal/gui/app"
)

type FyneGUIApplication struct {
	logger *zap.Logger
	app    *app.Application
}

func NewFyneGUIApplication(cfg *config.Config) (*FyneGUIApplication, error) {
	logger, err := createLogger(cfg.Application.LogLevel)
	if err != nil {
		return nil, err
	}

	lookup, err := newLookupService(cfg, logger)
	if err != nil {
		return nil, err
	}

	guiApp := app.NewApplication(logger.Named("gui"), cfg, fyneapp.NewWithID("io.pokeapi-desk.pokemon-viewer"), lookup)
	if err := guiApp.Initialize(); err != nil {
		return nil, err
	}

	return &FyneGUIApplication{
		logger: logger,
		app:    guiApp,
	}, nil
}

// Run blocks until the window is closed.
func (a *FyneGUIApplication) Run() {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Info("Starting Pokémon viewer")
	a.app.Run()
}
