package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pokeapi-desk/pokemon-viewer/internal/config"
	"github.com/pokeapi-desk/pokemon-viewer/internal/pokeapi"
	"github.com/pokeapi-desk/pokemon-viewer/internal/services"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to configuration file")
	noGUI := flag.Bool("nogui", false, "Run the terminal shell instead of the window")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if *noGUI {
		app, err := NewTerminalApplication(cfg)
		if err != nil {
			panic(err)
		}

		if err := app.Run(); err != nil {
			app.logger.Fatal("Application failed", zap.Error(err))
		}
		return
	}

	app, err := NewFyneGUIApplication(cfg)
	if err != nil {
		panic(err)
	}

	app.Run()
}

// newLookupService wires the API client into the search flow both shells use.
func newLookupService(cfg *config.Config, logger *zap.Logger) (*services.LookupService, error) {
	client, err := pokeapi.NewClient(pokeapi.Options{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		UserAgent:         cfg.API.UserAgent,
		RequestsPerMinute: cfg.API.RequestsPerMinute,
		Burst:             cfg.API.Burst,
	}, logger.Named("pokeapi"))
	if err != nil {
		return nil, fmt.Errorf("init pokeapi client: %w", err)
	}

	return services.NewLookupService(
		logger.Named("lookup"),
		client,
		cfg.Artwork.Width,
		cfg.Artwork.Height,
		cfg.API.Timeout,
	), nil
}
