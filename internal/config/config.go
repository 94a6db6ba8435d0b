package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Application Application `yaml:"application"`
	API         API         `yaml:"api"`
	Artwork     Artwork     `yaml:"artwork"`
	GUI         GUI         `yaml:"gui"`
}

type Application struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	LogLevel string `yaml:"log_level"`
}

type API struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
	Burst             int           `yaml:"burst"`
}

// Artwork is the fixed display dimension artwork is resized to.
type Artwork struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GUI struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
}

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	DefaultPath    = "config.yml"
)

// Default returns a configuration that runs the application with no file present.
func Default() *Config {
	return &Config{
		Application: Application{
			Name:     "pokemon-viewer",
			Version:  "1.0.0",
			LogLevel: "info",
		},
		API: API{
			BaseURL:           DefaultBaseURL,
			Timeout:           15 * time.Second,
			UserAgent:         "pokemon-viewer/1.0",
			RequestsPerMinute: 100,
			Burst:             5,
		},
		Artwork: Artwork{
			Width:  330,
			Height: 330,
		},
		GUI: GUI{
			Title:  "Pokémon API",
			Width:  800,
			Height: 560,
			Theme:  "light",
		},
	}
}

// Load overlays the YAML file at path onto Default, applies environment
// overrides and validates the result. A missing file is only an error when the
// caller asked for a non-default path.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup lookupEnvFunc) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		data = nil
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	}

	doc, err := loadDocument(data, lookup)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(doc, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that the schema cannot express on its own, such as
// durations that YAML parsed into time.Duration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: api.base_url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("config: api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RequestsPerMinute <= 0 {
		return fmt.Errorf("config: api.requests_per_minute must be positive, got %d", c.API.RequestsPerMinute)
	}
	if c.API.Burst <= 0 {
		return fmt.Errorf("config: api.burst must be positive, got %d", c.API.Burst)
	}
	if c.Artwork.Width <= 0 || c.Artwork.Height <= 0 {
		return fmt.Errorf("config: artwork size must be positive, got %dx%d", c.Artwork.Width, c.Artwork.Height)
	}
	return nil
}
