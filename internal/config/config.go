package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the dashboard server settings.
type Config struct {
	Port        string   `env:"PORT"                envDefault:"8050"`
	DataSource  string   `env:"DATA_SOURCE"         envDefault:"data/spacex_launch_dash.csv"`
	LaunchSites []string `env:"LAUNCH_SITES"        envSeparator:","`
	SliderStep  float64  `env:"PAYLOAD_SLIDER_STEP" envDefault:"1000"`
	Debug       bool     `env:"DEBUG"               envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

// FromEnv parses and validates the process environment without touching .env.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: parse env: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	cfg.DataSource = strings.TrimSpace(cfg.DataSource)

	sites := make([]string, 0, len(cfg.LaunchSites))
	for _, s := range cfg.LaunchSites {
		if s = strings.TrimSpace(s); s != "" {
			sites = append(sites, s)
		}
	}
	cfg.LaunchSites = sites

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.DataSource == "" {
		return errors.New("DATA_SOURCE must not be empty")
	}
	if c.SliderStep <= 0 {
		return fmt.Errorf("PAYLOAD_SLIDER_STEP must be positive, got %v", c.SliderStep)
	}
	return nil
}

// Get returns the environment value for key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
