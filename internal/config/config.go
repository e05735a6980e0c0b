// Package config reads runtime settings from an optional .env file and the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Garsondee/Fleet-Skirmish/internal/engine"
)

// Config holds the settings shared by the binaries.
type Config struct {
	Seed            int64
	Mitigation      engine.MitigationPolicy
	ScatterAttempts int
}

// Load reads .env if present, then FLEET_SEED, FLEET_MITIGATION and
// FLEET_SCATTER_ATTEMPTS. Unset values fall back to defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring unreadable .env: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, without touching .env.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Seed:            time.Now().UnixNano(),
		Mitigation:      engine.MitigatePerTarget,
		ScatterAttempts: engine.DefaultScatterAttempts,
	}
	if v := getenv("FLEET_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("FLEET_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("FLEET_MITIGATION"); v != "" {
		p, err := engine.ParseMitigation(v)
		if err != nil {
			return cfg, fmt.Errorf("FLEET_MITIGATION: %w", err)
		}
		cfg.Mitigation = p
	}
	if v := getenv("FLEET_SCATTER_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("FLEET_SCATTER_ATTEMPTS: want a non-negative integer, got %q", v)
		}
		cfg.ScatterAttempts = n
	}
	return cfg, nil
}

// Options turns the config into engine options.
func (c Config) Options() []engine.Option {
	return []engine.Option{
		engine.WithSeed(c.Seed),
		engine.WithMitigation(c.Mitigation),
		engine.WithScatterAttempts(c.ScatterAttempts),
	}
}
