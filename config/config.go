// Package config loads match configuration from YAML files and AUTOBATTLE_* variables.
package config

import (
	"fmt"
	"os"

	"autobattle/game"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Env holds the optional environment overrides. Unset variables leave the field nil.
type Env struct {
	Preset         *string `env:"AUTOBATTLE_PRESET"`
	InitialUnits   *int    `env:"AUTOBATTLE_UNITS"`
	RNGSpread      *int    `env:"AUTOBATTLE_RNG_SPREAD"`
	TurnLimit      *int    `env:"AUTOBATTLE_TURN_LIMIT"`
	Formation      *string `env:"AUTOBATTLE_FORMATION"`
	ReinforceEvery *int    `env:"AUTOBATTLE_REINFORCE_EVERY"`
	ArmyCap        *int    `env:"AUTOBATTLE_ARMY_CAP"`
	Seed           *uint32 `env:"AUTOBATTLE_SEED"`
}

// LoadFile reads a YAML file over the defaults. Keys missing from the file keep their
// default value.
func LoadFile(path string) (game.Config, error) {
	cfg := game.DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays the AUTOBATTLE_* variables onto cfg. Preset and formation names are
// parsed strictly.
func ApplyEnv(cfg *game.Config) error {
	var e Env
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.Preset != nil {
		p, err := game.ParsePreset(*e.Preset)
		if err != nil {
			return fmt.Errorf("AUTOBATTLE_PRESET: %w", err)
		}
		cfg.Preset = p
	}
	if e.Formation != nil {
		f, err := game.ParseFormation(*e.Formation)
		if err != nil {
			return fmt.Errorf("AUTOBATTLE_FORMATION: %w", err)
		}
		cfg.Formation = f
	}
	if e.InitialUnits != nil {
		cfg.InitialUnits = *e.InitialUnits
	}
	if e.RNGSpread != nil {
		cfg.RNGSpread = *e.RNGSpread
	}
	if e.TurnLimit != nil {
		cfg.TurnLimit = *e.TurnLimit
	}
	if e.ReinforceEvery != nil {
		cfg.ReinforceEvery = *e.ReinforceEvery
	}
	if e.ArmyCap != nil {
		cfg.ArmyCap = *e.ArmyCap
	}
	if e.Seed != nil {
		*cfg = cfg.WithSeed(*e.Seed)
	}
	return nil
}

// Save writes cfg as YAML, e.g. next to the results of a series.
func Save(path string, cfg game.Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
