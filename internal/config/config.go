// Package config loads game configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete game configuration
type Config struct {
	Game  GameSettings `hcl:"game,block"`
	Seats []SeatConfig `hcl:"seat,block"`
}

// GameSettings holds table-level settings
type GameSettings struct {
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	MaxHands      int    `hcl:"max_hands,optional"`
	LogLevel      string `hcl:"log_level,optional"`
}

// SeatConfig defines one seat at the table
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Chips    int    `hcl:"chips,optional"`
}

// Default returns the configuration used when no file is present: a
// human seat against three computer opponents.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			SmallBlind:    5,
			BigBlind:      10,
			StartingChips: 1000,
			LogLevel:      "info",
		},
		Seats: []SeatConfig{
			{Name: "You", Strategy: "human"},
			{Name: "Alice", Strategy: "computer"},
			{Name: "Bob", Strategy: "random"},
			{Name: "Carol", Strategy: "advanced"},
		},
	}
}

// Load reads an HCL config file, falling back to Default when the
// file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Game.SmallBlind == 0 {
		cfg.Game.SmallBlind = 5
	}
	if cfg.Game.BigBlind == 0 {
		cfg.Game.BigBlind = cfg.Game.SmallBlind * 2
	}
	if cfg.Game.StartingChips == 0 {
		cfg.Game.StartingChips = 1000
	}
	if cfg.Game.LogLevel == "" {
		cfg.Game.LogLevel = "info"
	}
	for i := range cfg.Seats {
		if cfg.Seats[i].Chips == 0 {
			cfg.Seats[i].Chips = cfg.Game.StartingChips
		}
	}

	return &cfg, nil
}

// Validate checks the configuration for playability
func (c *Config) Validate() error {
	if c.Game.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Game.BigBlind <= c.Game.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if len(c.Seats) < 2 {
		return fmt.Errorf("at least two seats must be configured")
	}
	if len(c.Seats) > 10 {
		return fmt.Errorf("at most ten seats may be configured")
	}

	validStrategies := map[string]bool{
		"human":           true,
		"calling-station": true,
		"random":          true,
		"computer":        true,
		"advanced":        true,
	}
	humans := 0
	for _, seat := range c.Seats {
		if !validStrategies[seat.Strategy] {
			return fmt.Errorf("seat %s: invalid strategy %s", seat.Name, seat.Strategy)
		}
		if seat.Strategy == "human" {
			humans++
		}
		if seat.Chips <= 0 {
			return fmt.Errorf("seat %s: chips must be positive", seat.Name)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat is supported")
	}
	return nil
}
