// Package config loads game configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultStartingChips = 100
	DefaultLogLevel      = "info"
	DefaultLogFile       = "drawpoker.log"

	MinPlayers = 2
	MaxPlayers = 10
)

// Player strategies. An empty strategy seats a human at the console.
const (
	StrategyHuman = ""
	StrategyCall  = "call"
	StrategyRand  = "rand"
	StrategyFold  = "fold"
)

// Config represents the complete game configuration
type Config struct {
	Game    *GameSettings  `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
	Log     *LogSettings   `hcl:"log,block"`
}

// GameSettings contains table-wide rules
type GameSettings struct {
	StartingChips     int    `hcl:"starting_chips,optional"`
	KickerTieBreak    bool   `hcl:"kicker_tiebreak,optional"`
	DecisionTimeoutMs int    `hcl:"decision_timeout_ms,optional"`
	MaxDiscards       int    `hcl:"max_discards,optional"`
	Seed              *int64 `hcl:"seed,optional"`
}

// PlayerConfig seats one player
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Chips    int    `hcl:"chips,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DefaultConfig returns the configuration used when no file exists: two
// human players with the default stack.
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			StartingChips: DefaultStartingChips,
		},
		Players: []PlayerConfig{
			{Name: "Player 1", Chips: DefaultStartingChips},
			{Name: "Player 2", Chips: DefaultStartingChips},
		},
		Log: &LogSettings{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills zero-valued settings. Players without chips get the
// table's starting stack.
func (c *Config) ApplyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.StartingChips == 0 {
		c.Game.StartingChips = DefaultStartingChips
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
	if len(c.Players) == 0 {
		c.Players = DefaultConfig().Players
	}
	for i := range c.Players {
		if c.Players[i].Chips == 0 {
			c.Players[i].Chips = c.Game.StartingChips
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive: %d", c.Game.StartingChips)
	}
	if c.Game.DecisionTimeoutMs < 0 {
		return fmt.Errorf("decision timeout must not be negative: %d", c.Game.DecisionTimeoutMs)
	}
	if c.Game.MaxDiscards < 0 || c.Game.MaxDiscards > 5 {
		return fmt.Errorf("max discards must be between 0 and 5: %d", c.Game.MaxDiscards)
	}

	if len(c.Players) < MinPlayers || len(c.Players) > MaxPlayers {
		return fmt.Errorf("need between %d and %d players, got %d", MinPlayers, MaxPlayers, len(c.Players))
	}

	validStrategies := map[string]bool{
		StrategyHuman: true,
		StrategyCall:  true,
		StrategyRand:  true,
		StrategyFold:  true,
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name: %s", p.Name)
		}
		seen[p.Name] = true
		if p.Chips <= 0 {
			return fmt.Errorf("player %s: chips must be positive", p.Name)
		}
		if !validStrategies[p.Strategy] {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// DecisionTimeout returns the per-decision timeout, zero when disabled.
func (c *Config) DecisionTimeout() time.Duration {
	return time.Duration(c.Game.DecisionTimeoutMs) * time.Millisecond
}

// SeatPlayers replaces the configured players with n humans named
// "Player 1".."Player n", keeping any configured names in order.
func (c *Config) SeatPlayers(n int, names []string) {
	players := make([]PlayerConfig, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		players = append(players, PlayerConfig{Name: name, Chips: c.Game.StartingChips})
	}
	c.Players = players
}

// HasHumans reports whether any configured player reads from the console.
func (c *Config) HasHumans() bool {
	for _, p := range c.Players {
		if p.Strategy == StrategyHuman {
			return true
		}
	}
	return false
}
