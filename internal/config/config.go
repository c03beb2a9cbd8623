// Package config loads battlebots settings from an HCL file, with environment
// overrides applied on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joeshaw/envdecode"

	"github.com/lox/battlebots/battleship"
	"github.com/lox/battlebots/internal/player"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete file configuration
type Config struct {
	Game    *GameConfig    `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
	Log     *LogConfig     `hcl:"log,block"`
}

// GameConfig mirrors the settings the host passes to each player
type GameConfig struct {
	Size          int   `hcl:"size,optional"`
	MaxTurns      int   `hcl:"max_turns,optional"`
	MaxFnTimeMs   int   `hcl:"max_fn_time_ms,optional"`
	FeedbackDelay int   `hcl:"feedback_delay,optional"`
	Ships         []int `hcl:"ships,optional"`
}

// PlayerConfig names a strategy and the seed for its random source
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Seed     int64  `hcl:"seed,optional"`
}

// LogConfig controls logger construction
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Environment variables read by ApplyEnv
const (
	EnvSize     = "BATTLEBOTS_SIZE"
	EnvSeed     = "BATTLEBOTS_SEED"
	EnvPlayer   = "BATTLEBOTS_PLAYER"
	EnvLogLevel = "BATTLEBOTS_LOG_LEVEL"
)

type envOverrides struct {
	Size     int    `env:"BATTLEBOTS_SIZE"`
	Seed     int64  `env:"BATTLEBOTS_SEED"`
	Player   string `env:"BATTLEBOTS_PLAYER"`
	LogLevel string `env:"BATTLEBOTS_LOG_LEVEL"`
}

// Default returns the stock configuration: the host's default game and a
// single random-shot player.
func Default() *Config {
	d := battleship.DefaultSettings()
	return &Config{
		Game: &GameConfig{
			Size:          d.Size,
			MaxTurns:      d.MaxTurns,
			MaxFnTimeMs:   int(d.MaxFnTime / time.Millisecond),
			FeedbackDelay: d.FeedbackDelay,
			Ships:         d.Ships,
		},
		Players: []PlayerConfig{
			{Name: "p1", Strategy: player.DefaultName},
		},
		Log: &LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads filename. A missing file is not an error and yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills defaults for anything left unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Game == nil {
		c.Game = def.Game
	} else {
		if c.Game.Size == 0 {
			c.Game.Size = def.Game.Size
		}
		if c.Game.MaxTurns == 0 {
			c.Game.MaxTurns = def.Game.MaxTurns
		}
		if len(c.Game.Ships) == 0 {
			c.Game.Ships = def.Game.Ships
		}
	}

	if len(c.Players) == 0 {
		c.Players = def.Players
	}
	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = player.DefaultName
		}
	}

	if c.Log == nil {
		c.Log = def.Log
	} else {
		if c.Log.Level == "" {
			c.Log.Level = def.Log.Level
		}
		if c.Log.Format == "" {
			c.Log.Format = def.Log.Format
		}
	}
}

// ApplyEnv overrides the configuration from BATTLEBOTS_* variables. Size, seed
// and player apply to the first configured player.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("decode environment: %w", err)
	}

	if env.Size != 0 {
		c.Game.Size = env.Size
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.Seed != 0 {
		c.Players[0].Seed = env.Seed
	}
	if env.Player != "" {
		c.Players[0].Strategy = env.Player
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	g := c.Game
	if g.Size < 1 {
		return fmt.Errorf("%w: board size must be positive, got %d", ErrInvalid, g.Size)
	}
	if g.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalid, g.MaxTurns)
	}
	if g.MaxFnTimeMs < 0 {
		return fmt.Errorf("%w: max_fn_time_ms must not be negative", ErrInvalid)
	}
	if g.FeedbackDelay < 0 {
		return fmt.Errorf("%w: feedback_delay must not be negative", ErrInvalid)
	}
	if len(g.Ships) == 0 {
		return fmt.Errorf("%w: at least one ship is required", ErrInvalid)
	}
	for _, length := range g.Ships {
		if length < 1 {
			return fmt.Errorf("%w: ship length must be positive, got %d", ErrInvalid, length)
		}
	}

	seen := make(map[string]bool)
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true
		if _, err := player.Resolve(p.Strategy); err != nil {
			return fmt.Errorf("%w: player %s: %v", ErrInvalid, p.Name, err)
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// Settings converts the game block into what players are constructed with.
func (c *Config) Settings() battleship.Settings {
	return battleship.Settings{
		Size:          c.Game.Size,
		MaxTurns:      c.Game.MaxTurns,
		MaxFnTime:     time.Duration(c.Game.MaxFnTimeMs) * time.Millisecond,
		FeedbackDelay: c.Game.FeedbackDelay,
		Ships:         append([]int(nil), c.Game.Ships...),
	}
}

// Player returns the named player block, or nil.
func (c *Config) Player(name string) *PlayerConfig {
	for i := range c.Players {
		if c.Players[i].Name == name {
			return &c.Players[i]
		}
	}
	return nil
}
