package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/battlebots/battleship"
	"github.com/lox/battlebots/cmd/battlebots/shared"
	"github.com/lox/battlebots/internal/config"
	"github.com/lox/battlebots/internal/player"
	"github.com/lox/battlebots/internal/randutil"
)

// Globals are flags shared by every subcommand. Non-zero flags override the
// config file and environment.
type Globals struct {
	Config   string `short:"c" default:"battlebots.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (debug, info, warn, error)"`
	Seed     int64  `help:"Random seed (0 seeds from the clock)"`
	Size     int    `help:"Board size"`
}

type runtime struct {
	cfg    *config.Config
	logger *log.Logger
}

func (g *Globals) load() (*runtime, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Size != 0 {
		cfg.Game.Size = g.Size
	}
	if g.Seed != 0 {
		cfg.Players[0].Seed = g.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	return &runtime{cfg: cfg, logger: logger}, nil
}

// selection picks the strategy and seed: an explicit --player wins, otherwise
// the first configured player is used.
func (r *runtime) selection(name string) (string, int64) {
	first := r.cfg.Players[0]
	if name == "" {
		return first.Strategy, first.Seed
	}
	if pc := r.cfg.Player(name); pc != nil {
		return pc.Strategy, pc.Seed
	}
	return name, first.Seed
}

func (r *runtime) settings() battleship.Settings {
	return r.cfg.Settings()
}

func (r *runtime) spawn(name string) (*player.Instance, error) {
	strategy, seed := r.selection(name)
	return player.Spawn(strategy, r.settings(), randutil.New(seed), r.logger)
}
