package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds reactor command configuration.
type Config struct {
	Players  int           `env:"REACTOR_PLAYERS"   envDefault:"2"`
	Grid     string        `env:"REACTOR_GRID"      envDefault:"s"`
	Games    int           `env:"REACTOR_GAMES"     envDefault:"1"`
	Seed     int64         `env:"REACTOR_SEED"      envDefault:"1"`
	MaxTurns int           `env:"REACTOR_MAX_TURNS" envDefault:"2000"`
	Animate  bool          `env:"REACTOR_ANIMATE"`
	Frame    time.Duration `env:"REACTOR_FRAME"     envDefault:"16ms"`
	LogLevel string        `env:"REACTOR_LOG_LEVEL" envDefault:"info"`
	Verbose  bool          `env:"REACTOR_VERBOSE"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of players (2-8)")
	fs.StringVar(&cfg.Grid, "grid", cfg.Grid, "grid size: s (6x10) or l (10x18)")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "number of games to play")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed of the first game")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "give up a game after this many turns")
	fs.BoolVar(&cfg.Animate, "animate", cfg.Animate, "resolve reactions through the motion timeline")
	fs.DurationVar(&cfg.Frame, "frame", cfg.Frame, "timeline step when animating")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print the final board of every game")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
