package main

import (
	"bytes"
	"flag"
	"io"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/reactor/game"
	"github.com/zucenko/reactor/model"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("reactor", flag.ContinueOnError), nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Players:  2,
		Grid:     "s",
		Games:    1,
		Seed:     1,
		MaxTurns: 2000,
		Frame:    16 * time.Millisecond,
		LogLevel: "info",
	}, cfg)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("REACTOR_PLAYERS", "4")
	t.Setenv("REACTOR_GRID", "l")
	t.Setenv("REACTOR_ANIMATE", "true")

	cfg, err := ParseConfig(flag.NewFlagSet("reactor", flag.ContinueOnError), []string{"-players", "3", "-seed", "42"})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Players)
	assert.Equal(t, "l", cfg.Grid)
	assert.True(t, cfg.Animate)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("REACTOR_GAMES", "many")

	_, err := ParseConfig(flag.NewFlagSet("reactor", flag.ContinueOnError), nil)
	assert.Error(t, err)
}

func TestPlayFinishesGame(t *testing.T) {
	cfg := Config{Players: 3, Grid: "s", MaxTurns: 5000}
	res, err := Play(cfg, 7)
	require.NoError(t, err)

	require.NotNil(t, res.Winner)
	assert.Len(t, res.Stats.Eliminated, 2)
	total := 0
	for _, st := range res.Standings {
		total += st.Atoms
	}
	assert.Equal(t, res.Stats.Turns, total)
}

func TestPlayAnimatedMatchesPlain(t *testing.T) {
	cfg := Config{Players: 2, Grid: "s", MaxTurns: 5000}
	plain, err := Play(cfg, 3)
	require.NoError(t, err)

	cfg.Animate = true
	cfg.Frame = 50 * time.Millisecond
	animated, err := Play(cfg, 3)
	require.NoError(t, err)

	assert.Equal(t, plain.Board, animated.Board)
	assert.Equal(t, plain.Stats.Turns, animated.Stats.Turns)
	assert.Equal(t, plain.Winner.Name(), animated.Winner.Name())
}

func TestRunReport(t *testing.T) {
	var out bytes.Buffer
	err := Run(Config{Players: 2, Grid: "s", Games: 2, Seed: 1, MaxTurns: 5000, Verbose: true}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "seed 1: winner")
	assert.Contains(t, out.String(), "seed 2: winner")
	assert.Contains(t, out.String(), "wins: A=")
}

func TestRunRejectsBadConfig(t *testing.T) {
	var out bytes.Buffer
	err := Run(Config{Players: 2, Grid: "xl", Games: 1, MaxTurns: 10}, &out)
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
	assert.ErrorIs(t, err, model.ErrGridSize)

	assert.Error(t, Run(Config{Players: 2, Grid: "s"}, &out))
}
