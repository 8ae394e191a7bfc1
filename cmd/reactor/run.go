package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/reactor/game"
	"github.com/zucenko/reactor/model"
	"github.com/zucenko/reactor/motion"
)

type Result struct {
	Seed      int64
	Winner    *model.Player
	Stats     game.Stats
	Standings []model.Standing
	Board     string
}

// Run plays cfg.Games bot games and writes a report to out.
func Run(cfg Config, out io.Writer) error {
	if cfg.Games < 1 {
		return errors.New("games must be positive")
	}
	if cfg.Animate && cfg.Frame <= 0 {
		return errors.New("frame must be positive when animating")
	}
	wins := make(map[string]int)
	for i := 0; i < cfg.Games; i++ {
		res, err := Play(cfg, cfg.Seed+int64(i))
		if err != nil {
			return err
		}
		report(out, res, cfg.Verbose)
		if res.Winner != nil {
			wins[res.Winner.Name()]++
		}
	}
	if cfg.Games > 1 {
		fmt.Fprint(out, "wins:")
		for _, p := range playerNames(cfg.Players) {
			fmt.Fprintf(out, " %s=%d", p, wins[p])
		}
		fmt.Fprintln(out)
	}
	return nil
}

func playerNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, string(rune('A'+i)))
	}
	return names
}

// Play runs one game between random bots.
func Play(cfg Config, seed int64) (Result, error) {
	s, err := game.NewSession(game.Config{Players: cfg.Players, Grid: model.GridSize(cfg.Grid)})
	if err != nil {
		return Result{}, err
	}
	if cfg.Animate {
		s.Animator = motion.NewTimeline(motion.DefaultDuration, nil)
	}
	rng := rand.New(rand.NewSource(seed))
	frame := float32(cfg.Frame.Seconds())

	for s.State != game.GS_OVER && s.Stats.Turns < cfg.MaxTurns {
		row, col, ok := pickMove(s.Board, rng)
		if !ok {
			return Result{}, fmt.Errorf("seed %d: %s has no move", seed, s.CurrentPlayer())
		}
		if res := s.Turn(row, col); res != game.MOVE_ACCEPTED {
			return Result{}, fmt.Errorf("seed %d: move (%d,%d) %s", seed, row, col, res.Name())
		}
		for s.State == game.GS_REACTING {
			s.Update(frame)
		}
	}

	log.WithFields(log.Fields{
		"seed":      seed,
		"turns":     s.Stats.Turns,
		"reactions": s.Stats.Reactions,
		"waves":     s.Stats.Waves,
		"winner":    s.Winner.String(),
	}).Info("game finished")

	return Result{
		Seed:      seed,
		Winner:    s.Winner,
		Stats:     s.Stats,
		Standings: s.Board.Standings(),
		Board:     s.Board.String(),
	}, nil
}

// pickMove chooses uniformly among the cells the current player may use.
func pickMove(b *model.Board, rng *rand.Rand) (row, col int, ok bool) {
	var valid []model.Position
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.ValidateMove(r, c) {
				valid = append(valid, model.Position{Row: r, Col: c})
			}
		}
	}
	if len(valid) == 0 {
		return 0, 0, false
	}
	p := valid[rng.Intn(len(valid))]
	return p.Row, p.Col, true
}

func report(out io.Writer, res Result, verbose bool) {
	fmt.Fprintf(out, "seed %d: winner %s after %d turns, %d reactions, %d waves",
		res.Seed, res.Winner, res.Stats.Turns, res.Stats.Reactions, res.Stats.Waves)
	if res.Stats.Halts > 0 {
		fmt.Fprintf(out, ", %d halted", res.Stats.Halts)
	}
	fmt.Fprintln(out)
	for _, st := range res.Standings {
		fmt.Fprintf(out, "  %s cells=%d atoms=%d\n", st.Player, st.Cells, st.Atoms)
	}
	for _, p := range res.Stats.Eliminated {
		fmt.Fprintf(out, "  %s eliminated\n", p)
	}
	if verbose {
		fmt.Fprint(out, res.Board)
	}
}
