package game

import (
	"errors"
	"fmt"

	"github.com/zucenko/reactor/model"
	"github.com/zyedidia/generic/mapset"
)

var ErrInvalidConfig = errors.New("invalid game config")

type GameState int

const (
	GS_NEW GameState = iota
	GS_PLAY
	GS_REACTING
	GS_OVER
)

type MoveResult int

const (
	MOVE_ACCEPTED MoveResult = iota
	MOVE_INVALID
	MOVE_LOCKED
	MOVE_OVER
)

// Animator presents the atom movements of a wave. done must be called once,
// after every movement of the batch finished; the next wave waits for it.
// done may also be called from inside Schedule.
type Animator interface {
	Schedule(moves []model.Movement, done func())
	Update(dt float32)
}

type Config struct {
	Players int
	Grid    model.GridSize
}

func (c Config) Validate() error {
	if c.Players < model.MinPlayers || c.Players > len(model.PALETTE) {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, model.ErrPlayerCount, c.Players)
	}
	if _, err := model.ParseGridSize(string(c.Grid)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

type Stats struct {
	Turns      int
	Reactions  int
	Waves      int
	Halts      int
	Eliminated []*model.Player
}

// Session runs one game on a board: one move at a time, eliminations and
// the winner. Hooks are forwarded from the reactions it runs.
type Session struct {
	State    GameState
	Board    *model.Board
	Hooks    model.Hooks
	Animator Animator
	Winner   *model.Player
	Stats    Stats

	moved    mapset.Set[*model.Player]
	reaction *model.Reaction
	actor    *model.Player
}
