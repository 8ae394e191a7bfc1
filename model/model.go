package model

import "fmt"

type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction indexes Cell neighbours. Opposite directions are two apart.
type Direction int

const (
	RIGHT Direction = iota
	DOWN
	LEFT
	UP
)

var DIRECTIONS = [4]Direction{RIGHT, DOWN, LEFT, UP}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) Name() string {
	switch d {
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case UP:
		return "UP"
	default:
		return fmt.Sprintf("n/a:%d", d)
	}
}

// AtomID identifies one atom for as long as it lives on the board, including
// the moves it makes between cells during a reaction.
type AtomID uint64

// Movement is a single atom delivery computed in one wave.
type Movement struct {
	Atom   AtomID
	From   Position
	To     Position
	Player *Player
}

// Standing counts what a player holds on the board.
type Standing struct {
	Player *Player
	Cells  int
	Atoms  int
}
