package model

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var PALETTE = []colorful.Color{
	mustHex("#FF0000"), // red
	mustHex("#00FF00"), // green
	mustHex("#0000FF"), // blue
	mustHex("#FFFF00"), // yellow
	mustHex("#FF00FF"), // magenta
	mustHex("#00FFFF"), // cyan
	mustHex("#FF7F00"), // orange
	mustHex("#FFFFFF"), // white
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

const MinPlayers = 2

var (
	ErrPlayerCount = errors.New("player count out of range")
	ErrGridSize    = errors.New("unknown grid size")
)

// NewPlayers creates n players named A, B, ... each with its own palette colour.
func NewPlayers(n int) ([]*Player, error) {
	if n < MinPlayers || n > len(PALETTE) {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrPlayerCount, n, MinPlayers, len(PALETTE))
	}
	players := make([]*Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, NewPlayer(string(rune('A'+i)), PALETTE[i]))
	}
	return players, nil
}

type GridSize string

const (
	GRID_SMALL GridSize = "s"
	GRID_LARGE GridSize = "l"
)

// Dimensions returns rows and columns of the grid.
func (g GridSize) Dimensions() (rows, cols int) {
	switch g {
	case GRID_SMALL:
		return 6, 10
	case GRID_LARGE:
		return 10, 18
	default:
		panic(fmt.Sprintf("unknown grid size %q", string(g)))
	}
}

func ParseGridSize(s string) (GridSize, error) {
	switch g := GridSize(s); g {
	case GRID_SMALL, GRID_LARGE:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrGridSize, s)
	}
}
