package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityFollowsNeighbours(t *testing.T) {
	b, err := NewBoard(3, 3, testPlayers(t, 2))
	require.NoError(t, err)

	want := [3][3]int{
		{1, 2, 1},
		{2, 3, 2},
		{1, 2, 1},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, want[r][c], b.Cell(r, c).Capacity(), "cell (%d,%d)", r, c)
		}
	}
}

func TestCapacityOnLargeGrid(t *testing.T) {
	rows, cols := GRID_LARGE.Dimensions()
	b, err := NewBoard(rows, cols, testPlayers(t, 2))
	require.NoError(t, err)

	counts := map[int]int{}
	b.each(func(cell *Cell) {
		counts[cell.Capacity()]++
	})
	assert.Equal(t, 4, counts[1])
	assert.Equal(t, 2*(rows-2)+2*(cols-2), counts[2])
	assert.Equal(t, (rows-2)*(cols-2), counts[3])
}

func TestAddAtomCaptures(t *testing.T) {
	players := testPlayers(t, 2)
	b, err := NewBoard(2, 2, players)
	require.NoError(t, err)
	cell := b.Cell(0, 0)

	cell.AddAtom(players[0])
	assert.Same(t, players[0], cell.Owner())
	cell.AddAtom(players[1])
	assert.Same(t, players[1], cell.Owner())
	assert.Equal(t, 2, cell.AtomCount())
	assert.True(t, cell.IsOverflowing())
}

func TestRemoveOneAtom(t *testing.T) {
	players := testPlayers(t, 2)
	b, err := NewBoard(2, 2, players)
	require.NoError(t, err)
	cell := b.Cell(1, 1)
	cell.AddAtom(players[0])
	cell.AddAtom(players[0])
	atoms := cell.Atoms()
	require.Len(t, atoms, 2)

	assert.Equal(t, atoms[1], cell.RemoveOneAtom())
	assert.Same(t, players[0], cell.Owner())
	assert.Equal(t, atoms[0], cell.RemoveOneAtom())
	assert.Nil(t, cell.Owner())
	assert.Equal(t, 0, cell.AtomCount())

	assert.Panics(t, func() { cell.RemoveOneAtom() })
}

func TestAtomIDsAreUniquePerBoard(t *testing.T) {
	players := testPlayers(t, 2)
	b, err := NewBoard(2, 3, players)
	require.NoError(t, err)
	b.Cell(0, 0).AddAtom(players[0])
	b.Cell(1, 2).AddAtom(players[1])
	b.Cell(0, 0).AddAtom(players[0])

	seen := map[AtomID]bool{}
	b.each(func(cell *Cell) {
		for _, atom := range cell.Atoms() {
			assert.False(t, seen[atom], "atom %d repeated", atom)
			seen[atom] = true
		}
	})
	assert.Len(t, seen, 3)
}

func TestNeighbours(t *testing.T) {
	b, err := NewBoard(2, 3, testPlayers(t, 2))
	require.NoError(t, err)
	cell := b.Cell(0, 1)

	assert.Same(t, b.Cell(0, 2), cell.Neighbour(RIGHT))
	assert.Same(t, b.Cell(1, 1), cell.Neighbour(DOWN))
	assert.Same(t, b.Cell(0, 0), cell.Neighbour(LEFT))
	assert.Nil(t, cell.Neighbour(UP))
	for _, d := range DIRECTIONS {
		if nb := cell.Neighbour(d); nb != nil {
			assert.Same(t, cell, nb.Neighbour(d.Opposite()), d.Name())
		}
	}
}
