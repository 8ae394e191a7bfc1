package model

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrGridTooSmall    = errors.New("grid needs at least 2 rows and 2 columns")
	ErrNoPlayers       = errors.New("no players")
	ErrNilPlayer       = errors.New("nil player")
	ErrDuplicatePlayer = errors.New("duplicate player")
	ErrOwnerDropped    = errors.New("player still owns cells")
)

// Board owns the grid, the player rotation and the reaction algorithm.
// Matrix is indexed [row][col]. A Board is not safe for concurrent use.
type Board struct {
	Matrix [][]*Cell

	rows, cols int
	players    []*Player
	current    int
	atomSeq    AtomID
	active     *Reaction
}

func NewBoard(rows, cols int, players []*Player) (*Board, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, rows, cols)
	}
	if err := checkPlayers(players); err != nil {
		return nil, err
	}
	b := &Board{
		rows:    rows,
		cols:    cols,
		players: append([]*Player(nil), players...),
	}

	matrix := make([][]*Cell, 0, rows)
	// create
	for r := 0; r < rows; r++ {
		line := make([]*Cell, 0, cols)
		for c := 0; c < cols; c++ {
			line = append(line, &Cell{pos: Position{Row: r, Col: c}, seq: &b.atomSeq})
		}
		matrix = append(matrix, line)
	}
	// connect
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := matrix[r][c]
			if c > 0 {
				prevCell := matrix[r][c-1]
				prevCell.neighbours[RIGHT] = cell
				cell.neighbours[LEFT] = prevCell
			}
			if r > 0 {
				prevCell := matrix[r-1][c]
				prevCell.neighbours[DOWN] = cell
				cell.neighbours[UP] = prevCell
			}
		}
	}
	for _, line := range matrix {
		for _, cell := range line {
			cell.capacity = cell.degree() - 1
		}
	}

	b.Matrix = matrix
	return b, nil
}

func checkPlayers(players []*Player) error {
	if len(players) == 0 {
		return ErrNoPlayers
	}
	seen := mapset.New[*Player]()
	for i, p := range players {
		if p == nil {
			return fmt.Errorf("%w at %d", ErrNilPlayer, i)
		}
		if seen.Has(p) {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p)
		}
		seen.Put(p)
	}
	return nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

// Cell panics on coordinates outside the board; input layers are expected
// to hand over valid indices only.
func (b *Board) Cell(row, col int) *Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d board", row, col, b.rows, b.cols))
	}
	return b.Matrix[row][col]
}

func (b *Board) each(f func(cell *Cell)) {
	for _, line := range b.Matrix {
		for _, cell := range line {
			f(cell)
		}
	}
}

func (b *Board) CurrentPlayer() *Player {
	return b.players[b.current]
}

func (b *Board) Players() []*Player {
	return append([]*Player(nil), b.players...)
}

// SetPlayers replaces the rotation. Players still owning cells may not be
// dropped. The current player stays selected when it is kept; otherwise the
// closest kept player before it is selected, so AdvanceTurn moves on to
// whoever would have played next.
func (b *Board) SetPlayers(players []*Player) error {
	if err := checkPlayers(players); err != nil {
		return err
	}
	keep := mapset.New[*Player]()
	for _, p := range players {
		keep.Put(p)
	}
	var dropped *Player
	b.AliveOwners().Each(func(p *Player) {
		if !keep.Has(p) {
			dropped = p
		}
	})
	if dropped != nil {
		return fmt.Errorf("%w: %s", ErrOwnerDropped, dropped)
	}

	old, oldCurrent := b.players, b.current
	b.players = append([]*Player(nil), players...)
	index := make(map[*Player]int, len(b.players))
	for i, p := range b.players {
		index[p] = i
	}
	for k := 0; k < len(old); k++ {
		p := old[(oldCurrent-k+len(old))%len(old)]
		if i, ok := index[p]; ok {
			b.current = i
			return nil
		}
	}
	b.current = len(b.players) - 1
	return nil
}

// ValidateMove reports whether the current player may place at (row, col).
func (b *Board) ValidateMove(row, col int) bool {
	owner := b.Cell(row, col).Owner()
	return owner == nil || owner == b.CurrentPlayer()
}

// PlaceAtom adds an atom for the current player without validating the
// move, and reports whether the cell now overflows.
func (b *Board) PlaceAtom(row, col int) bool {
	if b.active != nil {
		panic("placement while a reaction is in progress")
	}
	cell := b.Cell(row, col)
	cell.AddAtom(b.CurrentPlayer())
	return cell.IsOverflowing()
}

func (b *Board) AdvanceTurn() {
	b.current = (b.current + 1) % len(b.players)
}

// AliveOwners collects every player owning at least one cell.
func (b *Board) AliveOwners() mapset.Set[*Player] {
	owners := mapset.New[*Player]()
	b.each(func(cell *Cell) {
		if cell.owner != nil {
			owners.Put(cell.owner)
		}
	})
	return owners
}

func (b *Board) TotalAtoms() int {
	total := 0
	b.each(func(cell *Cell) {
		total += len(cell.atoms)
	})
	return total
}

// Standings lists cell and atom counts per player in rotation order.
func (b *Board) Standings() []Standing {
	standings := make([]Standing, len(b.players))
	index := make(map[*Player]int, len(b.players))
	for i, p := range b.players {
		standings[i].Player = p
		index[p] = i
	}
	b.each(func(cell *Cell) {
		if i, ok := index[cell.owner]; ok {
			standings[i].Cells++
			standings[i].Atoms += len(cell.atoms)
		}
	})
	return standings
}

// Stable reports that no cell overflows.
func (b *Board) Stable() bool {
	stable := true
	b.each(func(cell *Cell) {
		if cell.IsOverflowing() {
			stable = false
		}
	})
	return stable
}
