package model

import (
	"strconv"

	"github.com/zyedidia/generic/mapset"
)

// Hooks are fired at the wave boundaries of a reaction. Nil hooks are skipped.
type Hooks struct {
	OnStart        func()
	OnStepStart    func()
	OnStepComplete func()
	OnComplete     func()
}

func call(f func()) {
	if f != nil {
		f()
	}
}

// Reaction resolves one chain of explosions wave by wave. Every wave pops
// atoms from all cells of the frontier against the pre-wave state, then
// delivers them, so explosions of the same wave never see each other.
//
//	r := board.BeginReaction(row, col)
//	for r.Next() {
//		r.Step()
//	}
type Reaction struct {
	board    *Board
	actor    *Player
	frontier []*Cell
	touched  []*Cell
	moves    []Movement
	steps    int
	cycle    map[string]struct{}
	pending  bool
	ready    bool
	halted   bool
	done     bool
}

type delivery struct {
	to   *Cell
	atom AtomID
}

// BeginReaction starts a reaction at (row, col) for the current player.
// Only one reaction may be in progress on a board.
func (b *Board) BeginReaction(row, col int) *Reaction {
	if b.active != nil {
		panic("reaction already in progress")
	}
	cell := b.Cell(row, col)
	r := &Reaction{
		board: b,
		actor: b.CurrentPlayer(),
	}
	if cell.IsOverflowing() {
		r.frontier = []*Cell{cell}
	}
	b.active = r
	return r
}

// StartReaction runs a reaction to the end and returns the number of waves.
func (b *Board) StartReaction(row, col int, hooks Hooks) int {
	r := b.BeginReaction(row, col)
	call(hooks.OnStart)
	for r.Next() {
		call(hooks.OnStepStart)
		r.Step()
		call(hooks.OnStepComplete)
	}
	call(hooks.OnComplete)
	return r.Steps()
}

// Reacting reports whether a reaction is still unresolved.
func (b *Board) Reacting() bool {
	return b.active != nil
}

// Next computes the frontier of the coming wave and reports whether there is
// one. Once it returns false the reaction is over and the board accepts
// placements again.
func (r *Reaction) Next() bool {
	if r.done {
		return false
	}
	if r.pending {
		r.pending = false
		r.frontier = nil
		for _, cell := range r.touched {
			if cell.IsOverflowing() {
				r.frontier = append(r.frontier, cell)
			}
		}
		if len(r.frontier) > 0 && r.conquered() {
			r.halted = r.repeated()
		}
	}
	if len(r.frontier) == 0 || r.halted {
		r.done = true
		r.ready = false
		r.board.active = nil
		return false
	}
	r.ready = true
	return true
}

// Step explodes every cell of the current frontier. Each source pops one atom
// per in-bounds direction, capacity+1 atoms in total; anything above that
// stays behind and explodes again in a later wave if it still overflows.
func (r *Reaction) Step() {
	if !r.ready {
		panic("Step called without a pending wave")
	}
	r.ready = false

	seen := mapset.New[*Cell]()
	touched := make([]*Cell, 0, 5*len(r.frontier))
	touch := func(cell *Cell) {
		if !seen.Has(cell) {
			seen.Put(cell)
			touched = append(touched, cell)
		}
	}

	deliveries := make([]delivery, 0, 4*len(r.frontier))
	moves := make([]Movement, 0, 4*len(r.frontier))
	// snapshot
	for _, source := range r.frontier {
		touch(source)
		for _, d := range DIRECTIONS {
			target := source.neighbours[d]
			if target == nil {
				continue
			}
			atom := source.RemoveOneAtom()
			deliveries = append(deliveries, delivery{to: target, atom: atom})
			moves = append(moves, Movement{
				Atom:   atom,
				From:   source.pos,
				To:     target.pos,
				Player: r.actor,
			})
		}
	}
	// apply
	for _, dv := range deliveries {
		dv.to.receive(r.actor, dv.atom)
		touch(dv.to)
	}

	r.touched = touched
	r.moves = moves
	r.steps++
	r.pending = true
}

// conquered reports that the acting player owns every occupied cell.
func (r *Reaction) conquered() bool {
	conquered := true
	r.board.each(func(cell *Cell) {
		if cell.owner != nil && cell.owner != r.actor {
			conquered = false
		}
	})
	return conquered
}

// repeated remembers the atom counts and the frontier and reports whether
// the same pair was seen after an earlier wave. With a single owner left that
// pair is the whole state, so a repeat means the waves would cycle forever.
func (r *Reaction) repeated() bool {
	frontier := mapset.New[*Cell]()
	for _, cell := range r.frontier {
		frontier.Put(cell)
	}
	key := make([]byte, 0, 4*r.board.rows*r.board.cols)
	r.board.each(func(cell *Cell) {
		key = strconv.AppendInt(key, int64(len(cell.atoms)), 10)
		if frontier.Has(cell) {
			key = append(key, '*')
		}
		key = append(key, ',')
	})
	if r.cycle == nil {
		r.cycle = make(map[string]struct{})
	}
	if _, ok := r.cycle[string(key)]; ok {
		return true
	}
	r.cycle[string(key)] = struct{}{}
	return false
}

func (r *Reaction) Actor() *Player {
	return r.actor
}

// Moves returns the deliveries of the last wave.
func (r *Reaction) Moves() []Movement {
	return r.moves
}

// Touched returns the sources and targets of the last wave, without repeats.
func (r *Reaction) Touched() []Position {
	positions := make([]Position, 0, len(r.touched))
	for _, cell := range r.touched {
		positions = append(positions, cell.pos)
	}
	return positions
}

func (r *Reaction) Steps() int {
	return r.steps
}

// Halted reports that the reaction stopped with cells still overflowing:
// the acting player held every occupied cell and the waves started to repeat.
// Only a board holding more atoms than it can settle gets there.
func (r *Reaction) Halted() bool {
	return r.halted
}

func (r *Reaction) Done() bool {
	return r.done
}
