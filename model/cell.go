package model

import "fmt"

// Cell holds a stack of atoms that all belong to the same owner.
// A cell never outlives nor changes the shape of its board.
type Cell struct {
	pos        Position
	capacity   int
	atoms      []AtomID
	owner      *Player
	neighbours [4]*Cell
	seq        *AtomID
}

// Capacity is the number of in-bounds neighbours minus one.
func (c *Cell) Capacity() int {
	return c.capacity
}

// AddAtom puts a fresh atom into the cell and hands the cell to p, whoever
// owned it before.
func (c *Cell) AddAtom(p *Player) {
	*c.seq++
	c.receive(p, *c.seq)
}

func (c *Cell) receive(p *Player, atom AtomID) {
	if p == nil {
		panic(fmt.Sprintf("cell %v: atom without player", c.pos))
	}
	c.atoms = append(c.atoms, atom)
	c.owner = p
}

// RemoveOneAtom pops the most recently added atom. The cell becomes
// unowned once it is empty. Calling it on an empty cell is a bug.
func (c *Cell) RemoveOneAtom() AtomID {
	if len(c.atoms) == 0 {
		panic(fmt.Sprintf("cell %v: no atom to remove", c.pos))
	}
	atom := c.atoms[len(c.atoms)-1]
	c.atoms = c.atoms[:len(c.atoms)-1]
	if len(c.atoms) == 0 {
		c.owner = nil
	}
	return atom
}

func (c *Cell) IsOverflowing() bool {
	return len(c.atoms) > c.capacity
}

func (c *Cell) Owner() *Player {
	return c.owner
}

func (c *Cell) AtomCount() int {
	return len(c.atoms)
}

func (c *Cell) Position() Position {
	return c.pos
}

// Atoms returns the atom ids bottom to top.
func (c *Cell) Atoms() []AtomID {
	return append([]AtomID(nil), c.atoms...)
}

// Neighbour returns nil past the board edge.
func (c *Cell) Neighbour(d Direction) *Cell {
	return c.neighbours[d]
}

func (c *Cell) degree() int {
	n := 0
	for _, nb := range c.neighbours {
		if nb != nil {
			n++
		}
	}
	return n
}
