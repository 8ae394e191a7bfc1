package model

// CellView is a read-only copy of a cell for presentation layers.
type CellView struct {
	Position
	Capacity int
	Atoms    int
	Owner    *Player
}

type Snapshot struct {
	Rows, Cols int
	Current    *Player
	Players    []*Player
	Cells      [][]CellView
}

func (b *Board) Snapshot() Snapshot {
	cells := make([][]CellView, 0, b.rows)
	for _, line := range b.Matrix {
		views := make([]CellView, 0, b.cols)
		for _, cell := range line {
			views = append(views, CellView{
				Position: cell.pos,
				Capacity: cell.capacity,
				Atoms:    len(cell.atoms),
				Owner:    cell.owner,
			})
		}
		cells = append(cells, views)
	}
	return Snapshot{
		Rows:    b.rows,
		Cols:    b.cols,
		Current: b.CurrentPlayer(),
		Players: b.Players(),
		Cells:   cells,
	}
}
