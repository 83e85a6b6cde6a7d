package grid

import "fmt"

// Cell is a single grid cell code. The numeric values match the on-disk
// map format.
type Cell int

const (
	CellEmpty  Cell = 0
	CellWall   Cell = 1
	CellReward Cell = 2
)

// Grid is a rectangular passability map. All searches and agents read it;
// the only mutation is reward consumption via ConsumeReward.
type Grid struct {
	cells [][]Cell
	rows  int
	cols  int
}

// neighborOffsets is the fixed neighbor enumeration order: up, down, left,
// right. Every search algorithm depends on this order as its tie-break, so
// it must not change.
var neighborOffsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// New builds a Grid from a cell matrix. The matrix must have at least one
// row and every row must have the same length.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("grid: no rows")
	}
	cols := len(cells[0])
	if cols == 0 {
		return nil, fmt.Errorf("grid: empty first row")
	}
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", i, len(row), cols)
		}
	}
	return &Grid{cells: cells, rows: len(cells), cols: cols}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) lies on the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.rows && c < g.cols
}

// At returns the cell code at (r, c). Out-of-bounds reads return CellWall
// so callers can treat the border as solid.
func (g *Grid) At(r, c int) Cell {
	if !g.InBounds(r, c) {
		return CellWall
	}
	return g.cells[r][c]
}

// Passable reports whether an agent may occupy (r, c). Walls and
// out-of-bounds cells are impassable; reward cells are passable.
func (g *Grid) Passable(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c] != CellWall
}

// PassablePos is Passable for a Position value.
func (g *Grid) PassablePos(p Position) bool {
	return g.Passable(p.Row, p.Col)
}

// Neighbors4 returns the passable 4-connected neighbors of p in the fixed
// order up, down, left, right.
func (g *Grid) Neighbors4(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.PassablePos(n) {
			out = append(out, n)
		}
	}
	return out
}

// ConsumeReward converts the reward at p to an empty cell. Returns true if
// a reward was actually consumed. This is the only mutation the grid
// supports; walls never change.
func (g *Grid) ConsumeReward(p Position) bool {
	if !g.InBounds(p.Row, p.Col) || g.cells[p.Row][p.Col] != CellReward {
		return false
	}
	g.cells[p.Row][p.Col] = CellEmpty
	return true
}

// RewardCells returns the positions of all remaining reward cells in
// row-major order.
func (g *Grid) RewardCells() []Position {
	var out []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == CellReward {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// CountRewards returns the number of reward cells currently on the grid.
func (g *Grid) CountRewards() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == CellReward {
				n++
			}
		}
	}
	return n
}
