package grid

// Position is a cell coordinate on the grid (row-major).
type Position struct {
	Row, Col int
}

// Manhattan returns the Manhattan distance between two positions.
func Manhattan(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
