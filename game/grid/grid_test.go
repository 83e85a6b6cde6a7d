package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
	"github.com/BonheurByiringiro/PACMAN-Game/testutil"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := grid.New(nil)
	assert.Error(t, err)

	_, err = grid.New([][]grid.Cell{{}})
	assert.Error(t, err)
}

func TestNew_RejectsRaggedRows(t *testing.T) {
	_, err := grid.New([][]grid.Cell{
		{grid.CellEmpty, grid.CellEmpty},
		{grid.CellEmpty},
	})
	assert.Error(t, err)
}

func TestPassable(t *testing.T) {
	g := testutil.MustGrid(t,
		"0 1 2",
		"0 0 0",
	)
	assert.True(t, g.Passable(0, 0), "empty cell")
	assert.False(t, g.Passable(0, 1), "wall")
	assert.True(t, g.Passable(0, 2), "reward cells are traversable")
	assert.False(t, g.Passable(-1, 0), "out of bounds")
	assert.False(t, g.Passable(0, 3), "out of bounds")
	assert.False(t, g.Passable(2, 0), "out of bounds")
}

func TestAt_OutOfBoundsReadsAsWall(t *testing.T) {
	g := testutil.OpenGrid(t, 2, 2)
	assert.Equal(t, grid.CellWall, g.At(-1, 0))
	assert.Equal(t, grid.CellWall, g.At(0, 5))
}

func TestNeighbors4_FixedOrder(t *testing.T) {
	g := testutil.OpenGrid(t, 3, 3)
	got := g.Neighbors4(grid.Position{Row: 1, Col: 1})
	want := []grid.Position{
		{Row: 0, Col: 1}, // up
		{Row: 2, Col: 1}, // down
		{Row: 1, Col: 0}, // left
		{Row: 1, Col: 2}, // right
	}
	assert.Equal(t, want, got, "order is load-bearing: up, down, left, right")
}

func TestNeighbors4_FiltersWallsAndBounds(t *testing.T) {
	g := testutil.MustGrid(t,
		"0 1",
		"0 0",
	)
	got := g.Neighbors4(grid.Position{Row: 0, Col: 0})
	assert.Equal(t, []grid.Position{{Row: 1, Col: 0}}, got)
}

func TestConsumeReward_ExactlyOnce(t *testing.T) {
	g := testutil.MustGrid(t, "0 2")
	p := grid.Position{Row: 0, Col: 1}

	require.True(t, g.ConsumeReward(p))
	assert.Equal(t, grid.CellEmpty, g.At(0, 1))
	assert.False(t, g.ConsumeReward(p), "second consume must be a no-op")
}

func TestConsumeReward_IgnoresNonRewards(t *testing.T) {
	g := testutil.MustGrid(t, "0 1")
	assert.False(t, g.ConsumeReward(grid.Position{Row: 0, Col: 0}))
	assert.False(t, g.ConsumeReward(grid.Position{Row: 0, Col: 1}))
	assert.False(t, g.ConsumeReward(grid.Position{Row: 5, Col: 5}))
}

func TestRewardCells_RowMajorOrder(t *testing.T) {
	g := testutil.MustGrid(t,
		"0 2 0",
		"2 0 2",
	)
	want := []grid.Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 1, Col: 2},
	}
	assert.Equal(t, want, g.RewardCells())
	assert.Equal(t, 3, g.CountRewards())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, grid.Manhattan(grid.Position{Row: 2, Col: 3}, grid.Position{Row: 2, Col: 3}))
	assert.Equal(t, 8, grid.Manhattan(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 4, Col: 4}))
	assert.Equal(t, 5, grid.Manhattan(grid.Position{Row: 3, Col: 1}, grid.Position{Row: 0, Col: 3}))
}

func TestParse_MapFormat(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("1 1 1\n1 2 1\n\n1 1 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, grid.CellReward, g.At(1, 1))
}

func TestParse_RejectsBadInput(t *testing.T) {
	_, err := grid.Parse(strings.NewReader("1 x 1"))
	assert.Error(t, err, "non-numeric cell")

	_, err = grid.Parse(strings.NewReader("1 7 1"))
	assert.Error(t, err, "unknown cell code")

	_, err = grid.Parse(strings.NewReader(""))
	assert.Error(t, err, "no rows")

	_, err = grid.Parse(strings.NewReader("1 1\n1 1 1"))
	assert.Error(t, err, "ragged rows")
}
