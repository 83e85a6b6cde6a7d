package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BonheurByiringiro/PACMAN-Game/game/agent"
	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
	"github.com/BonheurByiringiro/PACMAN-Game/game/search"
	"github.com/BonheurByiringiro/PACMAN-Game/testutil"
)

func TestNewPursuer_RejectsBadStart(t *testing.T) {
	g := testutil.MustGrid(t,
		"0 1",
		"0 0",
	)
	_, err := agent.NewPursuer(g, grid.Position{Row: 0, Col: 1}, 1, nil, nil)
	assert.Error(t, err, "wall start")

	_, err = agent.NewPursuer(g, grid.Position{Row: 9, Col: 9}, 1, nil, nil)
	assert.Error(t, err, "out-of-bounds start")

	_, err = agent.NewPursuer(nil, grid.Position{}, 1, nil, nil)
	assert.Error(t, err, "nil grid")
}

func TestPursuer_ReachesTargetOnOpenGrid(t *testing.T) {
	g := testutil.OpenGrid(t, 5, 5)
	p, err := agent.NewPursuer(g, grid.Position{Row: 0, Col: 0}, 1, nil, testutil.Logger(t))
	require.NoError(t, err)

	p.SetTarget(grid.Position{Row: 4, Col: 4})
	for i := 0; i < 8; i++ {
		p.Step()
	}
	// Manhattan distance 8, cadence 1: exactly 8 steps to arrive.
	assert.Equal(t, grid.Position{Row: 4, Col: 4}, p.Position())
	assert.True(t, p.AtTarget())
	d, ok := p.DistanceToTarget()
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestPursuer_CadenceGatesMovement(t *testing.T) {
	g := testutil.OpenGrid(t, 5, 5)
	p, err := agent.NewPursuer(g, grid.Position{Row: 0, Col: 0}, 2, nil, nil)
	require.NoError(t, err)

	p.SetTarget(grid.Position{Row: 4, Col: 4})
	for i := 0; i < 8; i++ {
		p.Step()
	}
	// Only every second tick moves: 4 cells covered.
	d, ok := p.DistanceToTarget()
	require.True(t, ok)
	assert.Equal(t, 4, d)
}

func TestPursuer_NoTargetIsNoop(t *testing.T) {
	g := testutil.OpenGrid(t, 3, 3)
	p, err := agent.NewPursuer(g, grid.Position{Row: 1, Col: 1}, 1, nil, nil)
	require.NoError(t, err)

	_, ok := p.DistanceToTarget()
	assert.False(t, ok, "distance undefined before a target is set")

	p.Step()
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, p.Position())
}

func TestPursuer_UnreachableTargetFailsSilently(t *testing.T) {
	g := testutil.MustGrid(t,
		"0 0 1 0",
		"0 0 1 0",
	)
	p, err := agent.NewPursuer(g, grid.Position{Row: 0, Col: 0}, 1, nil, testutil.Logger(t))
	require.NoError(t, err)

	p.SetTarget(grid.Position{Row: 0, Col: 3})
	for i := 0; i < 5; i++ {
		p.Step()
	}
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, p.Position(), "stuck but alive")
	assert.False(t, p.AtTarget())
}

func TestPursuer_SetTargetUnchangedIsNoop(t *testing.T) {
	g := testutil.OpenGrid(t, 5, 5)
	p, err := agent.NewPursuer(g, grid.Position{Row: 0, Col: 0}, 1, nil, nil)
	require.NoError(t, err)

	target := grid.Position{Row: 0, Col: 3}
	p.SetTarget(target)
	p.Step()
	p.SetTarget(target) // must not reset progress
	p.Step()
	p.Step()
	assert.True(t, p.AtTarget())
}

func TestPursuer_RetargetsMidChase(t *testing.T) {
	g := testutil.OpenGrid(t, 5, 5)
	p, err := agent.NewPursuer(g, grid.Position{Row: 0, Col: 0}, 1, nil, nil)
	require.NoError(t, err)

	p.SetTarget(grid.Position{Row: 0, Col: 4})
	p.Step()
	p.Step()
	p.SetTarget(grid.Position{Row: 4, Col: 2}) // target moved
	for i := 0; i < 6; i++ {
		p.Step()
	}
	assert.Equal(t, grid.Position{Row: 4, Col: 2}, p.Position())
}

func TestPursuer_AlgorithmSwapInvalidatesPath(t *testing.T) {
	g := testutil.OpenGrid(t, 5, 5)
	p, err := agent.NewPursuer(g, grid.Position{Row: 0, Col: 0}, 1, search.NewSearcher(search.AlgorithmBFS), nil)
	require.NoError(t, err)

	p.SetTarget(grid.Position{Row: 4, Col: 4})
	p.Step()
	p.SetAlgorithm(search.AlgorithmAStar)
	for i := 0; i < 7; i++ {
		p.Step()
	}
	assert.True(t, p.AtTarget(), "swap replans but does not lose the chase")
}

func TestNewPursuerWithDifficulty(t *testing.T) {
	g := testutil.OpenGrid(t, 5, 5)
	p, err := agent.NewPursuerWithDifficulty(g, grid.Position{Row: 0, Col: 0}, 1, "extreme", nil)
	require.NoError(t, err)

	p.SetTarget(grid.Position{Row: 2, Col: 2})
	for i := 0; i < 4; i++ {
		p.Step()
	}
	assert.True(t, p.AtTarget())
}
