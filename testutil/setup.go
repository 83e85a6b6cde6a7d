package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
)

// MustGrid builds a grid from text rows in the map file format
// ("1 0 2 1" per row). Fails the test on malformed input.
func MustGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader(strings.Join(rows, "\n")))
	require.NoError(t, err, "MustGrid: Parse")
	return g
}

// OpenGrid builds a rows x cols grid that is entirely empty (no walls, no
// rewards).
func OpenGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	cells := make([][]grid.Cell, rows)
	for r := range cells {
		cells[r] = make([]grid.Cell, cols)
	}
	g, err := grid.New(cells)
	require.NoError(t, err, "OpenGrid: New")
	return g
}

// Logger returns a development logger for test output.
func Logger(t *testing.T) *zap.Logger {
	t.Helper()
	l, err := zap.NewDevelopment()
	require.NoError(t, err, "Logger")
	return l
}
