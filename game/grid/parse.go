package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads the text map format: one row per line, whitespace-separated
// integer cell codes (0=empty, 1=wall, 2=reward). Blank lines are skipped.
func Parse(r io.Reader) (*Grid, error) {
	var cells [][]Cell
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]Cell, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("grid: line %d: bad cell %q: %w", line, f, err)
			}
			switch Cell(v) {
			case CellEmpty, CellWall, CellReward:
			default:
				return nil, fmt.Errorf("grid: line %d: unknown cell code %d", line, v)
			}
			row = append(row, Cell(v))
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return New(cells)
}

// Load parses a map file from disk.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
