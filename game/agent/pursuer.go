// Package agent implements the two decision loops that run on top of the
// search library: the Pursuer, which chases a moving target, and the
// Collector, which plans reward-collection routes while avoiding pursuers.
// Both are tick-driven and single-threaded; the host steps them once per
// simulated tick.
package agent

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
	"github.com/BonheurByiringiro/PACMAN-Game/game/search"
)

// Pursuer chases a moving target position across the grid. It re-paths
// whenever the target changes, its cached path goes stale, or it arrives;
// movement is rate-limited by a tick cadence.
type Pursuer struct {
	grid      *grid.Grid
	pos       grid.Position
	target    grid.Position
	hasTarget bool
	path      search.Path
	cadence   int
	frame     int
	searcher  *search.Searcher
	logger    *zap.Logger
}

// NewPursuer creates a Pursuer at start. The start cell must be passable
// and the grid non-nil; violating either is a construction error, not a
// recoverable runtime condition. cadence is the number of ticks between
// moves (values below 1 mean every tick). A nil searcher defaults to BFS.
func NewPursuer(g *grid.Grid, start grid.Position, cadence int, searcher *search.Searcher, logger *zap.Logger) (*Pursuer, error) {
	if g == nil {
		return nil, fmt.Errorf("pursuer: nil grid")
	}
	if !g.PassablePos(start) {
		return nil, fmt.Errorf("pursuer: start %v is not passable", start)
	}
	if cadence < 1 {
		cadence = 1
	}
	if searcher == nil {
		searcher = search.NewSearcher(search.AlgorithmBFS)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pursuer{
		grid:     g,
		pos:      start,
		cadence:  cadence,
		searcher: searcher,
		logger:   logger,
	}, nil
}

// NewPursuerWithDifficulty creates a Pursuer whose algorithm is picked by
// the difficulty resolver (easy=lazy_greedy ... extreme=optimized_bfs).
func NewPursuerWithDifficulty(g *grid.Grid, start grid.Position, cadence int, difficulty string, logger *zap.Logger) (*Pursuer, error) {
	return NewPursuer(g, start, cadence, search.NewSearcher(search.Resolve(difficulty)), logger)
}

// Position returns the pursuer's current cell.
func (p *Pursuer) Position() grid.Position { return p.pos }

// SetTarget points the pursuer at a new target cell. A no-op when the
// target is unchanged; otherwise the cached path is recomputed immediately.
func (p *Pursuer) SetTarget(target grid.Position) {
	if p.hasTarget && target == p.target {
		return
	}
	p.target = target
	p.hasTarget = true
	p.recompute()
}

// SetAlgorithm swaps the search variant at runtime and invalidates any
// in-progress path.
func (p *Pursuer) SetAlgorithm(algo search.Algorithm) {
	p.searcher.Algorithm = algo
	p.path = nil
}

// SetDifficulty swaps the algorithm via the difficulty resolver.
func (p *Pursuer) SetDifficulty(difficulty string) {
	p.SetAlgorithm(search.Resolve(difficulty))
}

// AtTarget reports whether the pursuer occupies its target cell.
func (p *Pursuer) AtTarget() bool {
	return p.hasTarget && p.pos == p.target
}

// DistanceToTarget returns the Manhattan distance to the current target.
// The second return is false when no target has been set.
func (p *Pursuer) DistanceToTarget() (int, bool) {
	if !p.hasTarget {
		return 0, false
	}
	return grid.Manhattan(p.pos, p.target), true
}

// Step advances the pursuer by at most one cell. Called once per tick; the
// cadence decides whether this tick moves. A missing path triggers a
// recompute; an unreachable target is logged and skipped (never fatal); a
// stale next step discards the path so the next eligible tick replans.
func (p *Pursuer) Step() {
	p.frame++
	if p.frame%p.cadence != 0 {
		return
	}
	if !p.hasTarget {
		return
	}
	if len(p.path) == 0 {
		p.recompute()
		if len(p.path) == 0 {
			p.logger.Debug("pursuer stuck, no path to target",
				zap.Int("row", p.pos.Row), zap.Int("col", p.pos.Col),
				zap.Int("target_row", p.target.Row), zap.Int("target_col", p.target.Col))
			return
		}
	}
	next := p.path[0]
	if !p.grid.PassablePos(next) {
		p.path = nil
		return
	}
	p.pos = next
	p.path = p.path[1:]
	if p.pos == p.target {
		// Target may have moved by the next cycle; force a fresh plan.
		p.path = nil
	}
}

// recompute rebuilds the cached path and strips the leading element (the
// currently occupied cell).
func (p *Pursuer) recompute() {
	if !p.hasTarget {
		p.path = nil
		return
	}
	path := p.searcher.Find(p.grid, p.pos, p.target, nil)
	if len(path) > 0 && path[0] == p.pos {
		path = path[1:]
	}
	p.path = path
}
