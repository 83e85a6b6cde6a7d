package agent

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
	"github.com/BonheurByiringiro/PACMAN-Game/game/search"
)

const (
	// DefaultDangerRadius is the Manhattan radius around a threat that the
	// collector treats as unsafe.
	DefaultDangerRadius = 3
	// DefaultRecalcEvery is how many ticks may pass before a full path
	// recompute is forced even when a path exists (threats move).
	DefaultRecalcEvery = 30
)

// Collector plans collection routes over the remaining reward cells while
// steering around known threat positions. It is the only component that
// mutates the grid, and only by consuming rewards.
type Collector struct {
	grid      *grid.Grid
	pos       grid.Position
	start     grid.Position
	target    grid.Position
	hasTarget bool
	path      search.Path

	cadence int
	frame   int

	searcher *search.Searcher
	strategy Strategy

	threats      map[grid.Position]bool
	dangerRadius int
	recalcEvery  int

	collected int
	total     int

	logger *zap.Logger
}

// NewCollector creates a Collector at start. The start cell must be
// passable and the grid non-nil; either violation is a construction error.
// The total reward count is captured here, once: rewards added to the grid
// after construction are not tracked. A nil searcher defaults to A*.
func NewCollector(g *grid.Grid, start grid.Position, searcher *search.Searcher, cadence int, logger *zap.Logger) (*Collector, error) {
	if g == nil {
		return nil, fmt.Errorf("collector: nil grid")
	}
	if !g.PassablePos(start) {
		return nil, fmt.Errorf("collector: start %v is not passable", start)
	}
	if cadence < 1 {
		cadence = 1
	}
	if searcher == nil {
		searcher = search.NewSearcher(search.AlgorithmAStar)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		grid:         g,
		pos:          start,
		start:        start,
		cadence:      cadence,
		searcher:     searcher,
		strategy:     StrategyNearestSafe,
		threats:      make(map[grid.Position]bool),
		dangerRadius: DefaultDangerRadius,
		recalcEvery:  DefaultRecalcEvery,
		total:        g.CountRewards(),
		logger:       logger,
	}, nil
}

// Position returns the collector's current cell.
func (c *Collector) Position() grid.Position { return c.pos }

// Collected returns how many rewards have been consumed so far.
func (c *Collector) Collected() int { return c.collected }

// TotalRewards returns the reward count captured at construction.
func (c *Collector) TotalRewards() int { return c.total }

// Strategy returns the active target-selection strategy.
func (c *Collector) Strategy() Strategy { return c.strategy }

// SetStrategy switches the target-selection strategy and clears the
// current target so the next plan reselects under the new rule.
func (c *Collector) SetStrategy(s Strategy) {
	c.strategy = s
	c.hasTarget = false
	c.path = nil
}

// SetAlgorithm swaps the search variant and discards the cached path.
func (c *Collector) SetAlgorithm(algo search.Algorithm) {
	c.searcher.Algorithm = algo
	c.path = nil
}

// SetDangerRadius overrides the threat radius used by safety checks and
// the avoidance set.
func (c *Collector) SetDangerRadius(radius int) {
	if radius >= 0 {
		c.dangerRadius = radius
	}
}

// SetRecalcEvery overrides the forced-recompute period in ticks.
func (c *Collector) SetRecalcEvery(ticks int) {
	if ticks > 0 {
		c.recalcEvery = ticks
	}
}

// UpdateThreats replaces the tracked threat set wholesale; it never merges
// with prior state.
func (c *Collector) UpdateThreats(positions []grid.Position) {
	c.threats = make(map[grid.Position]bool, len(positions))
	for _, p := range positions {
		c.threats[p] = true
	}
}

// AllRewardsCollected reports whether the collected counter has reached
// the total captured at construction. It deliberately does not recount
// live cells.
func (c *Collector) AllRewardsCollected() bool {
	return c.collected >= c.total
}

// Reset returns the collector to its starting position and clears the
// counter, target, path and threat set.
func (c *Collector) Reset() {
	c.pos = c.start
	c.path = nil
	c.hasTarget = false
	c.collected = 0
	c.frame = 0
	c.threats = make(map[grid.Position]bool)
	c.logger.Info("collector reset",
		zap.Int("row", c.start.Row), zap.Int("col", c.start.Col))
}

// SelectTarget picks the reward cell to pursue under the active strategy.
// Rewards are enumerated row-major and ties keep the first candidate. The
// second return is false when no rewards remain.
func (c *Collector) SelectTarget() (grid.Position, bool) {
	rewards := c.grid.RewardCells()
	if len(rewards) == 0 {
		return grid.Position{}, false
	}
	switch c.strategy {
	case StrategyNearestSafe:
		best, ok := c.nearestOf(rewards, true)
		if ok {
			return best, true
		}
		c.logger.Warn("no reward outside danger radius, falling back to nearest",
			zap.Int("threats", len(c.threats)))
		best, _ = c.nearestOf(rewards, false)
		return best, true
	case StrategyFurthestFromThreats:
		if len(c.threats) == 0 {
			// Every reward is infinitely far from nothing; take the first.
			return rewards[0], true
		}
		best := rewards[0]
		bestDist := c.minThreatDistance(rewards[0])
		for _, p := range rewards[1:] {
			if d := c.minThreatDistance(p); d > bestDist {
				best, bestDist = p, d
			}
		}
		return best, true
	default:
		best, _ := c.nearestOf(rewards, false)
		return best, true
	}
}

// Plan refreshes the target and path: reselect when the target is gone or
// already collected, recompute when the path is empty or the periodic
// recompute is due. An unreachable target is discarded so the next cycle
// reselects.
func (c *Collector) Plan() {
	if !c.hasTarget || c.grid.At(c.target.Row, c.target.Col) != grid.CellReward {
		target, ok := c.SelectTarget()
		if !ok {
			c.hasTarget = false
			c.path = nil
			return
		}
		c.target = target
		c.hasTarget = true
		c.path = nil
	}
	if len(c.path) == 0 || c.frame%c.recalcEvery == 0 {
		c.path = c.computePath()
		if len(c.path) == 0 {
			c.logger.Info("target unreachable, discarding",
				zap.Int("target_row", c.target.Row), zap.Int("target_col", c.target.Col),
				zap.String("algorithm", c.searcher.Algorithm.String()))
			c.hasTarget = false
		}
	}
}

// Step advances the collector by at most one cell, consuming a reward when
// it lands on one. Called once per tick; gated by the cadence.
func (c *Collector) Step() {
	c.frame++
	if c.frame%c.cadence != 0 {
		return
	}
	c.Plan()
	if len(c.path) == 0 {
		return
	}
	next := c.path[0]
	if !c.grid.PassablePos(next) {
		// Stale step; replan on the next eligible tick.
		c.path = nil
		return
	}
	c.pos = next
	c.path = c.path[1:]
	if c.grid.ConsumeReward(c.pos) {
		c.collected++
		c.logger.Info("reward collected",
			zap.Int("row", c.pos.Row), zap.Int("col", c.pos.Col),
			zap.Int("collected", c.collected), zap.Int("total", c.total))
		c.hasTarget = false
		c.path = nil
	}
}

// IsSafe reports whether p lies outside every known threat's danger
// radius.
func (c *Collector) IsSafe(p grid.Position) bool {
	for t := range c.threats {
		if grid.Manhattan(p, t) <= c.dangerRadius {
			return false
		}
	}
	return true
}

// AvoidanceSet returns the cells within the danger radius of any known
// threat, recomputed from scratch each call. Nil when no threats are
// tracked.
func (c *Collector) AvoidanceSet() search.Avoid {
	if len(c.threats) == 0 {
		return nil
	}
	avoid := make(search.Avoid)
	for t := range c.threats {
		for dr := -c.dangerRadius; dr <= c.dangerRadius; dr++ {
			rem := c.dangerRadius - abs(dr)
			for dc := -rem; dc <= rem; dc++ {
				p := grid.Position{Row: t.Row + dr, Col: t.Col + dc}
				if c.grid.InBounds(p.Row, p.Col) {
					avoid[p] = true
				}
			}
		}
	}
	return avoid
}

func (c *Collector) computePath() search.Path {
	path := c.searcher.Find(c.grid, c.pos, c.target, c.AvoidanceSet())
	if len(path) > 0 && path[0] == c.pos {
		path = path[1:]
	}
	return path
}

// nearestOf returns the closest reward; with safeOnly it considers only
// rewards outside every danger radius and reports false when none qualify.
func (c *Collector) nearestOf(rewards []grid.Position, safeOnly bool) (grid.Position, bool) {
	best := grid.Position{}
	bestDist := -1
	for _, p := range rewards {
		if safeOnly && !c.IsSafe(p) {
			continue
		}
		if d := grid.Manhattan(c.pos, p); bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}

func (c *Collector) minThreatDistance(p grid.Position) int {
	min := -1
	for t := range c.threats {
		if d := grid.Manhattan(p, t); min < 0 || d < min {
			min = d
		}
	}
	return min
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
