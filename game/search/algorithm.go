package search

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
)

// Algorithm enumerates the available search variants. The set is closed:
// callers resolve a variant once at configuration time instead of
// dispatching on strings per search.
type Algorithm int

const (
	AlgorithmBFS Algorithm = iota
	AlgorithmLevelOrder
	AlgorithmDFS
	AlgorithmGreedy
	AlgorithmLazyGreedy
	AlgorithmOptimizedBFS
	AlgorithmAStar
	AlgorithmUCS
)

var algorithmNames = map[Algorithm]string{
	AlgorithmBFS:          "bfs",
	AlgorithmLevelOrder:   "level_order",
	AlgorithmDFS:          "dfs",
	AlgorithmGreedy:       "greedy",
	AlgorithmLazyGreedy:   "lazy_greedy",
	AlgorithmOptimizedBFS: "optimized_bfs",
	AlgorithmAStar:        "astar",
	AlgorithmUCS:          "ucs",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// SupportsAvoid reports whether the variant honours an avoidance set.
// Variants that do not simply ignore it and may path through danger zones.
func (a Algorithm) SupportsAvoid() bool {
	return a == AlgorithmAStar || a == AlgorithmUCS
}

// ParseAlgorithm maps a config name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("search: unknown algorithm %q", name)
}

// DefaultSuboptimalChance is the probability that lazy-greedy deviates
// from the locally best step.
const DefaultSuboptimalChance = 0.3

// Searcher executes one configured algorithm. Configure the exported
// fields before first use; zero values fall back to the defaults set by
// NewSearcher.
type Searcher struct {
	Algorithm Algorithm

	// MaxDepth caps level-order search at that many moves (0 = unbounded).
	// Ignored by every other variant.
	MaxDepth int

	// SuboptimalChance and Rand drive lazy-greedy. Rand is injectable so
	// tests can fix a seed and assert exact trajectories.
	SuboptimalChance float64
	Rand             *rand.Rand
}

// NewSearcher returns a Searcher for the given variant with default
// lazy-greedy parameters and a time-seeded random source.
func NewSearcher(algo Algorithm) *Searcher {
	return &Searcher{
		Algorithm:        algo,
		SuboptimalChance: DefaultSuboptimalChance,
		Rand:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Find runs the configured search from start to goal. avoid is honoured
// only when the variant supports it (see Algorithm.SupportsAvoid); the
// start and goal cells are never filtered by it. Returns nil when no path
// exists.
func (s *Searcher) Find(g *grid.Grid, start, goal grid.Position, avoid Avoid) Path {
	switch s.Algorithm {
	case AlgorithmBFS:
		return BFS(g, start, goal)
	case AlgorithmLevelOrder:
		return LevelOrder(g, start, goal, s.MaxDepth)
	case AlgorithmDFS:
		return DFS(g, start, goal)
	case AlgorithmGreedy:
		return Greedy(g, start, goal)
	case AlgorithmLazyGreedy:
		return LazyGreedy(g, start, goal, s.SuboptimalChance, s.Rand)
	case AlgorithmOptimizedBFS:
		return OptimizedBFS(g, start, goal)
	case AlgorithmAStar:
		return AStar(g, start, goal, avoid)
	case AlgorithmUCS:
		return UCS(g, start, goal, avoid)
	}
	return nil
}
