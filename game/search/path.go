// Package search implements the grid path-finding algorithms used by the
// agents: exact frontier searches (BFS, level-order, DFS), cost-ordered
// searches (A*, uniform-cost) and local greedy descents. All variants share
// 4-connected movement and the grid's fixed neighbor enumeration order, so
// a given algorithm always returns the same path for the same inputs
// (lazy-greedy excepted, which draws from an injected random source).
package search

import "github.com/BonheurByiringiro/PACMAN-Game/game/grid"

// Path is an ordered sequence of positions from start to goal, both
// inclusive. Consecutive elements are 4-adjacent and passable at the time
// the path was computed. A nil Path means no path was found; that is a
// normal outcome, never an error.
type Path []grid.Position

// Avoid is a set of positions an avoidance-aware search treats as
// additionally impassable. The start and goal cells are exempt even when
// present in the set, so a threat camping the goal does not make the
// problem trivially unsolvable.
type Avoid map[grid.Position]bool

// NewAvoid builds an Avoid set from a list of positions.
func NewAvoid(positions ...grid.Position) Avoid {
	a := make(Avoid, len(positions))
	for _, p := range positions {
		a[p] = true
	}
	return a
}

// reconstruct walks the parent chain back from goal and returns the path
// start..goal in forward order.
func reconstruct(parent map[grid.Position]grid.Position, start, goal grid.Position) Path {
	path := Path{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
