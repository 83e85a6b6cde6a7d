package search

import (
	"math/rand"
	"sort"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
)

// Greedy walks toward the goal with no backtracking: each step moves to the
// unvisited passable neighbor with the smallest Manhattan distance to the
// goal, ties broken by the fixed neighbor order. The walk is bounded by
// rows*cols steps so it always terminates; it returns nil when it dead-ends
// or exhausts the bound. Path length is not optimal in general.
func Greedy(g *grid.Grid, start, goal grid.Position) Path {
	if start == goal {
		return Path{start}
	}
	maxSteps := g.Rows() * g.Cols()
	visited := map[grid.Position]bool{start: true}
	path := Path{start}
	cur := start
	for step := 0; step < maxSteps; step++ {
		next, ok := bestNeighbor(g, cur, goal, visited)
		if !ok {
			return nil
		}
		visited[next] = true
		path = append(path, next)
		if next == goal {
			return path
		}
		cur = next
	}
	return nil
}

// LazyGreedy is Greedy with deliberate sloppiness: with probability chance,
// and only when at least two candidate steps exist, it picks uniformly at
// random among the better half of the candidates instead of the single
// best. Used for the weakest pursuer tier. rng must not be nil; tests
// inject a fixed seed to get reproducible trajectories.
func LazyGreedy(g *grid.Grid, start, goal grid.Position, chance float64, rng *rand.Rand) Path {
	if start == goal {
		return Path{start}
	}
	maxSteps := g.Rows() * g.Cols()
	visited := map[grid.Position]bool{start: true}
	path := Path{start}
	cur := start
	for step := 0; step < maxSteps; step++ {
		cands := unvisitedNeighbors(g, cur, visited)
		if len(cands) == 0 {
			return nil
		}
		// Stable sort keeps the fixed neighbor order among equal distances.
		sort.SliceStable(cands, func(i, j int) bool {
			return grid.Manhattan(cands[i], goal) < grid.Manhattan(cands[j], goal)
		})
		next := cands[0]
		if len(cands) >= 2 && rng.Float64() < chance {
			half := (len(cands) + 1) / 2
			next = cands[rng.Intn(half)]
		}
		visited[next] = true
		path = append(path, next)
		if next == goal {
			return path
		}
		cur = next
	}
	return nil
}

func unvisitedNeighbors(g *grid.Grid, p grid.Position, visited map[grid.Position]bool) []grid.Position {
	ns := g.Neighbors4(p)
	out := ns[:0]
	for _, n := range ns {
		if !visited[n] {
			out = append(out, n)
		}
	}
	return out
}

func bestNeighbor(g *grid.Grid, p, goal grid.Position, visited map[grid.Position]bool) (grid.Position, bool) {
	best := grid.Position{}
	bestDist := -1
	for _, n := range g.Neighbors4(p) {
		if visited[n] {
			continue
		}
		if d := grid.Manhattan(n, goal); bestDist < 0 || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, bestDist >= 0
}
