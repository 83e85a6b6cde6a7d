package search

import (
	"sort"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
)

// BFS finds a shortest path by edge count using a FIFO frontier. Nodes are
// marked visited at enqueue time so no cell is expanded twice.
func BFS(g *grid.Grid, start, goal grid.Position) Path {
	if start == goal {
		return Path{start}
	}
	visited := map[grid.Position]bool{start: true}
	parent := make(map[grid.Position]grid.Position)
	queue := []grid.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return reconstruct(parent, start, goal)
		}
		for _, n := range g.Neighbors4(cur) {
			if visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = cur
			queue = append(queue, n)
		}
	}
	return nil
}

// LevelOrder is BFS structured as explicit depth layers: every node at
// depth d is expanded before any node at d+1. maxDepth caps the search at
// that many moves from start (0 or negative = unbounded); a goal beyond
// the cap yields nil even though a path may exist. With no cap it returns
// the same path as BFS.
func LevelOrder(g *grid.Grid, start, goal grid.Position, maxDepth int) Path {
	if start == goal {
		return Path{start}
	}
	visited := map[grid.Position]bool{start: true}
	parent := make(map[grid.Position]grid.Position)
	frontier := []grid.Position{start}
	depth := 0
	for len(frontier) > 0 {
		if maxDepth > 0 && depth >= maxDepth {
			return nil
		}
		depth++
		var next []grid.Position
		for _, cur := range frontier {
			for _, n := range g.Neighbors4(cur) {
				if visited[n] {
					continue
				}
				visited[n] = true
				parent[n] = cur
				if n == goal {
					return reconstruct(parent, start, goal)
				}
				next = append(next, n)
			}
		}
		frontier = next
	}
	return nil
}

// OptimizedBFS is BFS with two shortcuts: it returns as soon as the goal
// shows up among a node's neighbors, and it expands each node's neighbors
// in ascending Manhattan-distance-to-goal order. Neither changes the
// edge-count optimality guarantee; the ordering only steers which of
// several equal-length paths is returned (the sort is stable, so ties keep
// the fixed neighbor order).
func OptimizedBFS(g *grid.Grid, start, goal grid.Position) Path {
	if start == goal {
		return Path{start}
	}
	visited := map[grid.Position]bool{start: true}
	parent := make(map[grid.Position]grid.Position)
	queue := []grid.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		ns := g.Neighbors4(cur)
		sort.SliceStable(ns, func(i, j int) bool {
			return grid.Manhattan(ns[i], goal) < grid.Manhattan(ns[j], goal)
		})
		for _, n := range ns {
			if visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = cur
			if n == goal {
				return reconstruct(parent, start, goal)
			}
			queue = append(queue, n)
		}
	}
	return nil
}
