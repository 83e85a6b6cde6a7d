package search

import "github.com/BonheurByiringiro/PACMAN-Game/game/grid"

// DFS finds some path (not necessarily shortest) using a LIFO frontier.
// Neighbors are pushed in reverse enumeration order so the cell listed
// first by the grid is explored first.
func DFS(g *grid.Grid, start, goal grid.Position) Path {
	if start == goal {
		return Path{start}
	}
	visited := map[grid.Position]bool{start: true}
	parent := make(map[grid.Position]grid.Position)
	stack := []grid.Position{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == goal {
			return reconstruct(parent, start, goal)
		}
		ns := g.Neighbors4(cur)
		for i := len(ns) - 1; i >= 0; i-- {
			n := ns[i]
			if visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = cur
			stack = append(stack, n)
		}
	}
	return nil
}
