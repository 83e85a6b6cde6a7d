package search

import (
	"container/heap"

	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
)

// AStar finds a shortest path using the admissible Manhattan heuristic.
// Positions in avoid are treated as impassable, except the start and goal
// cells which are always searchable.
func AStar(g *grid.Grid, start, goal grid.Position, avoid Avoid) Path {
	return costSearch(g, start, goal, avoid, grid.Manhattan)
}

// UCS is uniform-cost search: AStar with a zero heuristic. With unit step
// costs it explores like BFS but honours the avoidance set.
func UCS(g *grid.Grid, start, goal grid.Position, avoid Avoid) Path {
	return costSearch(g, start, goal, avoid, func(_, _ grid.Position) int { return 0 })
}

type costNode struct {
	pos    grid.Position
	g, f   int
	seq    int // insertion order, tie-break for determinism
	parent *costNode
	index  int
}

type costQueue []*costNode

func (q costQueue) Len() int { return len(q) }

func (q costQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q costQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *costQueue) Push(x any) {
	n := x.(*costNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *costQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

func costSearch(g *grid.Grid, start, goal grid.Position, avoid Avoid, h func(a, b grid.Position) int) Path {
	if start == goal {
		return Path{start}
	}
	open := &costQueue{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &costNode{pos: start, g: 0, f: h(start, goal)})
	gScore := map[grid.Position]int{start: 0}
	closed := make(map[grid.Position]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*costNode)
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true
		if cur.pos == goal {
			return reconstructNodes(cur)
		}
		for _, n := range g.Neighbors4(cur.pos) {
			if closed[n] {
				continue
			}
			if avoid != nil && avoid[n] && n != goal {
				continue
			}
			tentative := cur.g + 1
			if prev, ok := gScore[n]; ok && tentative >= prev {
				continue
			}
			gScore[n] = tentative
			seq++
			heap.Push(open, &costNode{
				pos:    n,
				g:      tentative,
				f:      tentative + h(n, goal),
				seq:    seq,
				parent: cur,
			})
		}
	}
	return nil
}

func reconstructNodes(end *costNode) Path {
	var path Path
	for n := end; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
