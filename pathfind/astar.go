// Package pathfind provides grid pathfinding over maze layouts.
package pathfind

import (
	"errors"

	"github.com/lixenwraith/neon-maze/maze"
)

// ErrNoPath reports that the goal is unreachable from the start. On a
// freshly generated maze every open cell is reachable, so callers treat
// this as transient (stale path against a rebuilt grid) and recover by
// replanning, never by crashing.
var ErrNoPath = errors.New("no path between cells")

// ErrInvalidCell reports a start or goal that is a wall or out of bounds.
var ErrInvalidCell = errors.New("cell is not open")

// FindPath returns the shortest 4-connected route from start to goal,
// inclusive of both endpoints. Cost is uniform per step; the heuristic is
// Manhattan distance, which is admissible on a unit grid so the result is
// optimal. start == goal yields a single-cell path.
func FindPath(g *maze.Grid, start, goal maze.Cell) ([]maze.Cell, error) {
	if !g.IsOpen(start.X, start.Y) || !g.IsOpen(goal.X, goal.Y) {
		return nil, ErrInvalidCell
	}
	if start == goal {
		return []maze.Cell{start}, nil
	}

	w, h := g.Width(), g.Height()
	idx := func(c maze.Cell) int { return c.Y*w + c.X }

	gScore := make([]int, w*h)
	for i := range gScore {
		gScore[i] = -1 // unvisited
	}
	cameFrom := make([]int, w*h)

	open := newCellHeap(64)
	gScore[idx(start)] = 0
	cameFrom[idx(start)] = -1
	open.push(heapNode{cell: start, fScore: manhattan(start, goal)})

	dirs := [4]maze.Cell{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

	for open.len() > 0 {
		curr := open.pop()
		if curr.cell == goal {
			return reconstruct(cameFrom, idx(goal), w), nil
		}

		currG := gScore[idx(curr.cell)]
		for _, d := range dirs {
			next := maze.Cell{X: curr.cell.X + d.X, Y: curr.cell.Y + d.Y}
			if !g.IsOpen(next.X, next.Y) {
				continue
			}
			ni := idx(next)
			tentative := currG + 1
			if gScore[ni] != -1 && gScore[ni] <= tentative {
				continue
			}
			gScore[ni] = tentative
			cameFrom[ni] = idx(curr.cell)
			open.push(heapNode{cell: next, fScore: tentative + manhattan(next, goal)})
		}
	}

	return nil, ErrNoPath
}

func manhattan(a, b maze.Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// reconstruct walks the parent chain from the goal and reverses in place.
func reconstruct(cameFrom []int, goalIdx, width int) []maze.Cell {
	path := make([]maze.Cell, 0, 32)
	for i := goalIdx; i != -1; i = cameFrom[i] {
		path = append(path, maze.Cell{X: i % width, Y: i / width})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
