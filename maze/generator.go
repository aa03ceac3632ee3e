package maze

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/neon-maze/parameter"
)

// ErrInvalidDimensions rejects maze sizes that cannot express a perfect
// spanning structure plus border. Fatal to level creation.
var ErrInvalidDimensions = fmt.Errorf("maze dimensions must be odd and >= %d", parameter.MazeMinSize)

// Generate carves a maze of the given dimensions using the supplied RNG
// stream. Width and height must be odd and >= MazeMinSize.
//
// Odd-coordinate cells are carvable rooms; even-coordinate cells are walls
// carved only when connecting two rooms, so the backtracker produces a
// perfect maze (every room reachable, no cycles) before extra openings are
// punched. Output is fully determined by the RNG stream.
func Generate(width, height int, rng *rand.Rand) (*Grid, error) {
	if width < parameter.MazeMinSize || height < parameter.MazeMinSize ||
		width%2 == 0 || height%2 == 0 {
		return nil, ErrInvalidDimensions
	}

	grid := NewGrid(width, height)
	for i := range grid.walls {
		grid.walls[i] = true
	}

	carve(grid, rng)
	punchOpenings(grid, rng)

	return grid, nil
}

// carve runs an iterative recursive-backtracker over the room lattice,
// starting at (1,1).
func carve(g *Grid, rng *rand.Rand) {
	start := Cell{X: 1, Y: 1}
	g.setWall(start.X, start.Y, false)

	stack := []Cell{start}
	dirs := [4]Cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]Cell, 0, 4)
		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave the one-cell border intact
			if nx > 0 && nx < g.width-1 && ny > 0 && ny < g.height-1 && g.IsWall(nx, ny) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		g.setWall(curr.X+d.X/2, curr.Y+d.Y/2, false) // connector wall
		g.setWall(curr.X+d.X, curr.Y+d.Y, false)     // next room
		stack = append(stack, Cell{X: curr.X + d.X, Y: curr.Y + d.Y})
	}
}

// punchOpenings opens a small number of interior walls flanked by two open
// cells, creating loops and alternate routes. Border walls are never touched.
func punchOpenings(g *Grid, rng *rand.Rand) {
	want := int(float64(g.width*g.height) * parameter.ExtraOpeningRatio)
	if want < 1 && g.width >= 7 && g.height >= 7 {
		want = 1
	}

	// Bounded random probing; small grids may yield fewer openings than
	// requested, which is fine.
	attempts := want * 40
	for opened := 0; opened < want && attempts > 0; attempts-- {
		x := 1 + rng.Intn(g.width-2)
		y := 1 + rng.Intn(g.height-2)
		if !g.IsWall(x, y) {
			continue
		}

		horizontal := g.IsOpen(x-1, y) && g.IsOpen(x+1, y)
		vertical := g.IsOpen(x, y-1) && g.IsOpen(x, y+1)
		if horizontal == vertical {
			// Either no straddling rooms or a crossing; both are rejected to
			// keep openings strictly between two rooms.
			continue
		}

		g.setWall(x, y, false)
		opened++
	}
}
