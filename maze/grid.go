package maze

import "fmt"

// Cell addresses one grid cell.
type Cell struct {
	X, Y int
}

// Grid is an immutable-per-level 2D maze grid. Cells are either open or
// wall; the grid never changes during a level's lifetime except by full
// regeneration.
type Grid struct {
	width, height int
	walls         []bool // row-major, true = wall
}

// NewGrid returns a grid of the given size with every cell set to wall.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		walls:  make([]bool, width*height),
	}
}

// Width returns the horizontal cell count.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical cell count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWall reports whether (x, y) is a wall. Out-of-bounds reads as wall so
// neighborhood scans never need explicit bounds checks.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.walls[y*g.width+x]
}

// IsOpen reports whether (x, y) is an open, walkable cell.
func (g *Grid) IsOpen(x, y int) bool {
	return g.InBounds(x, y) && !g.walls[y*g.width+x]
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Cell {
	cells := make([]Cell, 0, g.width*g.height/2)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.walls[y*g.width+x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

func (g *Grid) setWall(x, y int, wall bool) {
	g.walls[y*g.width+x] = wall
}

// FromRunes builds a grid from a row-per-string layout where '#' is wall
// and any other rune is open. Rows must be non-empty and equal length.
func FromRunes(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty layout")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("row %d length %d, want %d", y, len(row), g.width)
		}
		for x, r := range row {
			g.setWall(x, y, r == '#')
		}
	}
	return g, nil
}
