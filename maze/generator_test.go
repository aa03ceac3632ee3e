package maze

import (
	"math/rand"
	"testing"
)

func TestGenerateRejectsInvalidDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct{ w, h int }{
		{4, 5},  // even width
		{5, 4},  // even height
		{3, 9},  // below minimum
		{9, 3},  // below minimum
		{0, 0},  // degenerate
		{-5, 7}, // negative
	}
	for _, c := range cases {
		if _, err := Generate(c.w, c.h, rng); err == nil {
			t.Errorf("Generate(%d, %d) succeeded, want error", c.w, c.h)
		}
	}
}

func TestGenerateBorderIntact(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := Generate(21, 15, rng)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for x := 0; x < g.Width(); x++ {
		if !g.IsWall(x, 0) || !g.IsWall(x, g.Height()-1) {
			t.Fatalf("border breached at column %d", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if !g.IsWall(0, y) || !g.IsWall(g.Width()-1, y) {
			t.Fatalf("border breached at row %d", y)
		}
	}
}

// Every open cell must be reachable from the start: the backtracker
// produces a spanning structure and extra openings only add edges.
func TestGenerateFullyConnected(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := Generate(31, 31, rng)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		open := g.OpenCells()
		reached := bfsReach(g, Cell{X: 1, Y: 1})
		if len(reached) != len(open) {
			t.Errorf("seed %d: reached %d of %d open cells", seed, len(reached), len(open))
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(25, 25, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(25, 25, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.IsWall(x, y) != b.IsWall(x, y) {
				t.Fatalf("grids diverge at (%d, %d)", x, y)
			}
		}
	}
}

// A perfect maze has exactly openCells-1 connections; extra openings add
// loops, observable as additional adjacent open pairs.
func TestGenerateExtraOpenings(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := Generate(51, 51, rng)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	edges := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.IsOpen(x, y) {
				continue
			}
			if g.IsOpen(x+1, y) {
				edges++
			}
			if g.IsOpen(x, y+1) {
				edges++
			}
		}
	}

	open := len(g.OpenCells())
	if edges < open {
		t.Errorf("no loops: %d edges for %d open cells, want >= %d", edges, open, open)
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(5, 5)
	if !g.IsWall(-1, 2) || !g.IsWall(2, -1) || !g.IsWall(5, 2) || !g.IsWall(2, 5) {
		t.Error("out-of-bounds cell did not read as wall")
	}
	if g.IsOpen(-1, -1) {
		t.Error("out-of-bounds cell read as open")
	}
}

func TestFromRunes(t *testing.T) {
	g, err := FromRunes([]string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatalf("FromRunes failed: %v", err)
	}
	if !g.IsWall(2, 2) {
		t.Error("interior wall missing")
	}
	if !g.IsOpen(1, 1) || !g.IsOpen(3, 3) {
		t.Error("open cells missing")
	}

	if _, err := FromRunes([]string{"###", "##"}); err == nil {
		t.Error("ragged layout accepted")
	}
}

func bfsReach(g *Grid, start Cell) map[Cell]bool {
	reached := map[Cell]bool{start: true}
	queue := []Cell{start}
	dirs := [4]Cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			next := Cell{X: curr.X + d.X, Y: curr.Y + d.Y}
			if g.IsOpen(next.X, next.Y) && !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}
	return reached
}
