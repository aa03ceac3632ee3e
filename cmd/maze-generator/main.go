// Command maze-generator is an interactive tool for inspecting generated
// mazes and their solution paths.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/neon-maze/maze"
	"github.com/lixenwraith/neon-maze/pathfind"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE GENERATOR ===")

		w := getInt(reader, "Width [odd, >= 5] (default 35): ", 35)
		h := getInt(reader, "Height [odd, >= 5] (default 19): ", 19)
		seed := getInt(reader, "Seed [0 = random] (default 0): ", 0)

		if seed == 0 {
			seed = int(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewSource(int64(seed)))

		fmt.Println("\nGenerating...")
		startT := time.Now()
		grid, err := maze.Generate(w, h, rng)
		dur := time.Since(startT)

		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Done in %v (seed %d)\n", dur, seed)
		fmt.Printf("Grid Dimensions: %dx%d, open cells: %d\n",
			grid.Width(), grid.Height(), len(grid.OpenCells()))

		start := maze.Cell{X: 1, Y: 1}
		goal := maze.Cell{X: grid.Width() - 2, Y: grid.Height() - 2}
		path, err := pathfind.FindPath(grid, start, goal)
		if err != nil {
			fmt.Printf("Status: no corner-to-corner path (%v)\n", err)
		} else {
			fmt.Printf("Corner-to-corner path: %d steps\n", len(path))
		}

		draw(grid, start, goal, path)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(grid *maze.Grid, start, goal maze.Cell, path []maze.Cell) {
	onPath := make(map[maze.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			switch {
			case c == start:
				fmt.Print("S")
			case c == goal:
				fmt.Print("E")
			case grid.IsWall(x, y):
				fmt.Print("█")
			case onPath[c]:
				fmt.Print("•")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}

func getInt(reader *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		return def
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		fmt.Printf("Invalid input, using default %d\n", def)
		return def
	}
	return v
}
