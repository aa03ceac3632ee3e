package maze

import (
	"math"

	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/parameter"
)

// GridToWorld returns the world-space center of a cell on the ground plane.
func GridToWorld(c Cell) core.Vec3 {
	return core.Vec3{
		X: (float64(c.X) + 0.5) * parameter.CellSize,
		Y: 0,
		Z: (float64(c.Y) + 0.5) * parameter.CellSize,
	}
}

// WorldToGrid returns the cell containing a world-space point.
func WorldToGrid(p core.Vec3) Cell {
	return Cell{
		X: int(math.Floor(p.X / parameter.CellSize)),
		Y: int(math.Floor(p.Z / parameter.CellSize)),
	}
}
