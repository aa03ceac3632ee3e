package parameter

// Maze Geometry
const (
	// CellSize is the world-unit edge length of one grid cell
	CellSize = 2.0

	// WallHalfSize is half the footprint edge of a wall cell in world units
	WallHalfSize = CellSize / 2

	// MazeMinSize is the smallest legal maze dimension (odd, per axis)
	MazeMinSize = 5

	// MazeMaxSize caps maze growth; 71 keeps repeated per-agent pathfinding
	// inside a frame budget
	MazeMaxSize = 71
)

// Level Sizing Defaults (overridable via level.Config)
const (
	// InitialMazeSize is the width/height of the level-1 maze
	InitialMazeSize = 15

	// MazeGrowthPerLevel is added to each dimension per level (kept even so
	// dimensions stay odd)
	MazeGrowthPerLevel = 2
)

// Generator
const (
	// ExtraOpeningRatio is the fraction of total cell count punched open as
	// supplementary loop-creating openings after the perfect maze is carved
	ExtraOpeningRatio = 0.003
)

// Exploration
const (
	// ExplorationRadius is the cell radius around the player marked visited
	// each frame for fog-of-war bookkeeping
	ExplorationRadius = 2
)
