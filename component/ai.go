package component

import (
	"time"

	"github.com/lixenwraith/neon-maze/maze"
)

// AIComponent holds the navigation state of an enemy: the grid path it is
// following and a countdown until the next forced repath while chasing.
type AIComponent struct {
	Path        []maze.Cell
	PathIndex   int
	RepathTimer time.Duration
}

// HasPath reports whether the entity still has waypoints to consume.
func (c *AIComponent) HasPath() bool {
	return c.PathIndex < len(c.Path)
}

// ClearPath drops the current route, forcing a replan on the next tick.
func (c *AIComponent) ClearPath() {
	c.Path = c.Path[:0]
	c.PathIndex = 0
}
