package component

import "github.com/lixenwraith/neon-maze/core"

// PositionComponent is the world-space location of an entity. The maze
// occupies the X/Z ground plane; Y is height above it.
type PositionComponent struct {
	core.Vec3
}

// VelocityComponent is the world-space velocity of an entity in units/second.
type VelocityComponent struct {
	core.Vec3
}
