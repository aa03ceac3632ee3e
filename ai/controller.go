// Package ai drives enemy behavior: a two-state patrol/chase controller
// with hysteresis between the trigger and resume radii so enemies do not
// flicker between states at the boundary.
package ai

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/maze"
	"github.com/lixenwraith/neon-maze/parameter"
	"github.com/lixenwraith/neon-maze/pathfind"
)

// Context is the per-enemy behavior arena. It holds only behavior state;
// navigation state (path, repath timer) lives in the entity's AIComponent
// so it is torn down with the entity.
type Context struct {
	Entity core.Entity
	State  State
}

// Controller owns the behavior contexts of all registered enemies and
// advances them one frame at a time. It is driven by the AI system and is
// not safe for concurrent use.
type Controller struct {
	world    *engine.World
	rng      *rand.Rand
	grid     *maze.Grid
	contexts map[core.Entity]*Context
}

// NewController creates a controller with no registered enemies.
func NewController(w *engine.World, rng *rand.Rand) *Controller {
	return &Controller{
		world:    w,
		rng:      rng,
		contexts: make(map[core.Entity]*Context),
	}
}

// SetGrid swaps the navigation grid on level build. All paths are stale
// against the new grid, so every context drops its route.
func (c *Controller) SetGrid(g *maze.Grid) {
	c.grid = g
	for _, ctx := range c.contexts {
		c.clearPath(ctx.Entity)
		ctx.State = StatePatrol
	}
}

// Register creates a patrol context for a newly spawned enemy.
func (c *Controller) Register(e core.Entity) *Context {
	ctx := &Context{Entity: e, State: StatePatrol}
	c.contexts[e] = ctx
	return ctx
}

// Unregister drops a despawned enemy's context.
func (c *Controller) Unregister(e core.Entity) {
	delete(c.contexts, e)
}

// Reset drops every context. Called on restart before respawning.
func (c *Controller) Reset() {
	c.contexts = make(map[core.Entity]*Context)
}

// StateOf returns the behavior state of an enemy, or StatePatrol if it
// is not registered.
func (c *Controller) StateOf(e core.Entity) State {
	if ctx, ok := c.contexts[e]; ok {
		return ctx.State
	}
	return StatePatrol
}

// Tick advances one enemy by dt. The player position drives the state
// transitions; movement happens by writing the entity's velocity, which
// the movement system integrates later in the same frame.
func (c *Controller) Tick(e core.Entity, playerPos core.Vec3, dt time.Duration) {
	ctx, ok := c.contexts[e]
	if !ok || c.grid == nil {
		return
	}
	pos, ok := c.world.Positions.Get(e)
	if !ok {
		return
	}

	enemy, ok := c.world.Enemies.Get(e)
	if !ok {
		return
	}
	dist := pos.DistXZ(playerPos)

	switch ctx.State {
	case StatePatrol:
		// Only chasers hunt; wanderers patrol no matter how close the
		// player gets
		if enemy.Kind == component.EnemyChaser && dist <= parameter.ChaseTriggerRadius {
			ctx.State = StateChase
			c.clearPath(e)
			c.emitAlert(e, pos.Vec3)
			c.tickChase(e, pos.Vec3, playerPos, dt)
			return
		}
		c.tickPatrol(e, pos.Vec3)

	case StateChase:
		if dist >= parameter.PatrolResumeRadius {
			ctx.State = StatePatrol
			c.clearPath(e)
			c.tickPatrol(e, pos.Vec3)
			return
		}
		c.tickChase(e, pos.Vec3, playerPos, dt)
	}
}

// tickPatrol follows the current route at base speed, picking a fresh
// random destination whenever the route runs out.
func (c *Controller) tickPatrol(e core.Entity, pos core.Vec3) {
	aiComp, ok := c.world.AIs.Get(e)
	if !ok {
		return
	}

	if !aiComp.HasPath() {
		if !c.planRandomRoute(e, &aiComp, pos) {
			c.stop(e)
			return
		}
	}

	enemy, _ := c.world.Enemies.Get(e)
	c.followPath(e, &aiComp, pos, enemy.Speed)
	c.world.AIs.Set(e, aiComp)
}

// tickChase repaths toward the player on an interval and follows the
// route at elevated speed. If the path is momentarily unavailable the
// enemy steers straight at the player rather than stalling.
func (c *Controller) tickChase(e core.Entity, pos, playerPos core.Vec3, dt time.Duration) {
	aiComp, ok := c.world.AIs.Get(e)
	if !ok {
		return
	}

	aiComp.RepathTimer -= dt
	if aiComp.RepathTimer <= 0 || !aiComp.HasPath() {
		aiComp.RepathTimer = parameter.ChaseRepathInterval
		start := maze.WorldToGrid(pos)
		goal := maze.WorldToGrid(playerPos)
		if path, err := pathfind.FindPath(c.grid, start, goal); err == nil {
			aiComp.Path = path
			aiComp.PathIndex = 0
		} else {
			aiComp.ClearPath()
		}
	}

	enemy, _ := c.world.Enemies.Get(e)
	speed := enemy.Speed * parameter.ChaseSpeedMultiplier

	if aiComp.HasPath() {
		c.followPath(e, &aiComp, pos, speed)
	} else {
		// Direct pursuit fallback until the next repath window
		c.steer(e, pos, playerPos, speed)
	}
	c.world.AIs.Set(e, aiComp)
}

// planRandomRoute paths to a random open cell. Returns false when no
// route could be planned this frame.
func (c *Controller) planRandomRoute(e core.Entity, aiComp *component.AIComponent, pos core.Vec3) bool {
	open := c.grid.OpenCells()
	if len(open) == 0 {
		return false
	}
	start := maze.WorldToGrid(pos)
	goal := open[c.rng.Intn(len(open))]

	path, err := pathfind.FindPath(c.grid, start, goal)
	if err != nil {
		return false
	}
	aiComp.Path = path
	aiComp.PathIndex = 0
	return true
}

// followPath steers toward the current waypoint, consuming waypoints as
// they are reached.
func (c *Controller) followPath(e core.Entity, aiComp *component.AIComponent, pos core.Vec3, speed float64) {
	for aiComp.HasPath() {
		target := maze.GridToWorld(aiComp.Path[aiComp.PathIndex])
		if pos.DistXZ(target) > parameter.WaypointReachDist {
			c.steer(e, pos, target, speed)
			return
		}
		aiComp.PathIndex++
	}
	c.stop(e)
}

// steer writes a velocity of the given speed toward target on the ground
// plane. Vertical velocity is preserved.
func (c *Controller) steer(e core.Entity, pos, target core.Vec3, speed float64) {
	dir := core.Vec3{X: target.X - pos.X, Z: target.Z - pos.Z}
	length := dir.Length()
	vel, _ := c.world.Velocities.Get(e)
	if length < 1e-9 {
		vel.X, vel.Z = 0, 0
	} else {
		vel.X = dir.X / length * speed
		vel.Z = dir.Z / length * speed
	}
	c.world.Velocities.Set(e, vel)
}

func (c *Controller) stop(e core.Entity) {
	vel, _ := c.world.Velocities.Get(e)
	vel.X, vel.Z = 0, 0
	c.world.Velocities.Set(e, vel)
}

func (c *Controller) clearPath(e core.Entity) {
	if aiComp, ok := c.world.AIs.Get(e); ok {
		aiComp.ClearPath()
		aiComp.RepathTimer = 0
		c.world.AIs.Set(e, aiComp)
	}
}

func (c *Controller) emitAlert(e core.Entity, pos core.Vec3) {
	eq, ok := engine.GetResource[*engine.EventQueueResource](c.world.Resources)
	if !ok {
		return
	}
	timeRes := engine.MustGetResource[*engine.TimeResource](c.world.Resources)
	eq.Queue.Push(event.GameEvent{
		Type:    event.EventEnemyAlert,
		Payload: &event.EnemyAlertPayload{Entity: e, Position: pos},
		Frame:   timeRes.FrameNumber,
	})
}
